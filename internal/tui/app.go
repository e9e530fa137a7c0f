// internal/tui/app.go
//
// Terminal frontend. Draws the shuffled pieces and both input lanes and maps
// keys onto game operations.
//
// Keys:
//   ←/→        move the cursor over the pieces
//   1 / 2      put the piece under the cursor into the first/second lane
//   Tab        switch the lane Backspace works on
//   Backspace  take back the last piece of that lane
//   c          clear both lanes
//   Enter      submit once both words are complete
//   r          reveal the pair
//   n          next pair
//   e / m / h  easy / medium / hard from the next pair on
//   q, Esc     quit

package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordmix/internal/game"
	"github.com/robalobadob/wordmix/internal/input"
	"github.com/robalobadob/wordmix/internal/level"
	"github.com/robalobadob/wordmix/internal/pieces"
)

const helpLine = "←/→ move  1/2 select  Tab lane  ⌫ undo  c clear  ⏎ submit  r reveal  n next  e/m/h level  q quit"

var (
	styleTitle  = tcell.StyleDefault.Bold(true)
	stylePiece  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleUsed   = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	styleCursor = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleLane   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleActive = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleMsg    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// App binds a Game to a terminal screen.
type App struct {
	screen tcell.Screen
	game   *game.Game

	cursor  int
	active  input.Lane
	message string
	dirty   bool
}

// New returns an App drawing g on screen. The screen must be initialized.
func New(screen tcell.Screen, g *game.Game) *App {
	a := &App{screen: screen, game: g, dirty: true}
	g.OnSelectionChange(func() { a.dirty = true })
	g.OnInputCompleteChange(func(complete bool) {
		if complete {
			a.message = "Both words complete. Press Enter to submit."
		}
	})
	return a
}

// Start deals the first pair.
func (a *App) Start() error {
	return a.nextRound()
}

// Run processes events until the player quits.
func (a *App) Run() error {
	for {
		if a.dirty {
			a.Draw()
		}
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if a.Handle(ev) {
			return nil
		}
	}
}

// Handle applies one event. It reports true when the app should exit.
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.dirty = true
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	a.dirty = true
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		a.moveCursor(-1)
	case tcell.KeyRight:
		a.moveCursor(1)
	case tcell.KeyTab:
		a.active = 1 - a.active
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.undo()
	case tcell.KeyEnter:
		a.submit()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case '1':
			a.selectPiece(input.First)
		case '2':
			a.selectPiece(input.Second)
		case 'c':
			if a.roundOver() {
				break
			}
			if a.game.ClearInput() {
				a.message = "Input cleared."
			}
		case 'r':
			a.reveal()
		case 'n':
			if err := a.nextRound(); err != nil {
				a.message = err.Error()
			}
		case 'e':
			a.setLevel(level.Easy)
		case 'm':
			a.setLevel(level.Medium)
		case 'h':
			a.setLevel(level.Hard)
		}
	}
	return false
}

func (a *App) nextRound() error {
	r, err := a.game.NewRound(a.game.Level())
	if err != nil {
		log.Error().Err(err).Msg("new round")
		return err
	}
	a.cursor = 0
	a.active = input.First
	kind := "synonyms"
	if !r.Synonyms {
		kind = "antonyms"
	}
	a.message = fmt.Sprintf("New pair: two %s in %d pieces.", kind, len(r.Pieces))
	a.dirty = true
	return nil
}

func (a *App) moveCursor(d int) {
	n := len(a.game.Round().Pieces)
	if n == 0 {
		return
	}
	a.cursor = (a.cursor + d + n) % n
}

func (a *App) selectPiece(l input.Lane) {
	a.active = l
	ps := a.game.Pieces()
	if a.cursor >= len(ps) {
		return
	}
	if ps[a.cursor].Used {
		a.message = "That piece is already in use."
		return
	}
	a.message = ""
	ok, err := a.game.SelectPiece(l, a.cursor)
	switch {
	case err != nil:
		a.message = err.Error()
	case !ok:
		a.message = fmt.Sprintf("%q cannot go into the %s word now.", ps[a.cursor].Content, l)
	}
}

func (a *App) undo() {
	if a.roundOver() {
		return
	}
	n := len(a.game.LaneIndexes(a.active))
	if n == 0 {
		return
	}
	if err := a.game.DeselectFrom(a.active, n-1); err != nil {
		a.message = err.Error()
	}
}

// roundOver reports whether the lanes are frozen and says so on the status
// line.
func (a *App) roundOver() bool {
	if a.game.Status() == game.StatusPlaying {
		return false
	}
	a.message = "This pair is done. Press n for the next one."
	return true
}

func (a *App) submit() {
	if !a.game.IsInputComplete() {
		a.message = "Finish both words first."
		return
	}
	ok, err := a.game.Submit()
	switch {
	case err != nil:
		a.message = err.Error()
	case ok:
		a.message = "Correct! Press n for the next pair."
	default:
		a.message = "Not quite. Rearrange the pieces or press r to reveal."
	}
}

func (a *App) reveal() {
	first, second, err := a.game.Reveal()
	if err != nil {
		a.message = err.Error()
		return
	}
	a.message = fmt.Sprintf("The pair was %q and %q. Press n for the next one.", first, second)
}

func (a *App) setLevel(l level.Level) {
	a.game.SetLevel(l)
	a.message = fmt.Sprintf("Level %s from the next pair on.", l)
}

// Message returns the status line text.
func (a *App) Message() string { return a.message }

// Cursor returns the index of the highlighted piece.
func (a *App) Cursor() int { return a.cursor }

// Draw renders the whole screen.
func (a *App) Draw() {
	a.screen.Clear()
	r := a.game.Round()
	st := a.game.Statistics()

	drawText(a.screen, 1, 0, styleTitle, fmt.Sprintf("wordmix  level %s (next: %s)  score %d/%d  pairs %d/%d",
		r.Level, a.game.Level(), st.ObtainedScore, st.TotalScore, st.GuessedPairs, st.TotalPairs))

	hint := "Find two synonyms."
	if !r.Synonyms {
		hint = "Find two antonyms."
	}
	drawText(a.screen, 1, 1, tcell.StyleDefault, hint)

	x, y := 1, 3
	w, _ := a.screen.Size()
	for i, p := range a.game.Pieces() {
		label := "[" + p.Content + "]"
		if x+len(label) >= w && x > 1 {
			x, y = 1, y+1
		}
		x = drawText(a.screen, x, y, pieceStyle(p, i == a.cursor), label) + 1
	}

	y += 2
	for _, l := range input.Lanes {
		style, marker := styleLane, "  "
		if l == a.active {
			style, marker = styleActive, "> "
		}
		line := fmt.Sprintf("%s%d: %-24s %s", marker, int(l)+1, a.game.LaneText(l), a.game.LaneState(l))
		drawText(a.screen, 1, y, style, line)
		y++
	}

	drawText(a.screen, 1, y+1, styleMsg, a.message)
	drawText(a.screen, 1, y+3, styleHelp, helpLine)
	a.screen.Show()
	a.dirty = false
}

func pieceStyle(p pieces.Piece, cursor bool) tcell.Style {
	switch {
	case cursor:
		return styleCursor
	case p.Used:
		return styleUsed
	default:
		return stylePiece
	}
}

// drawText writes s at (x, y) and returns the column after it.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
