// internal/game/engine.go
//
// Game is the top-level object of a play session. It owns the word source,
// the mixer, the input builder (and through it the piece board) and the
// score tracker, and exposes the small operation set a frontend needs.
// Responsibilities:
//   - Start rounds: pick an unused pair, split it at the requested level,
//     load the pieces and reset both input lanes in one step.
//   - Forward piece selection and removal to the input builder.
//   - Check submitted input against the reference pair and keep score.
//
// Notes:
//   - Everything runs synchronously on the caller's goroutine; listeners
//     registered through the On* methods are invoked inline.
//   - Disallowed selections are reported as false, not as errors.

package game

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordmix/internal/apperr"
	"github.com/robalobadob/wordmix/internal/input"
	"github.com/robalobadob/wordmix/internal/level"
	"github.com/robalobadob/wordmix/internal/mixer"
	"github.com/robalobadob/wordmix/internal/pieces"
	"github.com/robalobadob/wordmix/internal/stats"
	"github.com/robalobadob/wordmix/internal/words"
)

// Game is a play session over one word source.
type Game struct {
	src     *words.Source
	mixer   *mixer.Mixer
	builder *input.Builder
	tracker *stats.Tracker
	log     zerolog.Logger

	level  level.Level
	round  Round
	pair   words.Pair
	status Status
}

// Option customizes a Game.
type Option func(*Game)

// WithMixer replaces the crypto-seeded Mixer.
func WithMixer(m *mixer.Mixer) Option { return func(g *Game) { g.mixer = m } }

// WithTracker shares an existing score tracker.
func WithTracker(t *stats.Tracker) Option { return func(g *Game) { g.tracker = t } }

// WithLogger replaces the global logger.
func WithLogger(l zerolog.Logger) Option { return func(g *Game) { g.log = l } }

// WithLevel sets the initial level.
func WithLevel(l level.Level) Option { return func(g *Game) { g.level = l } }

// New constructs a Game drawing pairs from src.
func New(src *words.Source, opts ...Option) *Game {
	g := &Game{
		src:     src,
		builder: input.NewBuilder(pieces.NewBoard()),
		log:     log.Logger,
		status:  StatusIdle,
	}
	for _, o := range opts {
		o(g)
	}
	if g.mixer == nil {
		g.mixer = mixer.New()
	}
	if g.tracker == nil {
		g.tracker = stats.NewTracker()
	}
	return g
}

// Level returns the level the next round will use by default.
func (g *Game) Level() level.Level { return g.level }

// SetLevel changes the level for upcoming rounds. Pieces already on the
// board are left alone.
func (g *Game) SetLevel(l level.Level) {
	g.level = l
	g.log.Debug().Str("level", l.String()).Msg("level changed")
}

// NewRound mixes the next unused pair at level l and makes it current.
// Both lanes are emptied and every piece starts unused.
func (g *Game) NewRound(l level.Level) (Round, error) {
	pair, err := g.src.Next()
	if err != nil {
		return Round{}, err
	}
	mix, err := g.mixer.Split(pair, l.PieceSize())
	if err != nil {
		return Round{}, err
	}

	g.level = l
	g.pair = pair
	g.status = StatusPlaying
	g.round = Round{
		ID:          uuid.NewString(),
		Level:       l,
		Pieces:      append([]string(nil), mix.Pieces...),
		FirstBegin:  mix.FirstBegin,
		FirstEnd:    mix.FirstEnd,
		SecondBegin: mix.SecondBegin,
		SecondEnd:   mix.SecondEnd,
		Synonyms:    pair.Synonyms,
	}
	g.builder.Load(mix)
	g.tracker.RoundStarted(l)

	g.log.Debug().
		Str("round", g.round.ID).
		Str("level", l.String()).
		Int("pieces", len(mix.Pieces)).
		Bool("synonyms", pair.Synonyms).
		Msg("round started")
	return g.round, nil
}

// Round returns the current round snapshot.
func (g *Game) Round() Round { return g.round }

// Status reports the state of the current round.
func (g *Game) Status() Status { return g.status }

// SelectPiece adds piece i to lane l. It returns false when the move is not
// allowed in the lane's current state or the round is over.
func (g *Game) SelectPiece(l input.Lane, i int) (bool, error) {
	if err := g.requireRound(); err != nil {
		return false, err
	}
	if g.status != StatusPlaying {
		return false, nil
	}
	return g.builder.Add(l, i)
}

// DeselectFrom removes the pieces of lane l from position start onwards.
// Once the round is guessed or revealed the lanes are frozen.
func (g *Game) DeselectFrom(l input.Lane, start int) error {
	if err := g.requireRound(); err != nil {
		return err
	}
	if g.status != StatusPlaying {
		return apperr.Precondition("round is %s", g.status)
	}
	return g.builder.RemoveFrom(l, start)
}

// ClearInput empties both lanes and reports whether anything was removed.
// It does nothing once the round is over.
func (g *Game) ClearInput() bool {
	if g.status != StatusPlaying {
		return false
	}
	return g.builder.Clear()
}

// IsInputComplete reports whether both lanes hold a finished word.
func (g *Game) IsInputComplete() bool { return g.builder.Complete() }

// ReferenceWords returns the pair of the current round.
func (g *Game) ReferenceWords() (string, string) { return g.pair.First, g.pair.Second }

// LaneText returns the concatenated pieces of lane l.
func (g *Game) LaneText(l input.Lane) string { return g.builder.Text(l) }

// LaneIndexes returns the piece indexes of lane l in selection order.
func (g *Game) LaneIndexes(l input.Lane) []int { return g.builder.Indexes(l) }

// LaneState returns the state of lane l.
func (g *Game) LaneState(l input.Lane) input.State { return g.builder.State(l) }

// Pieces returns the board contents with usage flags.
func (g *Game) Pieces() []pieces.Piece { return g.builder.Board().Pieces() }

// Submit compares the assembled lanes with the reference pair. The words may
// sit in either lane. Incomplete input is a precondition error in every
// round state. A correct answer is scored once per round.
func (g *Game) Submit() (bool, error) {
	if err := g.requireRound(); err != nil {
		return false, err
	}
	if !g.builder.Complete() {
		return false, apperr.Precondition("input is not complete")
	}
	switch g.status {
	case StatusGuessed:
		return true, nil
	case StatusRevealed:
		return false, nil
	}

	a, b := g.builder.Text(input.First), g.builder.Text(input.Second)
	ok := (a == g.pair.First && b == g.pair.Second) || (a == g.pair.Second && b == g.pair.First)
	if ok {
		g.status = StatusGuessed
		g.tracker.RoundGuessed(g.round.Level)
	}
	g.log.Debug().Str("round", g.round.ID).Bool("correct", ok).Msg("input submitted")
	return ok, nil
}

// Reveal gives up the current round and returns its pair. No score is
// awarded afterwards.
func (g *Game) Reveal() (string, string, error) {
	if err := g.requireRound(); err != nil {
		return "", "", err
	}
	if g.status == StatusPlaying {
		g.status = StatusRevealed
		g.log.Debug().Str("round", g.round.ID).Msg("pair revealed")
	}
	return g.pair.First, g.pair.Second, nil
}

// Statistics returns the session score.
func (g *Game) Statistics() stats.Statistics { return g.tracker.Snapshot() }

// ResetStatistics zeroes the session score.
func (g *Game) ResetStatistics() { g.tracker.Reset() }

// OnSelectionChange registers fn to run whenever piece usage changes.
func (g *Game) OnSelectionChange(fn func()) { g.builder.Board().OnChange(fn) }

// OnInputCompleteChange registers fn to run when IsInputComplete flips.
func (g *Game) OnInputCompleteChange(fn func(bool)) { g.builder.OnCompleteChange(fn) }

// OnStatisticsChange registers fn to receive every score update.
func (g *Game) OnStatisticsChange(fn func(stats.Statistics)) { g.tracker.OnChange(fn) }

func (g *Game) requireRound() error {
	if g.status == StatusIdle {
		return apperr.Precondition("no round started")
	}
	return nil
}
