// internal/input/builder.go
//
// Builder assembles the player's two answers from board pieces.
//
// Each lane moves through Empty → Building → Complete:
//   - Empty accepts only a Begin piece. A Begin piece that is also the only
//     piece of its word completes the lane at once.
//   - Building accepts Middle pieces, and an End piece which completes it.
//   - Complete accepts nothing until pieces are removed.
//
// Last-piece rule: while the other lane is Complete, a piece that would
// complete this lane is accepted only if it is the last unused piece on the
// board. Without it an End piece could be consumed while Middle pieces are
// still waiting. This also covers a single-piece word: its Begin piece
// completes an Empty lane, so it is the one case where a Begin piece can be
// refused from Empty.
//
// Rejected additions return false and leave everything untouched. Malformed
// arguments (unknown lane, bad index, piece already used) are precondition
// errors.

package input

import (
	"strings"

	"github.com/robalobadob/wordmix/internal/apperr"
	"github.com/robalobadob/wordmix/internal/mixer"
	"github.com/robalobadob/wordmix/internal/pieces"
)

// Lane selects one of the two answers.
type Lane int

const (
	First Lane = iota
	Second
)

// Lanes lists both lanes in order.
var Lanes = [...]Lane{First, Second}

func (l Lane) String() string {
	switch l {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "unknown"
	}
}

func (l Lane) other() Lane { return 1 - l }

func (l Lane) valid() bool { return l == First || l == Second }

// State of a lane.
type State int

const (
	Empty State = iota
	Building
	Complete
)

func (s State) String() string {
	switch s {
	case Building:
		return "building"
	case Complete:
		return "complete"
	default:
		return "empty"
	}
}

type lane struct {
	indexes []int
	state   State
}

// Builder is the two-lane input state machine over a Board.
type Builder struct {
	board     *pieces.Board
	lanes     [2]lane
	listeners []func(bool)
	complete  bool
}

// NewBuilder returns a Builder driving board.
func NewBuilder(board *pieces.Board) *Builder {
	return &Builder{board: board}
}

// OnCompleteChange registers fn to run whenever Complete() flips.
func (b *Builder) OnCompleteChange(fn func(bool)) {
	b.listeners = append(b.listeners, fn)
}

// Board exposes the piece store.
func (b *Builder) Board() *pieces.Board { return b.board }

// Load installs a new mix on the board and empties both lanes.
func (b *Builder) Load(m mixer.Mix) {
	b.lanes = [2]lane{}
	b.board.Load(m)
	b.refresh()
}

// Add appends piece i to lane l if the lane's state allows it.
func (b *Builder) Add(l Lane, i int) (bool, error) {
	if !l.valid() {
		return false, apperr.Precondition("unknown lane %d", int(l))
	}
	if !b.board.Valid(i) {
		return false, apperr.Precondition("piece index %d outside [0, %d)", i, b.board.Len())
	}
	if b.board.Used(i) {
		return false, apperr.Precondition("piece %d already selected", i)
	}

	ln := &b.lanes[l]
	var next State
	switch ln.state {
	case Empty:
		if b.board.Kind(i) != pieces.Begin {
			return false, nil
		}
		next = Building
		if b.board.Terminal(i) {
			next = Complete
		}
	case Building:
		switch b.board.Kind(i) {
		case pieces.Middle:
			next = Building
		case pieces.End:
			next = Complete
		default:
			return false, nil
		}
	default:
		return false, nil
	}

	if next == Complete && b.lanes[l.other()].state == Complete && b.board.CountUnused() != 1 {
		return false, nil
	}

	ln.indexes = append(ln.indexes, i)
	ln.state = next
	b.board.MarkUsed(i, true)
	b.refresh()
	return true, nil
}

// RemoveFrom drops the lane's pieces from position start to the end and
// frees them on the board.
func (b *Builder) RemoveFrom(l Lane, start int) error {
	if !l.valid() {
		return apperr.Precondition("unknown lane %d", int(l))
	}
	ln := &b.lanes[l]
	if start < 0 || start >= len(ln.indexes) {
		return apperr.Precondition("range start %d outside [0, %d)", start, len(ln.indexes))
	}

	removed := append([]int(nil), ln.indexes[start:]...)
	ln.indexes = ln.indexes[:start]
	if start == 0 {
		ln.state = Empty
	} else {
		ln.state = Building
	}
	b.board.MarkManyUsed(removed, false)
	b.refresh()
	return nil
}

// Clear empties both lanes. It reports whether any piece was removed.
func (b *Builder) Clear() bool {
	var removed []int
	for i := range b.lanes {
		removed = append(removed, b.lanes[i].indexes...)
		b.lanes[i] = lane{}
	}
	if len(removed) == 0 {
		return false
	}
	b.board.MarkManyUsed(removed, false)
	b.refresh()
	return true
}

// Complete reports whether both lanes are complete.
func (b *Builder) Complete() bool {
	return b.lanes[First].state == Complete && b.lanes[Second].state == Complete
}

// State returns the state of lane l. Unknown lanes report Empty.
func (b *Builder) State(l Lane) State {
	if !l.valid() {
		return Empty
	}
	return b.lanes[l].state
}

// Indexes returns a copy of the piece indexes in lane l, in selection order.
// Unknown lanes hold no pieces.
func (b *Builder) Indexes(l Lane) []int {
	if !l.valid() {
		return nil
	}
	return append([]int(nil), b.lanes[l].indexes...)
}

// Text concatenates the contents of the pieces in lane l.
func (b *Builder) Text(l Lane) string {
	if !l.valid() {
		return ""
	}
	var sb strings.Builder
	for _, i := range b.lanes[l].indexes {
		sb.WriteString(b.board.Content(i))
	}
	return sb.String()
}

func (b *Builder) refresh() {
	c := b.Complete()
	if c == b.complete {
		return
	}
	b.complete = c
	for _, fn := range b.listeners {
		fn(c)
	}
}
