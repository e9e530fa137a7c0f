// internal/pieces/board.go
//
// Board stores the pieces of the current round: content, role within the
// source word and whether the piece sits in an input lane.
//
// The board is a plain store. It does not know about lanes and never refuses
// a mutation; ordering rules live in the input package. Index arguments are
// expected to be valid (see Valid); out-of-range indexes panic like any slice
// access.

package pieces

import (
	"github.com/robalobadob/wordmix/internal/mixer"
)

// Kind is the role of a piece within its source word.
type Kind int

const (
	Middle Kind = iota
	Begin
	End
)

func (k Kind) String() string {
	switch k {
	case Begin:
		return "begin"
	case End:
		return "end"
	default:
		return "middle"
	}
}

// Piece is one slot of the shuffled sequence.
type Piece struct {
	Content string
	Kind    Kind
	Used    bool
	// Terminal marks the piece that finishes its word: every End piece and
	// the Begin piece of a single-piece word.
	Terminal bool
}

// Board holds the piece sequence of one round.
type Board struct {
	pieces    []Piece
	unused    int
	listeners []func()
}

// NewBoard returns an empty board.
func NewBoard() *Board { return &Board{} }

// OnChange registers fn to run after every change of the usage flags or the
// piece sequence.
func (b *Board) OnChange(fn func()) {
	b.listeners = append(b.listeners, fn)
}

func (b *Board) notify() {
	for _, fn := range b.listeners {
		fn()
	}
}

// Load replaces the sequence with the pieces of m. Begin wins over End when
// a word consists of a single piece.
func (b *Board) Load(m mixer.Mix) {
	ps := make([]Piece, len(m.Pieces))
	for i, c := range m.Pieces {
		ps[i] = Piece{Content: c}
	}
	for _, end := range []int{m.FirstEnd, m.SecondEnd} {
		ps[end].Kind = End
		ps[end].Terminal = true
	}
	for _, begin := range []int{m.FirstBegin, m.SecondBegin} {
		ps[begin].Kind = Begin
	}
	b.pieces = ps
	b.unused = len(ps)
	b.notify()
}

// Len reports the number of pieces.
func (b *Board) Len() int { return len(b.pieces) }

// Valid reports whether i addresses a piece.
func (b *Board) Valid(i int) bool { return i >= 0 && i < len(b.pieces) }

func (b *Board) Kind(i int) Kind      { return b.pieces[i].Kind }
func (b *Board) Used(i int) bool      { return b.pieces[i].Used }
func (b *Board) Terminal(i int) bool  { return b.pieces[i].Terminal }
func (b *Board) Content(i int) string { return b.pieces[i].Content }

// CountUnused reports how many pieces are not in any lane.
func (b *Board) CountUnused() int { return b.unused }

// Pieces returns a copy of the sequence.
func (b *Board) Pieces() []Piece {
	return append([]Piece(nil), b.pieces...)
}

// MarkUsed sets the usage flag of piece i. Listeners run only when the flag
// actually changes.
func (b *Board) MarkUsed(i int, used bool) {
	if b.set(i, used) {
		b.notify()
	}
}

// MarkManyUsed sets the usage flag of every index in is, notifying at most
// once.
func (b *Board) MarkManyUsed(is []int, used bool) {
	changed := false
	for _, i := range is {
		if b.set(i, used) {
			changed = true
		}
	}
	if changed {
		b.notify()
	}
}

func (b *Board) set(i int, used bool) bool {
	if b.pieces[i].Used == used {
		return false
	}
	b.pieces[i].Used = used
	if used {
		b.unused--
	} else {
		b.unused++
	}
	return true
}
