// internal/mixer/mixer.go
//
// Splits a word pair into fixed-size pieces and scatters them over one
// shuffled sequence.
//
// Algorithm:
//   - A word of length L with piece size S yields ceil(L/S) pieces; all of
//     them are S letters except the last, which keeps the remainder.
//   - Output positions [0,total) are drawn uniformly without replacement.
//     The first word's pieces take the first draws in word order, then the
//     second word's pieces. Content assignment is deterministic, positions
//     form an unbiased permutation.
//   - The positions of each word's first and last piece are recorded; the
//     piece store derives BEGIN/END classification from them.

package mixer

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/robalobadob/wordmix/internal/apperr"
	"github.com/robalobadob/wordmix/internal/words"
)

// Mix is the shuffled result of one Split.
type Mix struct {
	Pieces      []string
	FirstBegin  int
	FirstEnd    int
	SecondBegin int
	SecondEnd   int
}

// Mixer owns the generator used for piece placement.
type Mixer struct {
	rng *rand.Rand
}

// New returns a Mixer seeded from crypto/rand.
func New() *Mixer {
	var b [16]byte
	_, _ = crand.Read(b[:])
	return NewWithSeed(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]))
}

// NewWithSeed returns a deterministic Mixer, for tests.
func NewWithSeed(seed1, seed2 uint64) *Mixer {
	return &Mixer{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Split cuts both words of p into pieces of pieceSize letters and shuffles
// them into a single sequence.
func (m *Mixer) Split(p words.Pair, pieceSize int) (Mix, error) {
	if pieceSize <= 0 {
		return Mix{}, apperr.Precondition("piece size %d", pieceSize)
	}
	if p.First == "" || p.Second == "" {
		return Mix{}, apperr.Precondition("empty word in pair %q/%q", p.First, p.Second)
	}

	first := SplitWord(p.First, pieceSize)
	second := SplitWord(p.Second, pieceSize)
	total := len(first) + len(second)

	free := make([]int, total)
	for i := range free {
		free[i] = i
	}
	draw := func() int {
		k := m.rng.IntN(len(free))
		pos := free[k]
		free[k] = free[len(free)-1]
		free = free[:len(free)-1]
		return pos
	}

	out := Mix{Pieces: make([]string, total)}
	place := func(pieces []string) (begin, end int) {
		for i, piece := range pieces {
			pos := draw()
			out.Pieces[pos] = piece
			if i == 0 {
				begin = pos
			}
			if i == len(pieces)-1 {
				end = pos
			}
		}
		return begin, end
	}
	out.FirstBegin, out.FirstEnd = place(first)
	out.SecondBegin, out.SecondEnd = place(second)
	return out, nil
}

// SplitWord returns the ordered pieces of w, size letters each except the
// last one.
func SplitWord(w string, size int) []string {
	runes := []rune(w)
	if size <= 0 || len(runes) == 0 {
		return nil
	}
	n := (len(runes) + size - 1) / size
	out := make([]string, 0, n)
	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		out = append(out, string(runes[start:end]))
	}
	return out
}

// PieceCount returns ceil(len(w)/size).
func PieceCount(w string, size int) int {
	l := len([]rune(w))
	if size <= 0 {
		return 0
	}
	return (l + size - 1) / size
}
