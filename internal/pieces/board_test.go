package pieces_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordmix/internal/mixer"
	"github.com/robalobadob/wordmix/internal/pieces"
)

// wordoneMix is "wordone=secondword" at piece size 2, unshuffled.
func wordoneMix() mixer.Mix {
	return mixer.Mix{
		Pieces:      []string{"wo", "rd", "on", "e", "se", "co", "nd", "wo", "rd"},
		FirstBegin:  0,
		FirstEnd:    3,
		SecondBegin: 4,
		SecondEnd:   8,
	}
}

func TestLoadClassifies(t *testing.T) {
	b := pieces.NewBoard()
	b.Load(wordoneMix())

	want := []pieces.Kind{
		pieces.Begin, pieces.Middle, pieces.Middle, pieces.End,
		pieces.Begin, pieces.Middle, pieces.Middle, pieces.Middle, pieces.End,
	}
	require.Equal(t, len(want), b.Len())
	for i, k := range want {
		assert.Equal(t, k, b.Kind(i), "piece %d", i)
		assert.False(t, b.Used(i))
		assert.Equal(t, k == pieces.End, b.Terminal(i), "piece %d", i)
	}
	assert.Equal(t, 9, b.CountUnused())
	assert.Equal(t, "co", b.Content(5))
}

func TestLoadSinglePieceWordIsBegin(t *testing.T) {
	b := pieces.NewBoard()
	b.Load(mixer.Mix{Pieces: []string{"col", "hot", "d"}, FirstBegin: 1, FirstEnd: 1, SecondBegin: 0, SecondEnd: 2})

	assert.Equal(t, pieces.Begin, b.Kind(1))
	assert.True(t, b.Terminal(1))
	assert.Equal(t, pieces.Begin, b.Kind(0))
	assert.False(t, b.Terminal(0))
	assert.Equal(t, pieces.End, b.Kind(2))
}

func TestMarkUsedNotifiesOnlyOnFlip(t *testing.T) {
	b := pieces.NewBoard()
	calls := 0
	b.OnChange(func() { calls++ })

	b.Load(wordoneMix())
	require.Equal(t, 1, calls)

	b.MarkUsed(2, true)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 8, b.CountUnused())

	b.MarkUsed(2, true)
	assert.Equal(t, 2, calls, "setting the same flag again is silent")

	b.MarkManyUsed([]int{2, 3, 4}, true)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 6, b.CountUnused())

	b.MarkManyUsed([]int{0, 1}, false)
	assert.Equal(t, 3, calls, "nothing flipped")

	b.MarkManyUsed([]int{2, 3, 4}, false)
	assert.Equal(t, 4, calls)
	assert.Equal(t, 9, b.CountUnused())
}

func TestPiecesReturnsCopy(t *testing.T) {
	b := pieces.NewBoard()
	b.Load(wordoneMix())
	ps := b.Pieces()
	ps[0].Used = true
	assert.False(t, b.Used(0))
	assert.True(t, b.Valid(8))
	assert.False(t, b.Valid(9))
	assert.False(t, b.Valid(-1))
}

func TestReloadClearsUsage(t *testing.T) {
	b := pieces.NewBoard()
	b.Load(wordoneMix())
	b.MarkManyUsed([]int{0, 1, 2, 3}, true)

	b.Load(wordoneMix())
	assert.Equal(t, 9, b.CountUnused())
	for i := 0; i < b.Len(); i++ {
		assert.False(t, b.Used(i))
	}
}
