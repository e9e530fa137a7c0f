package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordmix/internal/level"
	"github.com/robalobadob/wordmix/internal/stats"
)

func TestTrackerAccumulates(t *testing.T) {
	tr := stats.NewTracker()
	var seen []stats.Statistics
	tr.OnChange(func(s stats.Statistics) { seen = append(seen, s) })

	tr.RoundStarted(level.Easy)
	tr.RoundGuessed(level.Easy)
	tr.RoundStarted(level.Hard)

	assert.Equal(t, stats.Statistics{ObtainedScore: 1, TotalScore: 5, GuessedPairs: 1, TotalPairs: 2}, tr.Snapshot())
	assert.Len(t, seen, 3)

	tr.Reset()
	assert.Equal(t, stats.Statistics{}, tr.Snapshot())
	assert.Equal(t, stats.Statistics{}, seen[len(seen)-1])
}
