// internal/stats/stats.go
//
// Running score of a play session. Every presented pair adds its level's
// increment to the available total; every guessed pair adds it to the
// obtained score. Values only grow until Reset.

package stats

import "github.com/robalobadob/wordmix/internal/level"

// Statistics is a snapshot of the session score.
type Statistics struct {
	ObtainedScore int `json:"obtainedScore"`
	TotalScore    int `json:"totalScore"`
	GuessedPairs  int `json:"guessedPairs"`
	TotalPairs    int `json:"totalPairs"`
}

// Tracker accumulates Statistics and notifies listeners on every change.
type Tracker struct {
	s         Statistics
	listeners []func(Statistics)
}

// NewTracker returns a zeroed Tracker.
func NewTracker() *Tracker { return &Tracker{} }

// OnChange registers fn to receive the new snapshot after each change.
func (t *Tracker) OnChange(fn func(Statistics)) {
	t.listeners = append(t.listeners, fn)
}

// RoundStarted counts a presented pair worth l's increment.
func (t *Tracker) RoundStarted(l level.Level) {
	t.s.TotalPairs++
	t.s.TotalScore += l.ScoreIncrement()
	t.notify()
}

// RoundGuessed counts a correctly reconstructed pair.
func (t *Tracker) RoundGuessed(l level.Level) {
	t.s.GuessedPairs++
	t.s.ObtainedScore += l.ScoreIncrement()
	t.notify()
}

// Reset zeroes every counter.
func (t *Tracker) Reset() {
	t.s = Statistics{}
	t.notify()
}

// Snapshot returns the current values.
func (t *Tracker) Snapshot() Statistics { return t.s }

func (t *Tracker) notify() {
	for _, fn := range t.listeners {
		fn(t.s)
	}
}
