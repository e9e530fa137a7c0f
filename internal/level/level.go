// internal/level/level.go
//
// Difficulty levels. A level decides how large the pieces of a word are and
// how many points a guessed pair is worth.

package level

import (
	"fmt"
	"strings"
)

// Level is the difficulty setting.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
)

// All lists the levels from easiest to hardest.
var All = []Level{Easy, Medium, Hard}

// PieceSize returns the number of letters per piece.
func (l Level) PieceSize() int {
	switch l {
	case Medium:
		return 2
	case Hard:
		return 1
	default:
		return 3
	}
}

// ScoreIncrement returns the points a pair is worth at this level.
func (l Level) ScoreIncrement() int {
	switch l {
	case Medium:
		return 2
	case Hard:
		return 4
	default:
		return 1
	}
}

func (l Level) String() string {
	switch l {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Parse maps "easy", "medium" or "hard" (any case) to a Level.
func Parse(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown level %q", s)
}

// UnmarshalText lets configuration decoders read a Level.
func (l *Level) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
