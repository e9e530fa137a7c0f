// internal/game/types.go
//
// Core type definitions for the game facade.
// Defines:
//   - Status: coarse state of the current round.
//   - Round: snapshot of a freshly mixed pair handed to the frontend.

package game

import "github.com/robalobadob/wordmix/internal/level"

// Status of the current round.
//   - "idle":     no round has been started yet.
//   - "playing":  pieces are on the board, the pair is not solved.
//   - "guessed":  the submitted input matched the reference pair.
//   - "revealed": the player gave up and the pair was shown.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusPlaying  Status = "playing"
	StatusGuessed  Status = "guessed"
	StatusRevealed Status = "revealed"
)

// Round describes one mixed pair.
type Round struct {
	ID          string      // Random identifier, used to correlate log lines.
	Level       level.Level // Level the pair was split with.
	Pieces      []string    // Shuffled piece contents.
	FirstBegin  int         // Position of the first word's first piece.
	FirstEnd    int         // Position of the first word's last piece.
	SecondBegin int         // Position of the second word's first piece.
	SecondEnd   int         // Position of the second word's last piece.
	Synonyms    bool        // False means the words are antonyms.
}
