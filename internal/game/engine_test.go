package game_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/robalobadob/wordmix/internal/apperr"
	"github.com/robalobadob/wordmix/internal/game"
	"github.com/robalobadob/wordmix/internal/input"
	"github.com/robalobadob/wordmix/internal/level"
	"github.com/robalobadob/wordmix/internal/mixer"
	"github.com/robalobadob/wordmix/internal/pieces"
	"github.com/robalobadob/wordmix/internal/stats"
	"github.com/robalobadob/wordmix/internal/words"
)

type GameSuite struct {
	suite.Suite
	g *game.Game
}

func (s *GameSuite) SetupTest() {
	src, err := words.FromLines("test", []string{"wordone=secondword"}, words.DefaultLimits,
		words.WithPicker(words.NewPickerWithSeed(1, 2)))
	s.Require().NoError(err)
	s.g = game.New(src,
		game.WithMixer(mixer.NewWithSeed(3, 4)),
		game.WithLogger(zerolog.Nop()))
}

// wordIndexes returns board positions spelling the round's first or second
// word, using the recorded begin/end positions to tell duplicates apart.
func (s *GameSuite) wordIndexes(second bool) []int {
	r := s.g.Round()
	word, begin, end := "wordone", r.FirstBegin, r.FirstEnd
	if second {
		word, begin, end = "secondword", r.SecondBegin, r.SecondEnd
	}
	reserved := map[int]bool{r.FirstBegin: true, r.FirstEnd: true, r.SecondBegin: true, r.SecondEnd: true}
	taken := map[int]bool{}
	for _, l := range input.Lanes {
		for _, i := range s.g.LaneIndexes(l) {
			taken[i] = true
		}
	}

	parts := mixer.SplitWord(word, r.Level.PieceSize())
	out := make([]int, len(parts))
	for k, part := range parts {
		switch k {
		case 0:
			out[k] = begin
		case len(parts) - 1:
			out[k] = end
		default:
			out[k] = -1
			for i, c := range r.Pieces {
				if c == part && !reserved[i] && !taken[i] {
					out[k] = i
					taken[i] = true
					break
				}
			}
			s.Require().NotEqual(-1, out[k], "no free piece %q", part)
		}
	}
	return out
}

func (s *GameSuite) selectAll(l input.Lane, is []int) {
	for _, i := range is {
		ok, err := s.g.SelectPiece(l, i)
		s.Require().NoError(err)
		s.Require().True(ok, "select %d into %s lane", i, l)
	}
}

func (s *GameSuite) TestNewRoundMediumScenario() {
	r, err := s.g.NewRound(level.Medium)
	s.Require().NoError(err)

	s.Len(r.Pieces, 9)
	s.True(r.Synonyms)
	s.NotEmpty(r.ID)
	s.Equal("wo", r.Pieces[r.FirstBegin])
	s.Equal("e", r.Pieces[r.FirstEnd])
	s.Equal("se", r.Pieces[r.SecondBegin])
	s.Equal("rd", r.Pieces[r.SecondEnd])

	kinds := map[pieces.Kind]int{}
	for _, p := range s.g.Pieces() {
		kinds[p.Kind]++
		s.False(p.Used)
	}
	s.Equal(2, kinds[pieces.Begin])
	s.Equal(2, kinds[pieces.End])
	s.Equal(5, kinds[pieces.Middle])

	s.Equal(stats.Statistics{TotalScore: 2, TotalPairs: 1}, s.g.Statistics())
	s.Equal(game.StatusPlaying, s.g.Status())
}

func (s *GameSuite) TestReconstructAndSubmit() {
	_, err := s.g.NewRound(level.Medium)
	s.Require().NoError(err)

	var completeEvents []bool
	s.g.OnInputCompleteChange(func(c bool) { completeEvents = append(completeEvents, c) })

	s.selectAll(input.First, s.wordIndexes(false))
	s.selectAll(input.Second, s.wordIndexes(true))
	s.True(s.g.IsInputComplete())
	s.Equal([]bool{true}, completeEvents)
	s.Equal("wordone", s.g.LaneText(input.First))
	s.Equal("secondword", s.g.LaneText(input.Second))

	ok, err := s.g.Submit()
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(game.StatusGuessed, s.g.Status())
	s.Equal(stats.Statistics{ObtainedScore: 2, TotalScore: 2, GuessedPairs: 1, TotalPairs: 1}, s.g.Statistics())

	ok, err = s.g.Submit()
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(1, s.g.Statistics().GuessedPairs, "scored once per round")
}

func (s *GameSuite) TestSwappedLanesAreAccepted() {
	_, err := s.g.NewRound(level.Easy)
	s.Require().NoError(err)

	s.selectAll(input.Second, s.wordIndexes(false))
	s.selectAll(input.First, s.wordIndexes(true))

	ok, err := s.g.Submit()
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(1, s.g.Statistics().ObtainedScore)
}

func (s *GameSuite) TestWrongAssemblyIsNotScored() {
	r, err := s.g.NewRound(level.Medium)
	s.Require().NoError(err)

	// First lane: word one's begin, then word two's middles and end.
	second := s.wordIndexes(true)
	s.selectAll(input.First, append([]int{r.FirstBegin}, second[1:]...))
	// Second lane: word two's begin, then word one's remaining pieces.
	first := s.wordIndexes(false)
	s.selectAll(input.Second, append([]int{r.SecondBegin}, first[1:]...))

	s.Require().True(s.g.IsInputComplete())
	s.Equal("wocondword", s.g.LaneText(input.First))
	s.Equal("serdone", s.g.LaneText(input.Second))

	ok, err := s.g.Submit()
	s.Require().NoError(err)
	s.False(ok)
	s.Equal(game.StatusPlaying, s.g.Status())
	s.Equal(0, s.g.Statistics().ObtainedScore)
}

func (s *GameSuite) TestSubmitIncomplete() {
	_, err := s.g.NewRound(level.Medium)
	s.Require().NoError(err)
	_, err = s.g.Submit()
	s.ErrorIs(err, apperr.ErrPrecondition)
}

func (s *GameSuite) TestOperationsBeforeFirstRound() {
	_, err := s.g.SelectPiece(input.First, 0)
	s.ErrorIs(err, apperr.ErrPrecondition)
	s.ErrorIs(s.g.DeselectFrom(input.First, 0), apperr.ErrPrecondition)
	_, err = s.g.Submit()
	s.ErrorIs(err, apperr.ErrPrecondition)
	_, _, err = s.g.Reveal()
	s.ErrorIs(err, apperr.ErrPrecondition)
	s.False(s.g.ClearInput())
	s.False(s.g.IsInputComplete())
}

func (s *GameSuite) TestNewRoundResetsInput() {
	_, err := s.g.NewRound(level.Medium)
	s.Require().NoError(err)
	s.selectAll(input.First, s.wordIndexes(false))
	s.selectAll(input.Second, s.wordIndexes(true))
	s.Require().True(s.g.IsInputComplete())

	r, err := s.g.NewRound(level.Medium)
	s.Require().NoError(err)
	s.Len(r.Pieces, 9)
	s.False(s.g.IsInputComplete())
	for _, l := range input.Lanes {
		s.Equal(input.Empty, s.g.LaneState(l))
		s.Empty(s.g.LaneIndexes(l))
	}
	for _, p := range s.g.Pieces() {
		s.False(p.Used)
	}
}

func (s *GameSuite) TestDeselectFromStartFreesLane() {
	_, err := s.g.NewRound(level.Medium)
	s.Require().NoError(err)
	s.selectAll(input.First, s.wordIndexes(false))

	changes := 0
	s.g.OnSelectionChange(func() { changes++ })
	s.Require().NoError(s.g.DeselectFrom(input.First, 0))
	s.Equal(input.Empty, s.g.LaneState(input.First))
	s.Equal(1, changes)
	for _, p := range s.g.Pieces() {
		s.False(p.Used)
	}
}

func (s *GameSuite) TestRevealEndsRound() {
	_, err := s.g.NewRound(level.Hard)
	s.Require().NoError(err)

	a, b, err := s.g.Reveal()
	s.Require().NoError(err)
	s.Equal("wordone", a)
	s.Equal("secondword", b)
	s.Equal(game.StatusRevealed, s.g.Status())

	ok, err := s.g.SelectPiece(input.First, s.g.Round().FirstBegin)
	s.Require().NoError(err)
	s.False(ok)

	_, err = s.g.Submit()
	s.ErrorIs(err, apperr.ErrPrecondition, "nothing was assembled")
	s.Equal(stats.Statistics{TotalScore: 4, TotalPairs: 1}, s.g.Statistics())
}

func (s *GameSuite) TestRevealedRoundNeverScores() {
	_, err := s.g.NewRound(level.Medium)
	s.Require().NoError(err)
	s.selectAll(input.First, s.wordIndexes(false))
	s.selectAll(input.Second, s.wordIndexes(true))
	s.Require().True(s.g.IsInputComplete())

	_, _, err = s.g.Reveal()
	s.Require().NoError(err)

	ok, err := s.g.Submit()
	s.Require().NoError(err)
	s.False(ok, "revealed rounds never score")
	s.Equal(0, s.g.Statistics().ObtainedScore)
}

func (s *GameSuite) TestLanesFrozenAfterGuess() {
	_, err := s.g.NewRound(level.Medium)
	s.Require().NoError(err)
	first, second := s.wordIndexes(false), s.wordIndexes(true)
	s.selectAll(input.First, first)
	s.selectAll(input.Second, second)

	ok, err := s.g.Submit()
	s.Require().NoError(err)
	s.Require().True(ok)

	s.False(s.g.ClearInput())
	s.ErrorIs(s.g.DeselectFrom(input.First, 0), apperr.ErrPrecondition)
	s.True(s.g.IsInputComplete())
	s.Equal(first, s.g.LaneIndexes(input.First))
	s.Equal(second, s.g.LaneIndexes(input.Second))

	ok, err = s.g.Submit()
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(1, s.g.Statistics().GuessedPairs)
}

func (s *GameSuite) TestSetLevelAffectsNextRoundOnly() {
	r, err := s.g.NewRound(level.Easy)
	s.Require().NoError(err)
	s.Len(r.Pieces, 3+4)

	s.g.SetLevel(level.Hard)
	s.Len(s.g.Pieces(), 7, "existing pieces are not re-split")

	r, err = s.g.NewRound(s.g.Level())
	s.Require().NoError(err)
	s.Len(r.Pieces, 17)
	s.Equal(level.Hard, r.Level)
}

func (s *GameSuite) TestResetStatistics() {
	_, err := s.g.NewRound(level.Easy)
	s.Require().NoError(err)
	s.g.ResetStatistics()
	s.Equal(stats.Statistics{}, s.g.Statistics())
}

func TestGameSuite(t *testing.T) {
	suite.Run(t, new(GameSuite))
}

func TestReferenceWords(t *testing.T) {
	src, err := words.FromLines("test", []string{"hot!cold"}, words.DefaultLimits)
	require.NoError(t, err)
	g := game.New(src, game.WithLogger(zerolog.Nop()))

	r, err := g.NewRound(level.Easy)
	require.NoError(t, err)
	require.False(t, r.Synonyms)
	a, b := g.ReferenceWords()
	require.Equal(t, "hot", a)
	require.Equal(t, "cold", b)

	// "hot" is a single piece and completes its lane on selection.
	ok, err := g.SelectPiece(input.First, r.FirstBegin)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, input.Complete, g.LaneState(input.First))
}
