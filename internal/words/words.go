// internal/words/words.go
//
// Word-pair records and the line parser.
//
// Line format:
//   word1=word2   synonyms
//   word1!word2   antonyms
//
// Constraints:
//   • Exactly one separator per line; "=" and "!" never mix.
//   • Words are lowercase a–z only and at least Limits.MinWordSize long.
//   • Combined length lies within [Limits.MinPairSize, Limits.MaxPairSize].
//   • The two words differ.
//
// The first malformed line aborts the whole load; the error carries its row.

package words

import (
	"strings"

	"github.com/robalobadob/wordmix/internal/apperr"
)

const (
	synonymSep = '='
	antonymSep = '!'
)

// Side names used in word validation errors.
const (
	SideFirst  = "first"
	SideSecond = "second"
)

// Pair is one parsed line of the word source.
type Pair struct {
	First    string
	Second   string
	Synonyms bool // false means antonyms
}

// Limits bounds the accepted word and pair sizes.
type Limits struct {
	MinWordSize int
	MinPairSize int
	MaxPairSize int
}

// DefaultLimits are used when configuration does not override them.
var DefaultLimits = Limits{MinWordSize: 3, MinPairSize: 6, MaxPairSize: 24}

// LoadLines parses every line into a Pair. It fails on the first bad line.
func LoadLines(lines []string, limits Limits) ([]Pair, error) {
	out := make([]Pair, 0, len(lines))
	for row, line := range lines {
		p, err := parseLine(line, limits)
		if err != nil {
			return nil, err.WithRow(row)
		}
		out = append(out, p)
	}
	return out, nil
}

func parseLine(line string, limits Limits) (Pair, *apperr.Error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Pair{}, apperr.New(apperr.KindFormat, "empty line")
	}

	syn := strings.Count(line, string(synonymSep))
	ant := strings.Count(line, string(antonymSep))
	var sep rune
	switch {
	case syn > 0 && ant > 0:
		return Pair{}, apperr.New(apperr.KindFormat, "both separators present")
	case syn == 0 && ant == 0:
		return Pair{}, apperr.New(apperr.KindFormat, "missing separator")
	case syn > 1 || ant > 1:
		return Pair{}, apperr.New(apperr.KindFormat, "repeated separator")
	case syn == 1:
		sep = synonymSep
	default:
		sep = antonymSep
	}

	first, second, _ := strings.Cut(line, string(sep))
	first = strings.TrimSpace(first)
	second = strings.TrimSpace(second)

	if err := validateWord(first, limits); err != nil {
		return Pair{}, err.WithWord(SideFirst, first)
	}
	if err := validateWord(second, limits); err != nil {
		return Pair{}, err.WithWord(SideSecond, second)
	}
	if size := len(first) + len(second); size < limits.MinPairSize || size > limits.MaxPairSize {
		return Pair{}, apperr.Newf(apperr.KindWordValidation,
			"pair length %d outside [%d, %d]", size, limits.MinPairSize, limits.MaxPairSize)
	}
	if first == second {
		return Pair{}, apperr.Newf(apperr.KindDuplicateWord, "%q appears on both sides", first)
	}
	return Pair{First: first, Second: second, Synonyms: sep == synonymSep}, nil
}

// validateWord checks the character set and the minimum length.
func validateWord(w string, limits Limits) *apperr.Error {
	if w == "" {
		return apperr.New(apperr.KindWordValidation, "empty word")
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return apperr.Newf(apperr.KindWordValidation, "illegal character %q", r)
		}
	}
	if len(w) < limits.MinWordSize {
		return apperr.Newf(apperr.KindWordValidation, "shorter than %d letters", limits.MinWordSize)
	}
	return nil
}
