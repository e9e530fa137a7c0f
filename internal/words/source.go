// internal/words/source.go
//
// Source owns the loaded pairs and hands out a random unused one per round.
//
// Loading:
//   - ReadFile reads a word-pair file from disk (WORDMIX_WORDS_FILE).
//   - Embedded falls back to the list bundled in assets.
//   - FromLines parses lines already read by the caller.
//
// Errors from parsing carry the source name and the failing row.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordmix/assets"
	"github.com/robalobadob/wordmix/internal/apperr"
)

// Source is a rotation over validated word pairs.
type Source struct {
	name   string
	pairs  []Pair
	used   map[int]struct{}
	picker *Picker
}

// SourceOption customizes a Source.
type SourceOption func(*Source)

// WithPicker replaces the default crypto-seeded Picker.
func WithPicker(p *Picker) SourceOption {
	return func(s *Source) { s.picker = p }
}

// FromLines parses lines into a Source named name.
func FromLines(name string, lines []string, limits Limits, opts ...SourceOption) (*Source, error) {
	pairs, err := LoadLines(lines, limits)
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return nil, ae.WithFile(name)
		}
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, apperr.New(apperr.KindSourceExhausted, "no word pairs").WithFile(name)
	}

	s := &Source{name: name, pairs: pairs, used: make(map[int]struct{}, len(pairs))}
	for _, o := range opts {
		o(s)
	}
	if s.picker == nil {
		s.picker = NewPicker()
	}
	log.Info().Str("source", name).Int("pairs", len(pairs)).Msg("word pairs loaded")
	return s, nil
}

// ReadFile loads a word-pair file. Trailing blank lines are ignored.
func ReadFile(path string, limits Limits, opts ...SourceOption) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word source: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return FromLines(filepath.Base(path), lines, limits, opts...)
}

// Embedded loads the bundled default list.
func Embedded(limits Limits, opts ...SourceOption) (*Source, error) {
	lines, err := assets.PairLines()
	if err != nil {
		return nil, fmt.Errorf("read embedded pairs: %w", err)
	}
	return FromLines(assets.PairsFile, lines, limits, opts...)
}

// Next returns a pair not handed out since the last wraparound.
func (s *Source) Next() (Pair, error) {
	i, err := s.picker.PickUnused(s.used, len(s.pairs))
	if err != nil {
		return Pair{}, err
	}
	return s.pairs[i], nil
}

// Len reports the number of loaded pairs.
func (s *Source) Len() int { return len(s.pairs) }

// Name reports where the pairs came from.
func (s *Source) Name() string { return s.name }
