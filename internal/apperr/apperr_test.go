package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordmix/internal/apperr"
)

func TestIsMatchesByKind(t *testing.T) {
	err := apperr.New(apperr.KindFormat, "missing separator").WithRow(2)
	wrapped := fmt.Errorf("load: %w", err)

	assert.True(t, errors.Is(wrapped, apperr.ErrFormat))
	assert.False(t, errors.Is(wrapped, apperr.ErrDuplicateWord))
	assert.Equal(t, apperr.KindFormat, apperr.KindOf(wrapped))
	assert.Equal(t, apperr.Kind(0), apperr.KindOf(errors.New("plain")))
}

func TestErrorMessageCarriesContext(t *testing.T) {
	err := apperr.New(apperr.KindWordValidation, "too short").
		WithFile("pairs.txt").
		WithRow(4).
		WithWord("second", "ab")

	require.Equal(t,
		`word validation error (pairs.txt, line 5): too short [second word "ab"]`,
		err.Error())
}

func TestWithCopies(t *testing.T) {
	base := apperr.New(apperr.KindPrecondition, "bad index")
	withRow := base.WithRow(1)

	assert.Equal(t, -1, base.Row)
	assert.Equal(t, 1, withRow.Row)
	assert.Equal(t, "precondition violation: bad index", base.Error())
}
