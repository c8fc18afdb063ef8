//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"fitbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	errSlotTaken := errs.Define("slot taken", errs.ErrConflict)

	assert.Equal(t, errs.ErrConflict, errs.Category(errSlotTaken))
	assert.Equal(t, errs.ErrConflict, errs.Category(errs.Wrap(errSlotTaken, "create booking")))
	assert.Equal(t, errs.ErrInternal, errs.Category(errors.New("plain")))
	assert.Equal(t, errs.ErrInternal, errs.Category(nil))
}

func TestWithCause(t *testing.T) {
	errStoreFailed := errs.Define("authorization not stored", errs.ErrInternal)
	cause := errors.New("connection reset")

	err := errs.WithCause(errStoreFailed, cause, "store reference")

	assert.True(t, errs.Is(err, errStoreFailed))
	assert.False(t, errors.Is(err, cause), "secondary cause must stay out of the chain")
	assert.Contains(t, errs.ExtractStackLines(err, 0), "store reference: authorization not stored")
}

func TestMark(t *testing.T) {
	assert.Equal(t, errs.ErrNotFound, errs.Mark(nil, errs.ErrNotFound))

	marked := errs.Mark(errors.New("no rows"), errs.ErrNotFound)
	assert.True(t, errs.Is(marked, errs.ErrNotFound))
	assert.Equal(t, "no rows", marked.Error())
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))
	assert.Len(t, errs.ExtractStackLines(errs.New("boom"), 3), 3)
}
