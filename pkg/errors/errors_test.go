package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneMatchesOriginal(t *testing.T) {
	err := Clone(ErrSectionFull, "section A is full")

	assert.ErrorIs(t, err, ErrSectionFull)
	assert.Equal(t, "section A is full", err.Message)
	assert.Equal(t, ErrSectionFull.Code, err.Code)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrInternal.Code, "failed to update roster")

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "boom")
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	e := FromError(fmt.Errorf("plain failure"))
	assert.Equal(t, ErrInternal.Code, e.Code)

	same := FromError(ErrUnknownUser)
	assert.Equal(t, ErrUnknownUser.Code, same.Code)
}
