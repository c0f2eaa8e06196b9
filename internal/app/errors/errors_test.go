package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsSentinelAsCause(t *testing.T) {
	err := Wrapf(ErrEpisodeNotFound, "no episode stored for %s", "2026-08-30")
	assert.ErrorIs(t, err, ErrEpisodeNotFound)
	assert.Equal(t, "no episode stored for 2026-08-30: episode not found", err.Error())
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, Wrapf(nil, "ignored %d", 1))
}

func TestIsMatchesByMessage(t *testing.T) {
	assert.True(t, errors.Is(New("query failed"), ErrQueryFailed))
	assert.False(t, errors.Is(ErrQueryFailed, ErrScanFailed))
}
