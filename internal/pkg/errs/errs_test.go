//go:build unit

package errs_test

import (
	stderrors "errors"
	"testing"

	"agora-server/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark_SentinelMatching(t *testing.T) {
	sentinel := errs.New("domain validation error")
	cause := errs.New("party size must be at least 1")

	marked := errs.Mark(cause, sentinel)
	require.Error(t, marked)

	// The mark is only visible through this package; boundary code that
	// matches with the standard library silently falls through.
	assert.True(t, errs.Is(marked, sentinel))
	assert.False(t, stderrors.Is(marked, sentinel))

	// The original cause stays reachable either way.
	assert.True(t, errs.Is(marked, cause))
	assert.True(t, stderrors.Is(marked, cause))
}

func TestMark_NilCauseReturnsSentinel(t *testing.T) {
	sentinel := errs.New("not found")

	assert.Same(t, sentinel, errs.Mark(nil, sentinel))
}

func TestIs_FollowsWrapChain(t *testing.T) {
	sentinel := errs.New("not found")

	wrapped := errs.Wrap(sentinel, "loading reservation")
	assert.True(t, errs.Is(wrapped, sentinel))

	assert.Nil(t, errs.Wrap(nil, "no-op"))
}
