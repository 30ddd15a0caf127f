package lookahead_test

import (
	"testing"

	"github.com/seqkit/lookahead"
	"github.com/seqkit/lookahead/internal/testing/require"
	"github.com/seqkit/lookahead/source"
)

func TestOptions(t *testing.T) {
	require.PanicWithError(t, "source can't be nil", func() {
		lookahead.New[int](nil)
	})

	require.PanicWithError(t, "capacity can't be < 0", func() {
		lookahead.WithCapacity[int](-1)
	})

	require.PanicWithError(t, "prometheus config can't be nil", func() {
		lookahead.WithPrometheus[int](nil)
	})
}

func TestWithCapacity(t *testing.T) {
	src := counting[int](source.Slice([]int{1, 2, 3}))
	buf := lookahead.New[int](src, lookahead.WithCapacity[int](64))

	// Preallocation is invisible: still lazy, still the same contract.
	require.Equal(t, src.pulls, 0)
	requirePeek(t, buf, 2, 3)
	require.Equal(t, src.pulls, 3)
}
