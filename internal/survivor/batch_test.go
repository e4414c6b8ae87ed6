package survivor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sievetail/cli/internal/errors"
)

func TestScannerRunSequential(t *testing.T) {
	table := newTable(t, 100_000)
	s := &Scanner{Table: table}
	results, err := s.Run(context.Background(), 5, 205)
	require.NoError(t, err)
	require.Len(t, results, 200)
	for i, got := range results {
		n := 5 + i
		want, err := Count(table, n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}
}

func TestScannerRunParallelMatchesSequential(t *testing.T) {
	table := newTable(t, 100_000)
	seq := &Scanner{Table: table, Workers: 1}
	want, err := seq.Run(context.Background(), 5, 1005)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 7} {
		par := &Scanner{Table: table, Workers: workers}
		got, err := par.Run(context.Background(), 5, 1005)
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestScannerRunEmptyRange(t *testing.T) {
	table := newTable(t, 1000)
	s := &Scanner{Table: table}
	results, err := s.Run(context.Background(), 10, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestScannerRunInvalidRange(t *testing.T) {
	table := newTable(t, 1000)
	s := &Scanner{Table: table}

	_, err := s.Run(context.Background(), 4, 100)
	require.Error(t, err)
	assert.Equal(t, errors.UndefinedInput, errors.KindOf(err))

	_, err = s.Run(context.Background(), 100, 50)
	require.Error(t, err)
	assert.Equal(t, errors.UndefinedInput, errors.KindOf(err))
}

func TestScannerRunCanceled(t *testing.T) {
	table := newTable(t, 100_000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &Scanner{Table: table, Workers: 3}
	_, err := s.Run(ctx, 5, 10_005)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScannerProgressCallback(t *testing.T) {
	table := newTable(t, 100_000)
	var calls int
	var lastDone int
	s := &Scanner{
		Table: table,
		OnResult: func(n, count, done, total int) {
			calls++
			assert.Equal(t, 100, total)
			assert.Greater(t, done, lastDone, "done must only advance")
			lastDone = done
		},
	}
	_, err := s.Run(context.Background(), 5, 105)
	require.NoError(t, err)
	assert.Equal(t, 100, calls)
	assert.Equal(t, 100, lastDone)
}

func TestScannerProgressCallbackParallel(t *testing.T) {
	table := newTable(t, 100_000)
	var calls int
	s := &Scanner{
		Table:   table,
		Workers: 4,
		// serialized by the scanner, so a plain counter is safe
		OnResult: func(n, count, done, total int) { calls++ },
	}
	_, err := s.Run(context.Background(), 5, 505)
	require.NoError(t, err)
	assert.Equal(t, 500, calls)
}
