package survivor

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"sievetail/cli/internal/errors"
	"sievetail/cli/internal/prime"
)

// Scanner evaluates Count across a range of n against a shared immutable
// prime table. With Workers ≤ 1 the scan is sequential; otherwise the
// range is split into contiguous blocks evaluated by an errgroup, each
// worker reading the table and writing only its own result slots.
type Scanner struct {
	Table   *prime.Table
	Workers int

	// OnResult, when set, is called once per finished n with the running
	// completion counters. Calls are serialized.
	OnResult func(n, count, done, total int)

	mu   sync.Mutex
	done int
}

// Run computes Count(n) for every n in [start, end) and returns the
// results in range order. An empty range yields an empty slice. The
// first count error aborts the run, as does context cancellation.
func (s *Scanner) Run(ctx context.Context, start, end int) ([]int, error) {
	if start < 5 {
		return nil, errors.New(errors.UndefinedInput,
			fmt.Sprintf("scan start must be at least 5, got %d", start))
	}
	if end < start {
		return nil, errors.New(errors.UndefinedInput,
			fmt.Sprintf("scan range [%d, %d) is inverted", start, end))
	}
	total := end - start
	results := make([]int, total)
	s.mu.Lock()
	s.done = 0
	s.mu.Unlock()

	if s.Workers <= 1 {
		for n := start; n < end; n++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			c, err := Count(s.Table, n)
			if err != nil {
				return nil, err
			}
			results[n-start] = c
			s.report(n, c, total)
		}
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	block := (total + s.Workers - 1) / s.Workers
	for lo := 0; lo < total; lo += block {
		hi := lo + block
		if hi > total {
			hi = total
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				n := start + i
				c, err := Count(s.Table, n)
				if err != nil {
					return err
				}
				results[i] = c
				s.report(n, c, total)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// report advances the completion counter and invokes OnResult under the
// lock, keeping callbacks serialized even in parallel mode.
func (s *Scanner) report(n, count, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done++
	if s.OnResult != nil {
		s.OnResult(n, count, s.done, total)
	}
}
