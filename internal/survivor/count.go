// Package survivor computes, for each n, how many composites not
// exceeding n would survive a Sieve of Eratosthenes truncated at the
// largest prime p ≤ √n: exactly the composites p·q with q prime and
// q > √n. The count reduces to the closed form π(⌊n/p⌋) − rank(p).
package survivor

import (
	"fmt"

	"sievetail/cli/internal/errors"
	"sievetail/cli/internal/prime"
)

// Breakdown carries the intermediate values of one survivor count,
// for explain-style reporting.
type Breakdown struct {
	N        int
	P        int // largest prime ≤ √n
	Rank     int // 1-based rank of P
	Quotient int // ⌊n/P⌋
	Pi       int // π(⌊n/P⌋)
	Count    int // Pi − Rank
}

// Count returns the number of composites m ≤ n whose smallest prime
// factor is the largest prime p ≤ √n. Defined for n ≥ 5; smaller n
// fail with undefined_input. A table too small for √n or ⌊n/p⌋ fails
// with table_bound_exceeded.
func Count(t *prime.Table, n int) (int, error) {
	b, err := Explain(t, n)
	if err != nil {
		return 0, err
	}
	return b.Count, nil
}

// Explain computes Count along with its intermediate values.
func Explain(t *prime.Table, n int) (Breakdown, error) {
	if n < 5 {
		return Breakdown{}, errors.New(errors.UndefinedInput,
			fmt.Sprintf("no prime pair p·q exists for n=%d; counts are defined for n ≥ 5", n))
	}
	root := prime.Isqrt(n)
	if root >= t.Bound() {
		return Breakdown{}, errors.New(errors.TableBoundExceeded,
			fmt.Sprintf("√%d = %d is past the table bound %d", n, root, t.Bound()))
	}
	p, ok := t.GreatestAtMost(root)
	if !ok {
		return Breakdown{}, errors.New(errors.UndefinedInput,
			fmt.Sprintf("no prime ≤ √%d exists in the table", n))
	}
	rank, err := t.Rank(p)
	if err != nil {
		return Breakdown{}, err
	}
	quot := n / p
	pi, err := t.Pi(quot)
	if err != nil {
		return Breakdown{}, err
	}
	return Breakdown{N: n, P: p, Rank: rank, Quotient: quot, Pi: pi, Count: pi - rank}, nil
}
