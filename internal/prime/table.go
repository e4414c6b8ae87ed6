package prime

import (
	"fmt"
	"sort"

	"sievetail/cli/internal/errors"
)

// Table is an immutable, strictly increasing sequence of all primes below
// a fixed bound, built once and shared read-only by every query. Callers
// that need primes past the bound get a typed table_bound_exceeded error
// rather than a silently truncated answer.
type Table struct {
	primes []int
	bound  int
}

// NewTable sieves all primes below bound into a fresh table.
func NewTable(bound int) (*Table, error) {
	if bound < 2 {
		return nil, errors.New(errors.InvalidBound, fmt.Sprintf("table bound must be at least 2, got %d", bound))
	}
	return &Table{primes: PrimesBelow(bound), bound: bound}, nil
}

// Bound returns the exclusive upper bound the table was sieved to.
func (t *Table) Bound() int { return t.bound }

// Len returns the number of primes in the table.
func (t *Table) Len() int { return len(t.primes) }

// At returns the i-th prime (0-based) in the table.
func (t *Table) At(i int) int { return t.primes[i] }

// Primes returns a copy of the table contents. The copy keeps the
// table itself immutable.
func (t *Table) Primes() []int {
	out := make([]int, len(t.primes))
	copy(out, t.primes)
	return out
}

// Pi returns π(x), the number of primes ≤ x, by binary search over the
// table. x must be below the table bound; larger queries fail with a
// table_bound_exceeded error so the caller can regenerate the table
// instead of receiving an undercount.
func (t *Table) Pi(x int) (int, error) {
	if x >= t.bound {
		return 0, errors.New(errors.TableBoundExceeded,
			fmt.Sprintf("π(%d) needs primes up to %d but the table stops below %d", x, x, t.bound))
	}
	if x < 2 {
		return 0, nil
	}
	return sort.SearchInts(t.primes, x+1), nil
}

// Rank returns the 1-based rank of the prime p in the increasing prime
// sequence (2→1, 3→2, 13→6). It fails with not_prime when p is 1 or
// less or absent from the table, and with table_bound_exceeded when p
// is past the bound and absence cannot be decided.
func (t *Table) Rank(p int) (int, error) {
	if p <= 1 {
		return 0, errors.New(errors.NotPrime, fmt.Sprintf("%d is not a prime", p))
	}
	if p >= t.bound {
		return 0, errors.New(errors.TableBoundExceeded,
			fmt.Sprintf("rank of %d needs a table bound above %d, have %d", p, p, t.bound))
	}
	i := sort.SearchInts(t.primes, p)
	if i == len(t.primes) || t.primes[i] != p {
		return 0, errors.New(errors.NotPrime, fmt.Sprintf("%d is not a prime", p))
	}
	return i + 1, nil
}

// GreatestBelow returns the greatest prime strictly less than target,
// and false when every table entry is ≥ target.
func (t *Table) GreatestBelow(target float64) (int, bool) {
	i := sort.Search(len(t.primes), func(i int) bool {
		return float64(t.primes[i]) >= target
	})
	if i == 0 {
		return 0, false
	}
	return t.primes[i-1], true
}

// GreatestAtMost returns the greatest prime ≤ x, and false when the
// table holds none. This is the form the survivor formula needs: when
// √n is itself prime, that prime is the answer, not its predecessor.
func (t *Table) GreatestAtMost(x int) (int, bool) {
	i := sort.SearchInts(t.primes, x+1)
	if i == 0 {
		return 0, false
	}
	return t.primes[i-1], true
}
