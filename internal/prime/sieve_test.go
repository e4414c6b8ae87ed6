package prime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimesBelow(t *testing.T) {
	tests := []struct {
		name  string
		bound int
		want  []int
	}{
		{name: "negative bound", bound: -1, want: nil},
		{name: "zero bound", bound: 0, want: nil},
		{name: "bound two", bound: 2, want: nil},
		{name: "bound three", bound: 3, want: []int{2}},
		{name: "bound ten", bound: 10, want: []int{2, 3, 5, 7}},
		{name: "bound twenty", bound: 20, want: []int{2, 3, 5, 7, 11, 13, 17, 19}},
		{name: "prime bound excluded", bound: 13, want: []int{2, 3, 5, 7, 11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrimesBelow(tt.bound)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrimesBelowOrderedAndComposite(t *testing.T) {
	primes := PrimesBelow(10_000)
	require.NotEmpty(t, primes)
	for i, p := range primes {
		if i > 0 {
			assert.Greater(t, p, primes[i-1], "primes must be strictly increasing")
		}
		for d := 2; d*d <= p; d++ {
			assert.NotZero(t, p%d, "%d has divisor %d", p, d)
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		x    int
		want int
	}{
		{name: "negative", x: -5, want: 0},
		{name: "below two", x: 1, want: 0},
		{name: "two", x: 2, want: 1},
		{name: "ten", x: 10, want: 4},
		{name: "hundred", x: 100, want: 25},
		{name: "thousand", x: 1000, want: 168},
		{name: "hundredth prime", x: 541, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Count(tt.x))
		})
	}
}

// Count(x) must agree with the length of the sieve output over [2, x].
func TestCountMatchesSieve(t *testing.T) {
	for _, x := range []int{2, 3, 4, 10, 99, 100, 541, 1000, 7919} {
		assert.Equal(t, len(PrimesBelow(x+1)), Count(x), "x=%d", x)
	}
}

func TestIsqrt(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{n: -3, want: 0},
		{n: 0, want: 0},
		{n: 1, want: 1},
		{n: 3, want: 1},
		{n: 4, want: 2},
		{n: 48, want: 6},
		{n: 49, want: 7},
		{n: 50, want: 7},
		{n: 999_999, want: 999},
		{n: 1_000_000, want: 1000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Isqrt(tt.n), "n=%d", tt.n)
	}
}

func TestIsqrtExactOnSquares(t *testing.T) {
	for r := 0; r < 2000; r++ {
		n := r * r
		assert.Equal(t, r, Isqrt(n), "n=%d", n)
		if n > 0 {
			assert.Equal(t, r-1, Isqrt(n-1), "n=%d", n-1)
		}
	}
}
