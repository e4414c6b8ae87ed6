// Package prime implements the sieve machinery behind the survivor counts:
// prime generation, an immutable prime table, the prime-counting function π,
// rank lookup, and the greatest-prime searches.
package prime

import "math"

// PrimesBelow returns every prime strictly less than bound, in increasing
// order, using a Sieve of Eratosthenes. Bounds of 2 or less yield an
// empty result. O(bound·log log bound) time, O(bound) space.
func PrimesBelow(bound int) []int {
	if bound <= 2 {
		return nil
	}
	composite := make([]bool, bound)
	composite[0], composite[1] = true, true
	for i := 2; i*i < bound; i++ {
		if composite[i] {
			continue
		}
		// Multiples below i² were already struck by smaller primes.
		for m := i * i; m < bound; m += i {
			composite[m] = true
		}
	}
	// π(x) ~ x/ln x gives a close starting capacity.
	capHint := 8
	if bound > 16 {
		capHint = int(float64(bound) / math.Log(float64(bound)))
	}
	primes := make([]int, 0, capHint)
	for i := 2; i < bound; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}
	return primes
}

// Count returns π(x), the number of primes less than or equal to x.
// It sieves [0, x] from scratch on every call and counts the surviving
// flags; use Table.Pi instead when a prebuilt table already covers x.
func Count(x int) int {
	if x < 2 {
		return 0
	}
	composite := make([]bool, x+1)
	composite[0], composite[1] = true, true
	count := 0
	for i := 2; i <= x; i++ {
		if composite[i] {
			continue
		}
		count++
		for m := i * i; m <= x; m += i {
			composite[m] = true
		}
	}
	return count
}

// Isqrt returns ⌊√n⌋ for n ≥ 0, and 0 for negative n.
// The float estimate is corrected so the result is exact across the
// full int range.
func Isqrt(n int) int {
	if n < 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
