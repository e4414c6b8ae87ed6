// Copyright (c) 2025 Sievetail
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"sievetail/cli/internal/prime"

	"github.com/spf13/cobra"
)

var (
	primesBelow     int
	primesCountOnly bool
)

// primesCmd represents the primes command for inspecting the sieve output.
// It lists every prime below a bound, or just π of the bound, sieving
// from scratch on each invocation.
var primesCmd = &cobra.Command{
	Use:   "primes",
	Short: "List the primes below a bound",
	Long: `The primes command runs the Sieve of Eratosthenes up to --below and prints
the primes it finds, one per line. With --count-only it prints only how many
there are. Each invocation sieves from scratch; it does not reuse a table.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		if primesCountOnly {
			fmt.Println(prime.Count(primesBelow - 1))
			return nil
		}
		w := bufio.NewWriter(os.Stdout)
		for _, p := range prime.PrimesBelow(primesBelow) {
			w.WriteString(strconv.Itoa(p))
			w.WriteByte('\n')
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(primesCmd)
	primesCmd.Flags().IntVar(&primesBelow, "below", 100, "Exclusive upper bound of the sieve")
	primesCmd.Flags().BoolVar(&primesCountOnly, "count-only", false, "Print only the prime count")
}
