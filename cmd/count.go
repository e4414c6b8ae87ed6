// Copyright (c) 2025 Sievetail
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"

	"sievetail/cli/internal/logging"
	"sievetail/cli/internal/prime"
	"sievetail/cli/internal/survivor"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	countTableBound int
	countExplain    bool
)

// countCmd represents the count command for a single survivor count.
// It prints the number of composites m ≤ n whose smallest prime factor
// is the largest prime not exceeding √n.
var countCmd = &cobra.Command{
	Use:   "count <n>",
	Short: "Survivor count for a single n",
	Long: `The count command evaluates the closed form π(⌊n/p⌋) − rank(p) for one n,
where p is the largest prime not exceeding √n. With --explain the
intermediate values of the formula are shown.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("n must be an integer, got %q", args[0])
		}

		bound := countTableBound
		if need := 4*prime.Isqrt(n) + 4; bound < need {
			bound = need
		}
		table, err := prime.NewTable(bound)
		if err != nil {
			pterm.Println(logging.PresentError("building prime table", err))
			return err
		}

		b, err := survivor.Explain(table, n)
		if err != nil {
			pterm.Println(logging.PresentError(fmt.Sprintf("count(%d)", n), err))
			return err
		}
		if countExplain {
			items := []pterm.BulletListItem{
				{Level: 0, Text: fmt.Sprintf("p = %d (largest prime ≤ √%d)", b.P, b.N)},
				{Level: 0, Text: fmt.Sprintf("rank(p) = %d", b.Rank)},
				{Level: 0, Text: fmt.Sprintf("⌊n/p⌋ = %d", b.Quotient)},
				{Level: 0, Text: fmt.Sprintf("π(⌊n/p⌋) = %d", b.Pi)},
				{Level: 0, Text: fmt.Sprintf("count = %d − %d = %d", b.Pi, b.Rank, b.Count)},
			}
			_ = pterm.DefaultBulletList.WithItems(items).Render()
			return nil
		}
		fmt.Println(b.Count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().IntVar(&countTableBound, "table-bound", 10_000_000, "Exclusive sieve bound of the prime table")
	countCmd.Flags().BoolVar(&countExplain, "explain", false, "Show the intermediate values of the closed form")
}
