// Copyright (c) 2025 Sievetail
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"

	"sievetail/cli/internal/logging"
	"sievetail/cli/internal/prime"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rankCmd represents the rank command for prime rank lookups.
// It prints the 1-based position of a prime in the prime sequence,
// or a not-a-prime error for composites.
var rankCmd = &cobra.Command{
	Use:   "rank <p>",
	Short: "1-based rank of a prime in the prime sequence",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("p must be an integer, got %q", args[0])
		}
		// A table just past p suffices for an exact membership check.
		bound := p + 1
		if bound < 2 {
			bound = 2
		}
		table, err := prime.NewTable(bound)
		if err != nil {
			pterm.Println(logging.PresentError("building prime table", err))
			return err
		}
		rank, err := table.Rank(p)
		if err != nil {
			pterm.Println(logging.PresentError(fmt.Sprintf("rank(%d)", p), err))
			return err
		}
		fmt.Println(rank)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)
}
