// Copyright (c) 2025 Sievetail
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the sievetail application.
// It implements subcommands for batch scans, single survivor counts, prime
// listing, and rank lookups using the Cobra CLI framework. The package handles
// command parsing and execution and provides a rich terminal UI with spinners
// and progress indicators.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the sievetail application.
var rootCmd = &cobra.Command{
	Use:   "sievetail",
	Short: "Count the composites that survive an early-truncated Sieve of Eratosthenes",
	Long: `Sievetail counts, for each n, the composites m ≤ n whose smallest prime
factor is the largest prime not exceeding √n — the numbers still standing when
the Sieve of Eratosthenes is stopped one prime early. The count reduces to the
closed form π(⌊n/p⌋) − rank(p) over a shared precomputed prime table.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("sievetail %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}
