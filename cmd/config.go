// Copyright (c) 2025 Sievetail
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"

	"sievetail/cli/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// configCmd represents the config command for displaying the effective
// configuration after the file and environment layers are resolved.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective scan configuration",

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		p, _ := config.Path()
		details := fmt.Sprintf("max_n: %d\ntable_bound: %d\nworkers: %d\nfile: %s",
			cfg.MaxN, cfg.TableBound, cfg.Workers, p)
		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Configuration")).
			WithPadding(1).
			Println(details)
		for _, key := range []string{"SIEVETAIL_MAX_N", "SIEVETAIL_TABLE_BOUND", "SIEVETAIL_WORKERS"} {
			if v := os.Getenv(key); v != "" {
				pterm.Printf("Override from %s=%s\n", key, v)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
