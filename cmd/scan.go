// Copyright (c) 2025 Sievetail
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"sievetail/cli/internal/config"
	"sievetail/cli/internal/errors"
	"sievetail/cli/internal/logging"
	"sievetail/cli/internal/prime"
	"sievetail/cli/internal/report"
	"sievetail/cli/internal/survivor"
	"sievetail/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	scanMaxN       int
	scanStart      int
	scanTableBound int
	scanWorkers    int
	scanOutput     string
	scanChart      bool
	scanQuiet      bool
)

// scanCmd represents the scan command for the batch survivor computation.
// It evaluates the survivor count for every n in [start, max-n) against a
// prime table built once up front, with live progress feedback and an
// optional result stream for external plotting.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Count truncated-sieve survivors for every n in a range",
	Long: `The scan command evaluates the survivor count for every n in [start, max-n)
against a shared prime table built once at startup. Progress is rendered live;
the finished run prints a summary box with the cumulative survivor total and
the mean count per n.

With --output the full result sequence is written one integer per line for
external plotting. With --chart a bucketed bar chart of the cumulative totals
is rendered in the terminal. With --workers above 1 the range is evaluated in
parallel; results are identical to a sequential run.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			pterm.Println("⚠️  Could not load configuration, using defaults")
			cfg = config.Default()
		}
		if !cmd.Flags().Changed("max-n") {
			scanMaxN = cfg.MaxN
		}
		if !cmd.Flags().Changed("table-bound") {
			scanTableBound = cfg.TableBound
		}
		if !cmd.Flags().Changed("workers") {
			scanWorkers = cfg.Workers
		}
		logging.Verbosef("scan: start=%d max_n=%d table_bound=%d workers=%d",
			scanStart, scanMaxN, scanTableBound, scanWorkers)

		if scanMaxN <= scanStart {
			return errors.New(errors.UndefinedInput,
				fmt.Sprintf("scan range [%d, %d) is empty", scanStart, scanMaxN))
		}

		// The table must cover ⌊n/p⌋ for every scanned n. Since p is the
		// largest prime ≤ √n, ⌊n/p⌋ stays close to 2√n; requiring room for
		// 4√max_n leaves comfortable slack without a huge table.
		needed := 4*prime.Isqrt(scanMaxN) + 4
		if scanTableBound < needed {
			bound, ok := confirmLargerBound(scanTableBound, needed)
			if !ok {
				return errors.New(errors.TableBoundExceeded,
					fmt.Sprintf("table bound %d cannot cover a scan to %d; need at least %d",
						scanTableBound, scanMaxN, needed))
			}
			scanTableBound = bound
		}

		stopSpin := startInlineSpinner(os.Stderr,
			fmt.Sprintf("building prime table below %d", scanTableBound),
			[]string{"|", "/", "-", "\\"}, 120*time.Millisecond)
		table, err := prime.NewTable(scanTableBound)
		stopSpin()
		if err != nil {
			pterm.Println(logging.PresentError("building prime table", err))
			return err
		}
		logging.Verbosef("scan: table holds %d primes below %d", table.Len(), table.Bound())

		startAt := time.Now()
		progress := report.NewProgress(scanMaxN - scanStart)
		renderer := report.NewRenderer(progress)
		if !scanQuiet {
			renderer.Start()
		}

		scanner := &survivor.Scanner{
			Table:   table,
			Workers: scanWorkers,
			OnResult: func(n, count, done, total int) {
				progress.Observe(n, count)
			},
		}
		results, err := scanner.Run(cmd.Context(), scanStart, scanMaxN)
		renderer.Stop()
		elapsed := time.Since(startAt)
		if err != nil {
			report.PrintFailure(elapsed, logging.PresentError("scan", err))
			return err
		}

		cumulative := survivor.CumulativeSum(results)
		averages := survivor.RunningAverage(results)
		var total int64
		var mean float64
		if len(results) > 0 {
			total = cumulative[len(cumulative)-1]
			mean = averages[len(averages)-1]
		}

		if scanOutput != "" {
			if err := writeCounts(scanOutput, results); err != nil {
				pterm.Println(logging.PresentError("writing results", err))
				return err
			}
			pterm.Printf("Results written to %s (%d lines)\n", scanOutput, len(results))
		}

		report.PrintSummary(report.Summary{
			Start:     scanStart,
			End:       scanMaxN,
			Survivors: total,
			MeanCount: mean,
			Workers:   scanWorkers,
			Elapsed:   elapsed,
		})
		if scanChart {
			report.PrintCumulativeChart(scanStart, cumulative, 10)
		}
		return nil
	},
}

// confirmLargerBound asks the user whether to regenerate the prime table
// with a sufficient bound. The prompt is cleared from the terminal after
// the answer. Empty input counts as acceptance.
func confirmLargerBound(have, needed int) (int, bool) {
	pterm.Printf("⚠️  Table bound %d is too small for this scan (need at least %d).\n", have, needed)
	promptText := fmt.Sprintf("Regenerate the table below %d? [Y/n]: ", needed)
	fmt.Print(promptText)
	reader := bufio.NewReader(os.Stdin)
	ans, _ := reader.ReadString('\n')
	terminal.ClearPreviousLines(len(promptText) + len(ans))
	ans = strings.ToLower(strings.TrimSpace(ans))
	if ans == "" || ans == "y" || ans == "yes" {
		return needed, true
	}
	return 0, false
}

// writeCounts streams the result sequence to path, one integer per line,
// the format the external plotting side consumes.
func writeCounts(path string, counts []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, c := range counts {
		w.WriteString(strconv.Itoa(c))
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().IntVar(&scanMaxN, "max-n", 1_000_000, "Exclusive upper bound of the scan range")
	scanCmd.Flags().IntVar(&scanStart, "start", 5, "Inclusive lower bound of the scan range")
	scanCmd.Flags().IntVar(&scanTableBound, "table-bound", 10_000_000, "Exclusive sieve bound of the shared prime table")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 1, "Parallel scan workers; 1 runs sequentially")
	scanCmd.Flags().StringVar(&scanOutput, "output", "", "Write the result sequence to this file, one count per line")
	scanCmd.Flags().BoolVar(&scanChart, "chart", false, "Render a bar chart of cumulative survivor totals")
	scanCmd.Flags().BoolVar(&scanQuiet, "quiet", false, "Disable the live progress display")
}
