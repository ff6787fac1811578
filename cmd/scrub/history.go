package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wxlv/scrub/pkg/scrub/config"
	"github.com/wxlv/scrub/pkg/scrub/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View past scan and clean runs",
	Long: `View the history of scan and clean runs.

Each run is recorded with its per-target counts and totals. Use
'scrub history prune' to remove entries past the retention period.`,
	RunE: runHistoryList,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove history entries past the retention period",
	RunE:  runHistoryPrune,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "maximum number of entries to show")

	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}

// historyLog returns a log handle using the configured directory.
func historyLog() (*history.Log, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	dir := cfg.History.Path
	if dir == "" {
		dir = history.DefaultDir()
	}
	hlog, err := history.New(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history: %w", err)
	}
	return hlog, cfg, nil
}

// runHistoryList lists recent runs, newest first.
func runHistoryList(_ *cobra.Command, _ []string) error {
	hlog, _, err := historyLog()
	if err != nil {
		return err
	}

	entries, err := hlog.List()
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(entries) == 0 {
		printInfo("No history entries found.")
		printInfo("Run 'scrub' to scan and clean.")
		return nil
	}

	if historyLimit > 0 && len(entries) > historyLimit {
		entries = entries[:historyLimit]
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tOPERATION\tTARGETS\tFILES\tSIZE")
	for _, e := range entries {
		op := string(e.Operation)
		if e.DryRun {
			op += " (dry run)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
			humanize.Time(e.Timestamp), op, len(e.Targets),
			e.Summary.TotalFiles, humanize.IBytes(uint64(e.Summary.TotalBytes)))
	}
	return tw.Flush()
}

// runHistoryPrune removes entries older than the retention period.
func runHistoryPrune(_ *cobra.Command, _ []string) error {
	hlog, cfg, err := historyLog()
	if err != nil {
		return err
	}

	days := cfg.History.RetentionDays
	if days <= 0 {
		days = config.DefaultHistoryRetentionDays
	}

	removed, err := hlog.Prune(time.Duration(days) * 24 * time.Hour)
	if err != nil {
		return fmt.Errorf("failed to prune history: %w", err)
	}
	printInfo("Removed %d entries older than %d days.", removed, days)
	return nil
}
