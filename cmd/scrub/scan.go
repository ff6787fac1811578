package main

import (
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Measure reclaimable space without deleting anything",
	Long: `Scan every selected cleanup target and report how much space a clean
would reclaim. Nothing is deleted.`,
	RunE: runScanCmd,
}

func init() {
	scanCmd.Flags().BoolP("temp", "t", false, "select only the temp targets")
	scanCmd.Flags().Bool("all", false, "select every known target")
	scanCmd.Flags().StringSlice("target", nil, "select targets by id (can be repeated)")

	rootCmd.AddCommand(scanCmd)
}

// runScanCmd performs a scan-only run and prints the report.
func runScanCmd(cmd *cobra.Command, _ []string) error {
	dirs, _ := cmd.Flags().GetStringSlice("dir")

	env, err := setup(false, dirs)
	if err != nil {
		return err
	}
	defer env.close()

	tempOnly, _ := cmd.Flags().GetBool("temp")
	all, _ := cmd.Flags().GetBool("all")
	ids, _ := cmd.Flags().GetStringSlice("target")

	if err := applySelection(env.sess, tempOnly, all, ids); err != nil {
		return err
	}

	return runOneShot(env, false, false, false)
}
