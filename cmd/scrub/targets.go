package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wxlv/scrub/pkg/scrub/target"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List known cleanup targets",
	Long: `List every cleanup target for this platform, including user-defined
targets from the config file. Last-known sizes come from the most recent
scan when the result cache is enabled.`,
	RunE: runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}

// runTargets prints the catalog with enablement and last-known sizes.
func runTargets(_ *cobra.Command, _ []string) error {
	env, err := setup(false, nil)
	if err != nil {
		return err
	}
	defer env.close()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tENABLED\tROOTS\tLAST KNOWN")

	for _, t := range env.sess.Targets() {
		lastKnown := "-"
		if res, at, ok := env.sess.LastKnown(t.ID); ok {
			lastKnown = fmt.Sprintf("%s (%s)",
				humanize.IBytes(uint64(res.Bytes)), humanize.Time(at))
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Name, enabledMark(t), strings.Join(t.Roots(), ", "), lastKnown)
	}

	return tw.Flush()
}

func enabledMark(t *target.Target) string {
	if t.Enabled {
		return "yes"
	}
	return "no"
}
