package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wxlv/scrub/pkg/scrub/config"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "scrub",
		Short: "Reclaim disk space from temp files, caches and trash",
		Long: `Scrub scans well-known cleanup targets (temp directories, browser and
package-manager caches, stray temp files) and deletes what you select.

By default, scrub launches an interactive TUI to review targets before
cleaning. Use --no-interactive or --json for one-shot scripted runs.

Examples:
  scrub                       # Interactive TUI
  scrub -n --dry-run          # Preview what a clean would remove
  scrub -n --temp             # Clean temp targets only
  scrub -n --trash            # Also empty the system trash
  scrub scan -o json          # Report reclaimable space as JSON
  scrub targets               # List known cleanup targets
  scrub history               # View past runs`,
		RunE: runRoot,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/scrub/config.yaml)")
	rootCmd.PersistentFlags().BoolP("no-interactive", "n", false, "disable TUI, use text output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "output JSON format (implies --no-interactive)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format: pretty, plain, json")
	rootCmd.PersistentFlags().BoolP("dry-run", "d", false, "don't delete anything (preview only)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")
	rootCmd.PersistentFlags().Bool("no-cache", false, "don't persist or read last-known scan results")
	rootCmd.PersistentFlags().String("policy", "", "deletion failure policy: silent, collect, abort")

	rootCmd.PersistentFlags().StringSlice("dir", nil, "clean an arbitrary directory (can be repeated)")

	rootCmd.Flags().BoolP("temp", "t", false, "select only the temp targets")
	rootCmd.Flags().Bool("trash", false, "also empty the system trash")
	rootCmd.Flags().Bool("all", false, "select every known target")
	rootCmd.Flags().StringSlice("target", nil, "select targets by id (can be repeated)")

	_ = viper.BindPFlag("no_interactive", rootCmd.PersistentFlags().Lookup("no-interactive"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("no_cache", rootCmd.PersistentFlags().Lookup("no-cache"))
	_ = viper.BindPFlag("policy", rootCmd.PersistentFlags().Lookup("policy"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "scrub"))
		}
		if homeDir, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "scrub"))
		}
	}

	viper.SetEnvPrefix("SCRUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("failure_policy", config.DefaultFailurePolicy)
	viper.SetDefault("debounce_ms", config.DefaultDebounceMS)
	viper.SetDefault("logging.level", config.DefaultLogLevel)

	// Ignore a missing config file; everything has a default.
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if getVerbose() && !getQuiet() {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
