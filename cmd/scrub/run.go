package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wxlv/scrub/cmd/scrub/tui"
	"github.com/wxlv/scrub/pkg/scrub/cache"
	"github.com/wxlv/scrub/pkg/scrub/catalog"
	"github.com/wxlv/scrub/pkg/scrub/config"
	"github.com/wxlv/scrub/pkg/scrub/history"
	"github.com/wxlv/scrub/pkg/scrub/logging"
	"github.com/wxlv/scrub/pkg/scrub/output"
	"github.com/wxlv/scrub/pkg/scrub/session"
	"github.com/wxlv/scrub/pkg/scrub/target"
	"github.com/wxlv/scrub/pkg/scrub/trash"
)

// runtimeEnv bundles everything a command run needs.
type runtimeEnv struct {
	cfg    *config.Config
	store  *cache.Store
	sess   *session.Session
	policy target.FailurePolicy
}

// close releases the cache store if one was opened.
func (e *runtimeEnv) close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			printVerbose("cache close: %v", err)
		}
	}
	_ = logging.Close()
}

// setup loads config, initializes logging and builds the session. Any
// extraDirs become ad-hoc whole-directory targets appended after the
// catalog, rebuilt on every reset like the built-ins.
func setup(dryRun bool, extraDirs []string) (*runtimeEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if err := initLogging(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	policyStr := viper.GetString("policy")
	if policyStr == "" {
		policyStr = cfg.FailurePolicy
	}
	policy, err := target.ParsePolicy(policyStr)
	if err != nil {
		return nil, err
	}

	var store *cache.Store
	if cfg.Cache.Enabled && !viper.GetBool("no_cache") {
		path := cfg.Cache.Path
		if path == "" {
			path = cache.DefaultPath()
		}
		store, err = cache.Open(path)
		if err != nil {
			// The cache is a convenience; run without it.
			printVerbose("cache unavailable: %v", err)
			store = nil
		}
	}

	sess := session.New(session.Options{
		Catalog: func() []*target.Target {
			return append(catalog.Build(cfg.CustomTargets), adHocTargets(extraDirs)...)
		},
		DryRun:  dryRun,
		Policy:  policy,
		Cache:   store,
	})

	return &runtimeEnv{cfg: cfg, store: store, sess: sess, policy: policy}, nil
}

// adHocTargets builds enabled whole-directory targets from --dir flags.
// Paths that cannot be expanded are skipped with a note.
func adHocTargets(dirs []string) []*target.Target {
	var out []*target.Target
	for i, dir := range dirs {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			printVerbose("skipping --dir %s: %v", dir, err)
			continue
		}
		out = append(out, &target.Target{
			ID:          fmt.Sprintf("dir_%d", i+1),
			Name:        expanded,
			Description: "User-specified directory",
			Rule:        target.WholeDir{Path: expanded},
			Enabled:     true,
		})
	}
	return out
}

// isAdHoc reports whether the target came from a --dir flag. Ad-hoc
// targets were asked for explicitly, so selection flags never drop them.
func isAdHoc(t *target.Target) bool {
	return strings.HasPrefix(t.ID, "dir_")
}

// initLogging wires the configured log file and level, with --verbose and
// --quiet overriding the configured level.
func initLogging(cfg *config.Config) error {
	level := cfg.Logging.Level
	if getVerbose() {
		level = "debug"
	} else if getQuiet() {
		level = "error"
	}

	path := cfg.Logging.Path
	if path == "" {
		path = logging.DefaultLogPath()
	}

	return logging.Init(logging.Config{
		Level: level,
		Path:  path,
		Rotation: logging.RotationConfig{
			MaxSizeMB:  cfg.Logging.Rotation.MaxSizeMB,
			MaxAge:     cfg.Logging.Rotation.MaxAge,
			MaxBackups: cfg.Logging.Rotation.MaxBackups,
		},
	})
}

// applySelection narrows the enabled target set according to the selection
// flags. With no selection flags the catalog defaults stand.
func applySelection(sess *session.Session, tempOnly, all bool, ids []string) error {
	targets := sess.Targets()

	switch {
	case all:
		for _, t := range targets {
			t.Enabled = true
		}
	case tempOnly:
		for _, t := range targets {
			t.Enabled = t.ID == "temp_dir" || t.ID == "temp_patterns" || isAdHoc(t)
		}
	case len(ids) > 0:
		known := make(map[string]*target.Target, len(targets))
		for _, t := range targets {
			t.Enabled = isAdHoc(t)
			known[t.ID] = t
		}
		for _, id := range ids {
			t, ok := known[id]
			if !ok {
				return fmt.Errorf("unknown target %q (run 'scrub targets' to list)", id)
			}
			t.Enabled = true
		}
	}
	return nil
}

// interactiveWanted reports whether the TUI should run.
func interactiveWanted() bool {
	if viper.GetBool("no_interactive") || viper.GetBool("json") {
		return false
	}
	if f := viper.GetString("output"); f != "" && f != "pretty" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// runRoot is the default command handler: interactive TUI on a terminal,
// one-shot scan-and-clean otherwise.
func runRoot(cmd *cobra.Command, _ []string) error {
	dryRun := viper.GetBool("dry_run")
	dirs, _ := cmd.Flags().GetStringSlice("dir")

	env, err := setup(dryRun, dirs)
	if err != nil {
		return err
	}
	defer env.close()

	tempOnly, _ := cmd.Flags().GetBool("temp")
	all, _ := cmd.Flags().GetBool("all")
	ids, _ := cmd.Flags().GetStringSlice("target")
	emptyTrash, _ := cmd.Flags().GetBool("trash")

	if err := applySelection(env.sess, tempOnly, all, ids); err != nil {
		return err
	}

	if interactiveWanted() {
		return tui.Run(tui.Options{
			Session:    env.sess,
			Cooldown:   time.Duration(env.cfg.DebounceMS) * time.Millisecond,
			EmptyTrash: emptyTrash,
			DryRun:     dryRun,
			FreeBytes:  freeBytes(env.sess),
		})
	}

	return runOneShot(env, true, emptyTrash, dryRun)
}

// runOneShot performs a scan, optionally a clean, and prints a report.
func runOneShot(env *runtimeEnv, clean, emptyTrash, dryRun bool) error {
	start := time.Now()

	env.sess.Scan()
	op := "scan"
	if clean {
		env.sess.Clean()
		op = "clean"
	}

	report := buildReport(env.sess, op, dryRun)
	report.Duration = time.Since(start)
	report.FreeBytes = freeBytes(env.sess)

	if emptyTrash {
		err := trash.Empty(dryRun)
		switch {
		case err == nil:
			report.TrashEmptied = true
		case errors.Is(err, trash.ErrNotSupported):
			report.Warnings = append(report.Warnings, err.Error())
		default:
			// A trash failure never fails the run.
			report.Warnings = append(report.Warnings, "trash: "+err.Error())
		}
	}

	recordHistory(env.cfg, report)

	return printReport(report)
}

// buildReport converts session state into an output report.
func buildReport(sess *session.Session, op string, dryRun bool) *output.Report {
	useClean := op == "clean"

	report := &output.Report{
		Operation: op,
		DryRun:    dryRun,
	}

	for i, t := range sess.Targets() {
		tr := output.TargetReport{
			ID:      t.ID,
			Name:    t.Name,
			Enabled: t.Enabled,
		}
		res := sess.ScanResult(i)
		if useClean {
			res = sess.CleanResult(i)
		}
		if res != nil {
			tr.Files = res.Files
			tr.Dirs = res.Dirs
			tr.Bytes = res.Bytes
			tr.SizeHuman = humanize.IBytes(uint64(res.Bytes))
		}
		if err := sess.CleanError(i); err != nil {
			tr.Err = err.Error()
		}
		report.Targets = append(report.Targets, tr)
	}

	report.TotalFiles = sess.TotalFiles(useClean)
	report.TotalBytes = sess.TotalBytes(useClean)
	return report
}

// freeBytes returns the free space on the volume holding the first enabled
// root, or zero when it cannot be determined.
func freeBytes(sess *session.Session) uint64 {
	roots := sess.EnabledRoots()
	if len(roots) == 0 {
		return 0
	}
	usage, err := disk.Usage(roots[0])
	if err != nil {
		printVerbose("disk usage: %v", err)
		return 0
	}
	return usage.Free
}

// recordHistory appends the run to the history log when enabled. History
// failures are reported verbosely but never fail the run.
func recordHistory(cfg *config.Config, report *output.Report) {
	if !cfg.History.Enabled {
		return
	}

	dir := cfg.History.Path
	if dir == "" {
		dir = history.DefaultDir()
	}
	hlog, err := history.New(dir)
	if err != nil {
		printVerbose("history unavailable: %v", err)
		return
	}

	var records []history.TargetRecord
	for _, t := range report.EnabledTargets() {
		records = append(records, history.TargetRecord{
			ID:    t.ID,
			Name:  t.Name,
			Files: t.Files,
			Dirs:  t.Dirs,
			Bytes: t.Bytes,
		})
	}

	op := history.OpScan
	if report.Operation == "clean" {
		op = history.OpClean
	}
	if _, err := hlog.Record(op, report.DryRun, records); err != nil {
		printVerbose("history record: %v", err)
	}
}

// printReport renders the report with the selected formatter.
func printReport(report *output.Report) error {
	format := viper.GetString("output")
	if viper.GetBool("json") {
		format = "json"
	}
	if format == "" {
		format = "pretty"
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			format = "plain"
		}
	}

	formatter, err := output.Get(format)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, report); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(buf.String())
	return nil
}
