package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxlv/scrub/pkg/scrub/session"
	"github.com/wxlv/scrub/pkg/scrub/target"
)

func testSession(t *testing.T) *session.Session {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.log"), make([]byte, 1024), 0o644))

	return session.New(session.Options{
		Catalog: func() []*target.Target {
			return []*target.Target{
				{ID: "temp_dir", Name: "Temp Directory", Rule: target.WholeDir{Path: dir}, Enabled: true},
				{ID: "npm_cache", Name: "NPM Cache", Rule: target.WholeDir{Path: filepath.Join(dir, "nope")}},
				{ID: "temp_patterns", Name: "Temp Files", Rule: target.TempPattern{Path: dir}},
				{ID: "dir_1", Name: dir, Rule: target.WholeDir{Path: dir}, Enabled: true},
			}
		},
	})
}

func TestApplySelectionAll(t *testing.T) {
	sess := testSession(t)
	require.NoError(t, applySelection(sess, false, true, nil))
	for _, tgt := range sess.Targets() {
		assert.True(t, tgt.Enabled, tgt.ID)
	}
}

func TestApplySelectionTempOnly(t *testing.T) {
	sess := testSession(t)
	require.NoError(t, applySelection(sess, true, false, nil))

	enabled := map[string]bool{}
	for _, tgt := range sess.Targets() {
		enabled[tgt.ID] = tgt.Enabled
	}
	assert.True(t, enabled["temp_dir"])
	assert.True(t, enabled["temp_patterns"])
	assert.False(t, enabled["npm_cache"])
	assert.True(t, enabled["dir_1"], "ad-hoc dirs survive --temp")
}

func TestApplySelectionByID(t *testing.T) {
	sess := testSession(t)
	require.NoError(t, applySelection(sess, false, false, []string{"npm_cache"}))

	enabled := map[string]bool{}
	for _, tgt := range sess.Targets() {
		enabled[tgt.ID] = tgt.Enabled
	}
	assert.True(t, enabled["npm_cache"])
	assert.False(t, enabled["temp_dir"])
	assert.True(t, enabled["dir_1"], "ad-hoc dirs survive --target")
}

func TestApplySelectionUnknownID(t *testing.T) {
	sess := testSession(t)
	err := applySelection(sess, false, false, []string{"bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}

func TestApplySelectionDefaultKeepsCatalog(t *testing.T) {
	sess := testSession(t)
	require.NoError(t, applySelection(sess, false, false, nil))
	assert.True(t, sess.Targets()[0].Enabled)
	assert.False(t, sess.Targets()[1].Enabled)
}

func TestAdHocTargets(t *testing.T) {
	targets := adHocTargets([]string{"/var/tmp/builds", "/srv/scratch"})
	require.Len(t, targets, 2)

	assert.Equal(t, "dir_1", targets[0].ID)
	assert.Equal(t, "dir_2", targets[1].ID)
	for _, tgt := range targets {
		assert.True(t, tgt.Enabled)
		assert.IsType(t, target.WholeDir{}, tgt.Rule)
	}
}

func TestBuildReportScan(t *testing.T) {
	sess := testSession(t)
	sess.Scan()

	report := buildReport(sess, "scan", false)
	require.Len(t, report.Targets, 4)

	assert.Equal(t, "scan", report.Operation)
	assert.Equal(t, int64(2), report.TotalFiles, "temp_dir and dir_1 both count the file")
	assert.Equal(t, int64(2048), report.TotalBytes)
	assert.True(t, report.Targets[0].Enabled)
	assert.False(t, report.Targets[1].Enabled)
	assert.Equal(t, "1.0 KiB", report.Targets[0].SizeHuman)
}

func TestBuildReportCleanDryRun(t *testing.T) {
	sess := session.New(session.Options{
		DryRun: true,
		Catalog: func() []*target.Target {
			dir := t.TempDir()
			_ = os.WriteFile(filepath.Join(dir, "a.bin"), make([]byte, 512), 0o644)
			return []*target.Target{
				{ID: "one", Name: "One", Rule: target.WholeDir{Path: dir}, Enabled: true},
			}
		},
	})

	sess.Scan()
	sess.Clean()

	report := buildReport(sess, "clean", true)
	assert.True(t, report.DryRun)
	assert.Equal(t, int64(1), report.TotalFiles)
	assert.Equal(t, int64(512), report.TotalBytes)
}
