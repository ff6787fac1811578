package target

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxlv/scrub/pkg/scrub/sizer"
)

func writeFile(t *testing.T, path string, n int) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, make([]byte, n), 0o644))
}

func TestIsTransientName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.tmp", true},
		{"a.temp", true},
		{"tempfile", true},
		{"cache.db", true},
		{"~backup", true},
		{"backup~", true},
		{"MyTempData", true},
		{"THUMBCACHE_32.DB", true},
		{"notes.txt", false},
		{"report.pdf", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransientName(tt.name))
		})
	}
}

func TestScanWholeDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "file1"), 13)
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, filepath.Join(sub, "file2"), 1024)

	tgt := &Target{ID: "t", Rule: WholeDir{Path: dir}, Enabled: true}
	res := tgt.Scan()

	assert.Equal(t, int64(2), res.Files)
	assert.Equal(t, int64(1), res.Dirs)
	assert.Equal(t, int64(1037), res.Bytes)
	assert.True(t, res.HasData)
}

func TestScanMissingPath(t *testing.T) {
	tgt := &Target{ID: "t", Rule: WholeDir{Path: filepath.Join(t.TempDir(), "gone")}}
	res := tgt.Scan()
	assert.Equal(t, Result{}, res)
	assert.False(t, res.HasData)
}

func TestScanDirSetSums(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	writeFile(t, filepath.Join(a, "one"), 100)
	writeFile(t, filepath.Join(b, "two"), 200)

	tgt := &Target{ID: "t", Rule: DirSet{Paths: []string{a, b, filepath.Join(a, "missing")}}}
	res := tgt.Scan()

	assert.Equal(t, int64(2), res.Files)
	assert.Equal(t, int64(300), res.Bytes)
	assert.True(t, res.HasData)
}

func TestScanTempPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.tmp"), 10)
	writeFile(t, filepath.Join(dir, "notes.txt"), 20)
	writeFile(t, filepath.Join(dir, "~backup"), 30)
	writeFile(t, filepath.Join(dir, "cache.db"), 40)

	// Matching files inside non-matching subdirectories still count.
	sub := filepath.Join(dir, "plain")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, filepath.Join(sub, "deep.tmp"), 50)

	tgt := &Target{ID: "t", Rule: TempPattern{Path: dir}}
	res := tgt.Scan()

	assert.Equal(t, int64(4), res.Files)
	assert.Equal(t, int64(10+30+40+50), res.Bytes)
	assert.Equal(t, int64(0), res.Dirs)
	assert.True(t, res.HasData)
}

func TestScanFilePattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.log"), 11)
	writeFile(t, filepath.Join(dir, "app.log.1"), 12)
	writeFile(t, filepath.Join(dir, "data.bin"), 13)

	tgt := &Target{ID: "t", Rule: FilePattern{Path: dir, Patterns: []string{"*.log", "*.log.*"}}}
	res := tgt.Scan()

	assert.Equal(t, int64(2), res.Files)
	assert.Equal(t, int64(23), res.Bytes)
}

func TestCleanReportsPreDeletionState(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "f1"), 100)
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, filepath.Join(sub, "f2"), 200)

	tgt := &Target{ID: "t", Rule: WholeDir{Path: dir}}
	res, err := tgt.Clean(CleanOptions{})
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.Files)
	assert.Equal(t, int64(1), res.Dirs)
	assert.Equal(t, int64(300), res.Bytes)

	after := sizer.Aggregate(dir)
	assert.True(t, after.IsZero(), "directory should be empty after clean")

	// The directory itself survives.
	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestCleanDryRunDeletesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "f1"), 100)
	writeFile(t, filepath.Join(dir, "f2"), 200)

	tgt := &Target{ID: "t", Rule: WholeDir{Path: dir}}
	before := sizer.Aggregate(dir)

	res, err := tgt.Clean(CleanOptions{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Files)
	assert.Equal(t, int64(300), res.Bytes)

	assert.Equal(t, before, sizer.Aggregate(dir))
}

func TestCleanTempPatternKeepsNonMatching(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "junk.tmp"), 10)
	writeFile(t, filepath.Join(dir, "keep.txt"), 20)
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, filepath.Join(sub, "nested.tmp"), 30)
	writeFile(t, filepath.Join(sub, "nested.txt"), 40)

	tgt := &Target{ID: "t", Rule: TempPattern{Path: dir}}
	res, err := tgt.Clean(CleanOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Files)

	assert.NoFileExists(t, filepath.Join(dir, "junk.tmp"))
	assert.NoFileExists(t, filepath.Join(sub, "nested.tmp"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
	assert.FileExists(t, filepath.Join(sub, "nested.txt"))
	// Subdirectories survive a pattern clean.
	assert.DirExists(t, sub)
}

func TestCleanMissingPathIsNoop(t *testing.T) {
	tgt := &Target{ID: "t", Rule: WholeDir{Path: filepath.Join(t.TempDir(), "gone")}}
	res, err := tgt.Clean(CleanOptions{Policy: PolicyAbort})
	require.NoError(t, err)
	assert.False(t, res.HasData)
}

func TestCleanPolicyCollect(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("read-only directories do not block deletion on Windows")
	}
	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0o755))
	writeFile(t, filepath.Join(locked, "held.tmp"), 10)
	writeFile(t, filepath.Join(dir, "free.tmp"), 20)

	// Removing entries from a read-only directory fails.
	require.NoError(t, os.Chmod(locked, 0o555))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	tgt := &Target{ID: "t", Rule: TempPattern{Path: dir}}
	_, err := tgt.Clean(CleanOptions{Policy: PolicyCollect})
	assert.Error(t, err, "collect policy surfaces the failed deletion")

	// The failing entry never aborts the rest of the batch.
	assert.NoFileExists(t, filepath.Join(dir, "free.tmp"))
	assert.FileExists(t, filepath.Join(locked, "held.tmp"))
}

func TestCleanPolicySilent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("read-only directories do not block deletion on Windows")
	}
	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0o755))
	writeFile(t, filepath.Join(locked, "held.tmp"), 10)
	require.NoError(t, os.Chmod(locked, 0o555))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	tgt := &Target{ID: "t", Rule: TempPattern{Path: dir}}
	_, err := tgt.Clean(CleanOptions{Policy: PolicySilent})
	assert.NoError(t, err, "silent policy never reports failures")
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    FailurePolicy
		wantErr bool
	}{
		{"silent", PolicySilent, false},
		{"", PolicySilent, false},
		{"Collect", PolicyCollect, false},
		{"ABORT", PolicyAbort, false},
		{"strict", PolicySilent, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResultHelpers(t *testing.T) {
	r := Result{Files: 3, Dirs: 2, Bytes: 2 * 1024 * 1024}
	assert.InDelta(t, 2.0, r.SizeMB(), 0.001)
	assert.Equal(t, int64(5), r.TotalItems())
}

func TestTargetRoots(t *testing.T) {
	tgt := &Target{Rule: DirSet{Paths: []string{"/a", "/b"}}}
	assert.Equal(t, []string{"/a", "/b"}, tgt.Roots())
}
