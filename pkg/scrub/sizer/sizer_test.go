package sizer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with n bytes of content.
func writeFile(t *testing.T, path string, n int) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, make([]byte, n), 0o644))
}

func TestAggregateNestedTree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "file1.txt"), 13)
	writeFile(t, filepath.Join(dir, "file2.txt"), 1024)

	sub := filepath.Join(dir, "subdir")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, filepath.Join(sub, "file3.txt"), 2048)

	got := Aggregate(dir)
	assert.Equal(t, int64(13+1024+2048), got.Bytes)
	assert.Equal(t, int64(3), got.Files)
	assert.Equal(t, int64(1), got.Dirs)
}

func TestAggregateDeepNesting(t *testing.T) {
	dir := t.TempDir()
	cur := dir
	for i := 0; i < 10; i++ {
		cur = filepath.Join(cur, "level")
		require.NoError(t, os.Mkdir(cur, 0o755))
		writeFile(t, filepath.Join(cur, "f"), 10)
	}

	got := Aggregate(dir)
	assert.Equal(t, int64(100), got.Bytes)
	assert.Equal(t, int64(10), got.Files)
	assert.Equal(t, int64(10), got.Dirs)
}

func TestAggregateMissingPath(t *testing.T) {
	got := Aggregate(filepath.Join(t.TempDir(), "does", "not", "exist"))
	assert.True(t, got.IsZero())
}

func TestAggregateSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "only.dat")
	writeFile(t, path, 77)

	got := Aggregate(path)
	assert.Equal(t, Stats{Bytes: 77, Files: 1, Dirs: 0}, got)
}

func TestAggregateEmptyDir(t *testing.T) {
	got := Aggregate(t.TempDir())
	assert.True(t, got.IsZero())
}

func TestAggregateIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a"), 100)
	writeFile(t, filepath.Join(dir, "b"), 200)

	first := Aggregate(dir)
	second := Aggregate(dir)
	assert.Equal(t, first, second)
}

func TestAggregateMatching(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.log"), 10)
	writeFile(t, filepath.Join(dir, "skip.txt"), 20)

	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, filepath.Join(sub, "more.log"), 30)

	isLog := func(name string) bool { return strings.HasSuffix(name, ".log") }

	got := AggregateMatching(dir, isLog)
	assert.Equal(t, int64(40), got.Bytes)
	assert.Equal(t, int64(2), got.Files)
}

func TestAggregateMatchingSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	writeFile(t, path, 5)

	got := AggregateMatching(path, func(name string) bool { return false })
	assert.True(t, got.IsZero())
}
