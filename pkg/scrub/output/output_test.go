package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	return &Report{
		Operation: "scan",
		Targets: []TargetReport{
			{ID: "temp_dir", Name: "Temp Directory", Enabled: true, Files: 12, Dirs: 2, Bytes: 4096, SizeHuman: "4.0 KiB"},
			{ID: "npm_cache", Name: "NPM Cache", Enabled: false, Files: 300, Bytes: 1 << 20, SizeHuman: "1.0 MiB"},
			{ID: "temp_patterns", Name: "Temp Files", Enabled: true, Files: 3, Bytes: 512, SizeHuman: "512 B", Err: "permission denied"},
		},
		TotalFiles: 15,
		TotalBytes: 4608,
		Duration:   42 * time.Millisecond,
	}
}

func TestGetKnownFormatters(t *testing.T) {
	for _, name := range []string{"plain", "pretty", "json"} {
		f, err := Get(name)
		require.NoError(t, err, "formatter %q should be registered", name)
		require.NotNil(t, f)
	}
}

func TestGetUnknownFormatter(t *testing.T) {
	_, err := Get("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}

func TestEnabledTargets(t *testing.T) {
	r := sampleReport()
	enabled := r.EnabledTargets()
	require.Len(t, enabled, 2)
	assert.Equal(t, "temp_dir", enabled[0].ID)
	assert.Equal(t, "temp_patterns", enabled[1].ID)
}

func TestPlainFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &PlainFormatter{}
	require.NoError(t, f.Format(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Temp Directory")
	assert.Contains(t, out, "4.0 KiB")
	assert.Contains(t, out, "error: permission denied")
	assert.Contains(t, out, "total: found 15 files")
	assert.NotContains(t, out, "NPM Cache", "disabled targets are omitted")
}

func TestPlainFormatterCleanVerbs(t *testing.T) {
	r := sampleReport()
	r.Operation = "clean"

	var buf bytes.Buffer
	f := &PlainFormatter{}
	require.NoError(t, f.Format(&buf, r))
	assert.Contains(t, buf.String(), "total: removed 15 files")

	r.DryRun = true
	buf.Reset()
	require.NoError(t, f.Format(&buf, r))
	assert.Contains(t, buf.String(), "total: would remove 15 files")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}
	require.NoError(t, f.Format(&buf, sampleReport()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "scan", decoded["operation"])
	assert.Equal(t, float64(15), decoded["total_files"])
	assert.Equal(t, "42ms", decoded["duration"])

	targets, ok := decoded["targets"].([]any)
	require.True(t, ok)
	assert.Len(t, targets, 3, "json output includes disabled targets")
}

func TestPrettyFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &PrettyFormatter{}
	require.NoError(t, f.Format(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Temp Directory")
	assert.Contains(t, out, "15 files")
}

func TestPrettyFormatterNoTargets(t *testing.T) {
	var buf bytes.Buffer
	f := &PrettyFormatter{}
	require.NoError(t, f.Format(&buf, &Report{Operation: "scan"}))
	assert.Contains(t, buf.String(), "No targets enabled")
}
