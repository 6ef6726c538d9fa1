package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHumanBytes(t *testing.T) {
	require.Equal(t, "512 B", humanBytes(512))
	require.Equal(t, "1.50 KB", humanBytes(1536))
	require.Equal(t, "2.00 MB", humanBytes(2<<20))
	require.Equal(t, "3.00 GB", humanBytes(3<<30))
}

func TestLoggerDebugGate(t *testing.T) {
	var buf bytes.Buffer

	NewLogger(false).WithOutput(&buf).Debugf("hidden %d\n", 1)
	require.Empty(t, buf.String())

	l := NewLogger(true).WithOutput(&buf)
	l.Debugf("shown %d\n", 2)
	l.Errorf("bad\n")
	require.Equal(t, "[DEBUG] shown 2\n[ERROR] bad\n", buf.String())
}

func TestStatsRender(t *testing.T) {
	var buf bytes.Buffer
	Stats{
		Species: 85,
		Failed:  []string{"missingno"},
		Records: 412,
		Bytes:   3 << 20,
		Elapsed: 90 * time.Second,
	}.Render(&buf)

	out := buf.String()
	require.Contains(t, out, "RUN SUMMARY")
	require.Contains(t, out, "missingno")
	require.Contains(t, out, "412")
	require.Contains(t, out, "3.00 MB")
	require.Contains(t, out, "1m30s")
}

func TestStatsWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	err := Stats{Species: 2, Records: 5, Skipped: []string{"wishiwashi"}}.WriteMarkdown(&buf, []SpeciesCount{
		{Species: "rowlet", Count: 1},
		{Species: "minior", Count: 4},
	})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "# Shiny sprite run")
	require.Contains(t, out, "## Per species")
	require.Contains(t, out, "wishiwashi")
	require.Contains(t, out, "`minior`")
}
