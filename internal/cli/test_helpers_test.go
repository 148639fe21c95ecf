package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// writeInput writes content to a temp file and returns its path.
func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clicks.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// Reference time for the sample export below: 2025-12-07T12:00:00Z.
const sampleNow = "2025-12-07T12:00:00Z"

// Three clicks inside one day of sampleNow, one a week older.
const sampleClicks = `[
  {"createdAt": "2025-12-07T11:30:00Z", "country": "USA", "device": "mobile", "os": "Android", "browser": "Chrome"},
  {"createdAt": 1765101600000, "country": " USA ", "device": "desktop", "os": "Windows", "browser": "Chrome"},
  {"createdAt": "2025-12-07T02:15:00Z", "country": 42, "device": "mobile", "city": null},
  {"createdAt": "2025-11-30T09:00:00Z", "country": "India", "device": "tablet"}
]`
