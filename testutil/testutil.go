package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jongio/clientcheck/cliout"
)

// CaptureOutput captures everything written through cliout while fn runs.
// The previous writer is always restored, even if fn returns an error.
//
// Example:
//
//	output := testutil.CaptureOutput(t, func() error {
//	    cliout.Success("accepted")
//	    return nil
//	})
//	if !strings.Contains(output, "accepted") {
//	    t.Error("expected output not found")
//	}
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	var buf bytes.Buffer
	prev := cliout.SetWriter(&buf)
	defer cliout.SetWriter(prev)

	if err := fn(); err != nil {
		t.Logf("Command error: %v", err)
	}

	return buf.String()
}

// TempDir creates a temporary directory for testing with automatic cleanup.
// The directory is created with secure permissions (0750) and is removed when
// the test completes via t.Cleanup().
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "clientcheck-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	if err := os.Chmod(tmpDir, 0o750); err != nil {
		t.Fatalf("Failed to set temp directory permissions: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Logf("Failed to clean up temp directory %s: %v", tmpDir, err)
		}
	})

	return tmpDir
}

// WriteFile writes content to name inside a fresh temporary directory and
// returns the full path.
//
// Example:
//
//	path := testutil.WriteFile(t, "settings.yaml", "contextPath: /nacos\n")
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(TempDir(t), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
