package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jongio/clientcheck/cliout"
)

func TestCaptureOutput(t *testing.T) {
	output := CaptureOutput(t, func() error {
		cliout.Plain("captured line")
		return nil
	})
	if output != "captured line\n" {
		t.Errorf("expected captured output, got %q", output)
	}
}

func TestCaptureOutputWithError(t *testing.T) {
	output := CaptureOutput(t, func() error {
		cliout.Plain("before failure")
		return errors.New("boom")
	})
	if !strings.Contains(output, "before failure") {
		t.Errorf("expected output despite error, got %q", output)
	}
}

func TestTempDir(t *testing.T) {
	var dir string
	t.Run("create", func(t *testing.T) {
		dir = TempDir(t)
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("temp dir missing: %v", err)
		}
		if !info.IsDir() {
			t.Fatalf("%s is not a directory", dir)
		}
	})

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("expected %s to be removed after subtest, stat err = %v", dir, err)
	}
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "settings.properties", "contextPath=/nacos\n")
	if filepath.Base(path) != "settings.properties" {
		t.Errorf("unexpected file name %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != "contextPath=/nacos\n" {
		t.Errorf("unexpected content %q", data)
	}
}
