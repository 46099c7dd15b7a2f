// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerCreatesWithComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("mycomponent")
	if logger.Component() != "mycomponent" {
		t.Errorf("expected component 'mycomponent', got %q", logger.Component())
	}

	logger.Info("hello")
	if !strings.Contains(buf.String(), "component=mycomponent") {
		t.Errorf("expected output to contain component=mycomponent, got: %s", buf.String())
	}
}

func TestChainingContexts(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("config").
		WithOperation("check").
		WithProperty("contextPath").
		WithFields("source", "flags")
	logger.Warn("rejected")

	output := buf.String()
	for _, want := range []string{"component=config", "operation=check", "property=contextPath", "source=flags", "level=WARN"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
	if logger.Component() != "config" {
		t.Errorf("chained logger lost component, got %q", logger.Component())
	}
}

func TestComponentLogLevelsStructured(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv(EnvDebug, "")
	SetupLoggerWithWriter(&buf, false, true)

	logger := NewLogger("url")
	logger.Debug("hidden")
	logger.Info("shown")
	logger.Error("failed")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("debug should be filtered, got: %s", output)
	}
	if !strings.Contains(output, `"component":"url"`) {
		t.Errorf("expected JSON component field, got: %s", output)
	}
	if !strings.Contains(output, `"level":"ERROR"`) {
		t.Errorf("expected JSON error level, got: %s", output)
	}
}
