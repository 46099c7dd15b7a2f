// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides process logging for the clientcheck command, built on slog.
//
// The validation packages never log; only the command and its helpers do.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	log := logutil.NewLogger("config").WithOperation("check")
//	log.Debug("reading property", "key", "contextPath")
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set CLIENTCHECK_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2026-01-15T10:30:00Z","level":"DEBUG","msg":"candidate rejected","raw":"ftp://x"}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2026-01-15T10:30:00Z level=DEBUG msg="candidate rejected" raw=ftp://x
package logutil
