// Package testutil provides common testing utilities for clientcheck packages.
// It includes helpers for capturing command output and writing fixture files
// into temporary directories.
package testutil
