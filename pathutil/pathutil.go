// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"errors"
	"strings"
)

// Separator is the URL path separator.
const Separator = "/"

// ErrIllegalPath is returned for a context path containing consecutive separators.
var ErrIllegalPath = errors.New("illegal url path expression")

// HasConsecutiveSeparators reports whether path contains a run of two or more '/'.
func HasConsecutiveSeparators(path string) bool {
	return strings.Contains(path, Separator+Separator)
}

// CheckContextPath returns ErrIllegalPath when path contains consecutive separators.
// An empty path means no context path is configured and is always valid.
func CheckContextPath(path string) error {
	if path == "" {
		return nil
	}
	if HasConsecutiveSeparators(path) {
		return ErrIllegalPath
	}
	return nil
}
