// Package cliout provides result output for the clientcheck command.
//
// # Features
//
//   - Default human-readable and JSON output formats
//   - ANSI colors on terminals, plain text when piped or when NO_COLOR is set
//   - Unicode symbols with ASCII fallbacks for legacy Windows consoles
//   - Simple aligned tables
//
// # Basic Usage
//
//	if err := cliout.SetFormat(outputFlag); err != nil {
//		return err
//	}
//
//	return cliout.Print(results, func() {
//		cliout.Success("context path %q is valid", path)
//		cliout.Table([]string{"Candidate", "Result"}, rows)
//	})
//
// In JSON mode Print encodes its data argument and skips the formatter.
//
// # Testing
//
// SetWriter redirects all output and returns the previous writer:
//
//	prev := cliout.SetWriter(&buf)
//	defer cliout.SetWriter(prev)
package cliout
