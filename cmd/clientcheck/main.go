// Command clientcheck validates client endpoint settings before they are deployed.
//
// Usage:
//
//	clientcheck context-path /nacos
//	clientcheck url http://10.0.0.1:8848 https://nacos.example.com --first
//	clientcheck config --file settings.yaml --env-prefix NACOS_
//	clientcheck version
package main

import (
	"errors"
	"os"

	"github.com/jongio/clientcheck/cliout"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command line and returns the process exit code.
func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return 0
	}

	var rep *reportedError
	if !errors.As(err, &rep) {
		if cliout.IsJSON() {
			_ = cliout.PrintJSON(map[string]string{"error": err.Error()})
		} else {
			cliout.Error("%v", err)
		}
	}
	return 1
}

// reportedError marks a failure whose details were already written as output.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// reported wraps err when the JSON result already describes it.
func reported(err error) error {
	if err == nil || !cliout.IsJSON() {
		return err
	}
	return &reportedError{err: err}
}
