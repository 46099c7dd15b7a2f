package main

import (
	"github.com/jongio/clientcheck/cliout"
	"github.com/jongio/clientcheck/validator"
	"github.com/spf13/cobra"
)

type contextPathResult struct {
	ContextPath string `json:"contextPath"`
	Valid       bool   `json:"valid"`
	Error       string `json:"error,omitempty"`
}

func newContextPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "context-path PATH",
		Short: "Check that a context path has no consecutive '/' separators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			res := contextPathResult{ContextPath: path, Valid: true}

			err := validator.CheckContextPath(path)
			if err != nil {
				res.Valid = false
				res.Error = err.Error()
			}

			if printErr := cliout.Print(res, func() {
				if res.Valid {
					cliout.Success("context path %q is valid", path)
				}
			}); printErr != nil {
				return printErr
			}
			return reported(err)
		},
	}
}
