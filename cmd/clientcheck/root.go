package main

import (
	"github.com/jongio/clientcheck/cliout"
	"github.com/jongio/clientcheck/logutil"
	"github.com/jongio/clientcheck/version"
	"github.com/spf13/cobra"
)

const binaryName = "clientcheck"

type rootOptions struct {
	output         string
	debug          bool
	structuredLogs bool
	logLevel       string
	noColor        bool
	color          bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           binaryName,
		Short:         "Validate client context paths and endpoint URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cliout.SetFormat(opts.output); err != nil {
				return err
			}
			switch {
			case opts.noColor:
				cliout.NoColor()
			case opts.color:
				cliout.ForceColor()
			}
			logutil.SetupLogger(opts.debug, opts.structuredLogs)
			if opts.logLevel != "" {
				logutil.SetLevel(logutil.ParseLevel(opts.logLevel))
			}
			logutil.Debug("logging configured", "level", logutil.GetLevel().String())
			logutil.Debug("command started", "command", cmd.CommandPath(), "args", len(args))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.output, "output", "o", "default", "Output format (default, json)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.structuredLogs, "structured-logs", false, "Write logs as JSON")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error), overrides --debug")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&opts.color, "color", false, "Force colored output even when not writing to a terminal")

	root.AddCommand(
		newContextPathCmd(),
		newURLCmd(),
		newConfigCmd(),
		version.NewCommand(version.New(binaryName)),
	)
	return root
}
