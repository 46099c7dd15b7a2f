package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jongio/clientcheck/cliout"
	"github.com/jongio/clientcheck/logutil"
	"github.com/jongio/clientcheck/props"
	"github.com/jongio/clientcheck/urlutil"
	"github.com/jongio/clientcheck/validator"
	"github.com/spf13/cobra"
)

const defaultEnvPrefix = "CLIENTCHECK_"

type configOptions struct {
	file          string
	envPrefix     string
	noEnv         bool
	defaultScheme string
}

type configResult struct {
	ContextPath      string   `json:"contextPath"`
	ContextPathValid bool     `json:"contextPathValid"`
	Error            string   `json:"error,omitempty"`
	ServerURLs       []string `json:"serverUrls"`
}

func newConfigCmd() *cobra.Command {
	opts := &configOptions{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Check client settings from flags, environment and a settings file",
		Long: `Check client settings the way a client does at initialization.

Properties are looked up in order: flags, environment variables
(<prefix>CONTEXT_PATH, <prefix>SERVER_ADDR), then the settings file.
Files ending in .yaml or .yml are read as YAML, anything else as
key=value properties.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := opts.source(cmd)
			if err != nil {
				return err
			}
			return runConfig(src, opts.defaultScheme)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "Settings file (.yaml, .yml or .properties)")
	flags.StringVar(&opts.envPrefix, "env-prefix", defaultEnvPrefix, "Environment variable prefix")
	flags.BoolVar(&opts.noEnv, "no-env", false, "Ignore environment variables")
	flags.StringVar(&opts.defaultScheme, "default-scheme", urlutil.SchemeHTTP, "Scheme for server addresses without one")
	flags.String("context-path", "", "Context path, overrides environment and file")
	flags.String("server-addr", "", "Comma separated server addresses, overrides environment and file")

	return cmd
}

// source builds the layered property source: flags, then environment, then file.
func (o *configOptions) source(cmd *cobra.Command) (props.Source, error) {
	log := logutil.NewLogger("config").WithOperation("load")

	sources := []props.Source{
		props.NewFlags(cmd.Flags(), map[string]string{
			validator.ContextPathKey: "context-path",
			validator.ServerAddrKey:  "server-addr",
		}),
	}

	if !o.noEnv {
		log.Debug("reading environment", "prefix", o.envPrefix)
		sources = append(sources, props.NewEnv(o.envPrefix, nil))
	}

	if o.file != "" {
		fileProps, err := loadFile(o.file)
		if err != nil {
			return nil, err
		}
		log.Debug("read settings file", "path", o.file, "properties", len(fileProps))
		sources = append(sources, fileProps)
	}

	return props.Chain(sources...), nil
}

func loadFile(path string) (props.Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		m, err := props.FromYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return m, nil
	default:
		return props.ParseProperties(data), nil
	}
}

func runConfig(src props.Source, defaultScheme string) error {
	log := logutil.NewLogger("config").WithOperation("check")

	res := configResult{
		ContextPath:      props.Get(src, validator.ContextPathKey, ""),
		ContextPathValid: true,
		ServerURLs:       validator.ServerURLs(src, defaultScheme),
	}

	checkErr := validator.CheckInitParam(src)
	if checkErr != nil {
		res.ContextPathValid = false
		res.Error = checkErr.Error()

		var cfgErr *validator.ConfigError
		if errors.As(checkErr, &cfgErr) {
			log.WithProperty(cfgErr.Key).Debug("rejected", "detail", cfgErr.Detail())
			checkErr = fmt.Errorf("%s: %w", cfgErr.Key, checkErr)
		}
	}

	if err := cliout.Print(res, func() {
		if res.ContextPathValid {
			cliout.Success("context path %q is valid", res.ContextPath)
		}
		addrs := urlutil.Classify(validator.ServerAddrs(src, defaultScheme))
		if len(addrs) > 0 {
			cliout.Info("server addresses:")
		}
		for _, a := range addrs {
			if a.Valid {
				cliout.ItemSuccess("%s", a.URL)
			} else {
				cliout.ItemError("%s (%s)", a.Raw, a.Reason)
			}
		}
		if len(res.ServerURLs) == 0 {
			cliout.Warning("no usable server URLs configured")
		}
	}); err != nil {
		return err
	}

	return reported(checkErr)
}
