package main

import (
	"errors"
	"fmt"

	"github.com/jongio/clientcheck/cliout"
	"github.com/jongio/clientcheck/logutil"
	"github.com/jongio/clientcheck/urlutil"
	"github.com/spf13/cobra"
)

var errNoUsableURL = errors.New("no usable http or https URL")

type firstURLResult struct {
	URL   string `json:"url"`
	Valid bool   `json:"valid"`
}

func newURLCmd() *cobra.Command {
	var first bool

	cmd := &cobra.Command{
		Use:   "url CANDIDATE...",
		Short: "Check candidate endpoint URLs and print their canonical form",
		Long: `Check candidate endpoint URLs in order. A candidate is usable when it
parses, has a host and uses the http or https scheme. Exits non-zero when no
candidate is usable.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if first {
				return runFirstURL(args)
			}
			return runClassifyURLs(args)
		},
	}
	cmd.Flags().BoolVar(&first, "first", false, "Print only the first usable URL")
	return cmd
}

func runFirstURL(candidates []string) error {
	u, ok := urlutil.FirstValidURL(candidates...)
	if err := cliout.Print(firstURLResult{URL: u, Valid: ok}, func() {
		if ok {
			cliout.Plain("%s", u)
		}
	}); err != nil {
		return err
	}
	if !ok {
		return reported(fmt.Errorf("%w among %d candidates", errNoUsableURL, len(candidates)))
	}
	return nil
}

func runClassifyURLs(candidates []string) error {
	log := logutil.NewLogger("url").WithOperation("classify")
	results := urlutil.Classify(candidates)

	accepted := 0
	rows := make([]cliout.TableRow, 0, len(results))
	for _, r := range results {
		verdict := "accepted"
		if r.Valid {
			accepted++
		} else {
			verdict = r.Reason
			log.Debug("candidate rejected", "raw", r.Raw, "reason", r.Reason)
		}
		rows = append(rows, cliout.TableRow{"Candidate": r.Raw, "Result": verdict, "URL": r.URL})
	}

	if err := cliout.Print(results, func() {
		cliout.Table([]string{"Candidate", "Result", "URL"}, rows)
		cliout.Plain("%s", cliout.Muted("%d of %d candidates usable", accepted, len(candidates)))
	}); err != nil {
		return err
	}

	if accepted == 0 {
		return reported(fmt.Errorf("%w among %d candidates", errNoUsableURL, len(candidates)))
	}
	return nil
}
