package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/renz/portfolio/internal/fetch"
	"github.com/renz/portfolio/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentChecks = 4

var (
	verifyURLs    []string
	verifyBrowser bool
	verifyTimeout time.Duration
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that a deployed page's navigation targets every section",
	Long: `Fetch one or more rendered portfolio pages and check that every nav anchor
points at one of the home, projects, about, skills, and contact sections.

Example:
  portfolio verify --url http://localhost:8080 --url https://example.dev --browser`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringArrayVar(&verifyURLs, "url", nil, "Page URL to check (repeatable)")
	verifyCmd.Flags().BoolVar(&verifyBrowser, "browser", false, "Render pages in headless Chrome before checking")
	verifyCmd.Flags().DurationVar(&verifyTimeout, "timeout", 2*time.Minute, "Overall timeout")
	_ = verifyCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), verifyTimeout)
	defer cancel()

	checks, failures := verifyPages(ctx, verifyURLs, verifyBrowser, logger)

	printer := observability.NewPrinter(cmd.OutOrStdout())
	for _, check := range checks {
		printer.PrintNavCheck(check)
	}
	printer.PrintVerifySummary(checks, failures)

	failed := len(failures)
	for _, check := range checks {
		if !check.OK() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d page(s) failed verification", failed)
	}
	return nil
}

// verifyPages checks every URL concurrently. Pages that could not be fetched
// or parsed are reported in failures rather than aborting the others.
func verifyPages(ctx context.Context, urls []string, useBrowser bool, logger *zap.Logger) ([]*fetch.Check, map[string]error) {
	results := make([]*fetch.Check, len(urls))
	failures := make(map[string]error)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChecks)

	for i, u := range urls {
		g.Go(func() error {
			logger.Debug("verifying page", zap.String("url", u))

			html, err := fetch.Page(gctx, u, useBrowser, logger)
			if err == nil {
				results[i], err = fetch.Inspect(u, html)
			}
			if err != nil {
				mu.Lock()
				failures[u] = err
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	checks := make([]*fetch.Check, 0, len(results))
	for _, c := range results {
		if c != nil {
			checks = append(checks, c)
		}
	}
	return checks, failures
}
