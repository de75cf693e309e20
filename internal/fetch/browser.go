package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// settleDelay gives the page script time to run its first section and theme updates.
const settleDelay = time.Second

// WithBrowser renders a page in a headless browser and returns the rendered HTML.
// Requires Chrome/Chromium to be installed on the system.
func WithBrowser(ctx context.Context, urlStr string, timeout time.Duration, logger *zap.Logger) (string, error) {
	if err := ValidateURL(urlStr); err != nil {
		return "", err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("starting headless browser", zap.String("url", urlStr))

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		chromedp.Sleep(settleDelay),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "browser rendering failed", Cause: err}
	}

	logger.Debug("rendered page", zap.String("url", urlStr), zap.Int("bytes", len(html)))
	return html, nil
}

// Page fetches urlStr over plain HTTP, or through a headless browser when useBrowser is set.
func Page(ctx context.Context, urlStr string, useBrowser bool, logger *zap.Logger) (string, error) {
	if useBrowser {
		return WithBrowser(ctx, urlStr, DefaultTimeout, logger)
	}
	result, err := URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	return result.HTML, nil
}
