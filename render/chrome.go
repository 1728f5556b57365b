package render

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/wc26data/go-scrape-collect/config"
)

// ChromeRenderer drives a headless Chrome instance. One browser process is
// shared across the run; every Render call opens its own tab and closes it
// on all exit paths, so a wedged page never leaks into the next tag.
type ChromeRenderer struct {
	browserCtx  context.Context
	cancel      context.CancelFunc
	navTimeout  time.Duration
	settleDelay time.Duration
}

// NewChromeRenderer launches the browser. Failure here is fatal to the run.
func NewChromeRenderer(cfg *config.Config) (*ChromeRenderer, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("log-level", "3"), // suppress Chrome logs
		chromedp.UserAgent(cfg.UserAgent),
		chromedp.WindowSize(1920, 1080),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelBrowser()
		cancelAlloc()
	}

	// Start the browser now so a missing Chrome binary fails the run up
	// front instead of on the first tag.
	if err := chromedp.Run(browserCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	return &ChromeRenderer{
		browserCtx:  browserCtx,
		cancel:      cancel,
		navTimeout:  cfg.NavigationTimeout,
		settleDelay: cfg.SettleDelay,
	}, nil
}

// Render opens a fresh tab, navigates, waits the fixed settle delay for
// client-side rendering to finish, and snapshots the document HTML.
func (r *ChromeRenderer) Render(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", classifyError(err)
	}

	tabCtx, cancelTab := chromedp.NewContext(r.browserCtx)
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, r.navTimeout+r.settleDelay)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(r.settleDelay),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", classifyError(err)
	}
	return html, nil
}

// Close shuts the browser down.
func (r *ChromeRenderer) Close() error {
	r.cancel()
	return nil
}
