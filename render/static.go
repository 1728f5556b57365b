package render

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gocolly/colly/v2"

	"github.com/wc26data/go-scrape-collect/config"
)

// StaticRenderer fetches raw page HTML over plain HTTP. The live
// marketplace is client-rendered, so this renderer only sees useful content
// against saved snapshots; it exists for hermetic runs and diagnostics.
//
// Render calls must not overlap: the pipeline is strictly sequential and the
// renderer relies on that.
type StaticRenderer struct {
	collector *colly.Collector

	lastBody []byte
	lastErr  error
}

// NewStaticRenderer builds the collector with the configured timeout and
// user agent.
func NewStaticRenderer(cfg *config.Config) (*StaticRenderer, error) {
	collector := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
		colly.AllowURLRevisit(),
	)
	collector.SetRequestTimeout(cfg.NavigationTimeout)
	// Snapshot hosts have no robots.txt; skip the extra fetch.
	collector.IgnoreRobotsTxt = true

	r := &StaticRenderer{collector: collector}
	collector.OnResponse(func(resp *colly.Response) {
		r.lastBody = resp.Body
	})
	collector.OnError(func(resp *colly.Response, err error) {
		if resp != nil && resp.StatusCode != 0 {
			err = fmt.Errorf("http status %d: %w", resp.StatusCode, err)
		}
		r.lastErr = err
	})
	return r, nil
}

// WithTransport swaps the underlying HTTP transport. Used by tests.
func (r *StaticRenderer) WithTransport(rt http.RoundTripper) {
	r.collector.WithTransport(rt)
}

// Render fetches url and returns the response body as HTML.
func (r *StaticRenderer) Render(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", classifyError(err)
	}

	r.lastBody = nil
	r.lastErr = nil

	if err := r.collector.Visit(url); err != nil && r.lastErr == nil {
		r.lastErr = err
	}
	if r.lastErr != nil {
		return "", classifyError(r.lastErr)
	}
	if len(r.lastBody) == 0 {
		return "", ErrNavigation{Err: fmt.Errorf("empty response body for %s", url)}
	}
	return string(r.lastBody), nil
}

// Close is a no-op; the collector holds no long-lived resources.
func (r *StaticRenderer) Close() error {
	return nil
}
