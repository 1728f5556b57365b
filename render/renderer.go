// Package render resolves marketplace URLs to fully rendered page HTML.
package render

import (
	"context"
	"fmt"

	"github.com/wc26data/go-scrape-collect/config"
)

// PageRenderer is the capability the pipeline consumes to turn a URL into
// rendered HTML. Render failures are reported as ErrTimeout or
// ErrNavigation; implementations never panic across the boundary.
type PageRenderer interface {
	// Render navigates to url, waits for client-side rendering to settle,
	// and returns the page HTML. The context bounds the whole operation.
	Render(ctx context.Context, url string) (string, error)
	// Close releases the renderer's resources.
	Close() error
}

// New builds the renderer selected by cfg.Renderer. Acquiring the rendering
// capability is the one fatal startup step: an error here aborts the run
// before any tag is processed.
func New(cfg *config.Config) (PageRenderer, error) {
	switch cfg.Renderer {
	case config.RendererChrome:
		return NewChromeRenderer(cfg)
	case config.RendererStatic:
		return NewStaticRenderer(cfg)
	default:
		return nil, fmt.Errorf("unknown renderer %q", cfg.Renderer)
	}
}
