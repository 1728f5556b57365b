package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"

	"github.com/wc26data/go-scrape-collect/config"
)

const snapshotPage = `<html><body><div><img src="c.png"/><h3>Quarter-Final Pack</h3><span>US$150.00</span></div></body></html>`

func newStatic(t *testing.T) (*StaticRenderer, *httpmock.MockTransport) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Renderer = config.RendererStatic

	r, err := NewStaticRenderer(cfg)
	if err != nil {
		t.Fatalf("NewStaticRenderer: %v", err)
	}
	transport := httpmock.NewMockTransport()
	r.WithTransport(transport)
	return r, transport
}

func TestStaticRender(t *testing.T) {
	r, transport := newStatic(t)
	transport.RegisterResponder("GET", "https://snapshots.test/marketplace?tags=m1",
		httpmock.NewStringResponder(200, snapshotPage))

	html, err := r.Render(context.Background(), "https://snapshots.test/marketplace?tags=m1")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "US$150.00") {
		t.Fatalf("rendered body missing content: %q", html)
	}
}

func TestStaticRenderHTTPError(t *testing.T) {
	r, transport := newStatic(t)
	transport.RegisterResponder("GET", "https://snapshots.test/marketplace?tags=m2",
		httpmock.NewStringResponder(404, "not found"))

	_, err := r.Render(context.Background(), "https://snapshots.test/marketplace?tags=m2")
	if err == nil {
		t.Fatalf("expected error for 404 response")
	}
	if got := ErrorTypeLabel(err); got != "navigation" {
		t.Fatalf("error label = %q, want navigation", got)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("error does not name status: %v", err)
	}
}

func TestStaticRenderSequentialReuse(t *testing.T) {
	// A failure must not leak into the next call's result.
	r, transport := newStatic(t)
	transport.RegisterResponder("GET", "https://snapshots.test/marketplace?tags=m3",
		httpmock.NewStringResponder(500, "boom"))
	transport.RegisterResponder("GET", "https://snapshots.test/marketplace?tags=m4",
		httpmock.NewStringResponder(200, snapshotPage))

	if _, err := r.Render(context.Background(), "https://snapshots.test/marketplace?tags=m3"); err == nil {
		t.Fatalf("expected error for 500 response")
	}
	html, err := r.Render(context.Background(), "https://snapshots.test/marketplace?tags=m4")
	if err != nil {
		t.Fatalf("second Render: %v", err)
	}
	if !strings.Contains(html, "Quarter-Final Pack") {
		t.Fatalf("second render returned wrong body: %q", html)
	}
}

func TestStaticRenderCancelledContext(t *testing.T) {
	r, _ := newStatic(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, "https://snapshots.test/marketplace?tags=m1"); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}

// timeoutErr satisfies net.Error with Timeout() true.
type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLabel string
	}{
		{name: "deadline exceeded", err: context.DeadlineExceeded, wantLabel: "timeout"},
		{name: "net timeout", err: timeoutErr{}, wantLabel: "timeout"},
		{name: "generic", err: errors.New("connection refused"), wantLabel: "navigation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyError(tt.err)
			if classified == nil {
				t.Fatalf("classifyError(%v) = nil", tt.err)
			}
			if got := ErrorTypeLabel(classified); got != tt.wantLabel {
				t.Fatalf("label = %q, want %q", got, tt.wantLabel)
			}
			if !errors.Is(classified, tt.err) {
				t.Fatalf("classified error does not unwrap to cause")
			}
		})
	}

	if classifyError(nil) != nil {
		t.Fatalf("classifyError(nil) should be nil")
	}
}

func TestErrorTypeLabel(t *testing.T) {
	if got := ErrorTypeLabel(nil); got != "unknown" {
		t.Errorf("label(nil) = %q, want unknown", got)
	}
	if got := ErrorTypeLabel(errors.New("raw")); got != "other" {
		t.Errorf("label(raw) = %q, want other", got)
	}
}
