package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/wc26data/go-scrape-collect/models"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

const cardPage = `<html><body>
<div class="card">
  <img src="bundle.png"/>
  <h3>2026 Mexico City Ticket Bundle</h3>
  <div>Rare</div>
  <div>From</div>
  <div><span>US$1,234.56</span></div>
</div>
</body></html>`

func TestExtractCard(t *testing.T) {
	e := NewExtractor(15, 8)
	listings := e.Extract("m13", parseDoc(t, cardPage))

	if len(listings) != 1 {
		t.Fatalf("extracted %d listings, want 1", len(listings))
	}
	got := listings[0]
	if got.Price != "US$1,234.56" {
		t.Errorf("price = %q, want US$1,234.56", got.Price)
	}
	if got.Title != "2026 Mexico City Ticket Bundle" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Kind != models.KindRare {
		t.Errorf("kind = %v, want Rare", got.Kind)
	}
	if got.Tag != "m13" {
		t.Errorf("tag = %q, want m13", got.Tag)
	}
	if !strings.Contains(got.Text, "2026 Mexico City Ticket Bundle") || !strings.Contains(got.Text, "US$1,234.56") {
		t.Errorf("container text incomplete: %q", got.Text)
	}
}

func TestExtractCandidateCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&b, `<div class="card"><img src="c.png"/><h3>Collectible Number %03d</h3><span>US$%d.00</span></div>`, i, i+1)
	}
	b.WriteString("</body></html>")

	e := NewExtractor(15, 8)
	listings := e.Extract("m1", parseDoc(t, b.String()))
	if len(listings) != 15 {
		t.Fatalf("extracted %d listings, want the 15-candidate cap", len(listings))
	}
	// Document order: the first matches win, not an arbitrary subset.
	if listings[0].Price != "US$1.00" {
		t.Errorf("first listing price = %q, want US$1.00", listings[0].Price)
	}
}

func TestExtractContainerFallback(t *testing.T) {
	// No ancestor carries an image or heading; the last visited ancestor
	// within the hop limit still yields a usable container.
	page := `<html><body><div><div><div><span>Souvenir Pennant Pack US$42.00</span></div></div></div></body></html>`

	e := NewExtractor(15, 2)
	listings := e.Extract("m2", parseDoc(t, page))
	if len(listings) != 1 {
		t.Fatalf("extracted %d listings, want 1", len(listings))
	}
	if listings[0].Price != "US$42.00" {
		t.Errorf("price = %q, want US$42.00", listings[0].Price)
	}
}

func TestTitleLine(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "skips price and From lines",
			text: "From\nUS$120.00\nQuarter-Final Collectible Set",
			want: "Quarter-Final Collectible Set",
		},
		{
			name: "short lines skipped",
			text: "Rare\nEpic\nOpening Match Memorabilia",
			want: "Opening Match Memorabilia",
		},
		{
			name: "From match is case sensitive",
			text: "Postcards from Monterrey Stadium",
			want: "Postcards from Monterrey Stadium",
		},
		{
			name: "embedded From skipped",
			text: "Available From June\nGroup Stage Ticket Stub",
			want: "Group Stage Ticket Stub",
		},
		{
			name: "nothing qualifies",
			text: "From\nUS$9.99\nRare",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := titleLine(tt.text); got != tt.want {
				t.Fatalf("titleLine(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		text string
		want models.ListingKind
	}{
		{"Iconic Final Moment", models.KindIconic},
		{"Rare Group Stage Card", models.KindRare},
		{"Epic Save Collection", models.KindEpic},
		{"Iconic and Epic bundle", models.KindIconic}, // highest tier wins
		{"Plain ticket stub", models.KindUnknown},
	}

	for _, tt := range tests {
		if got := kindOf(tt.text); got != tt.want {
			t.Errorf("kindOf(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestFilter(t *testing.T) {
	good := &models.Listing{Tag: "m1", Price: "US$10.00", Text: "Ticket US$10.00"}
	noPrice := &models.Listing{Tag: "m1", Price: "", Text: "Ticket"}
	withdrawn := &models.Listing{Tag: "m1", Price: "US$10.00", Text: "Ticket no longer valid"}
	second := &models.Listing{Tag: "m1", Price: "US$20.00", Text: "Scarf US$20.00"}

	valid := Filter([]*models.Listing{good, noPrice, withdrawn, second})
	if len(valid) != 2 || valid[0] != good || valid[1] != second {
		t.Fatalf("Filter kept %d entries in wrong order: %v", len(valid), valid)
	}

	// Filtering is idempotent: a filtered sequence passes through unchanged.
	again := Filter(valid)
	if len(again) != len(valid) || again[0] != valid[0] || again[1] != valid[1] {
		t.Fatalf("second Filter pass altered the sequence")
	}

	if got := Filter(nil); len(got) != 0 {
		t.Fatalf("Filter(nil) = %v, want empty", got)
	}
}
