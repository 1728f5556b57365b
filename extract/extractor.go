// Package extract locates price-bearing fragments in a rendered marketplace
// page and turns them into listing records.
package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/wc26data/go-scrape-collect/models"
)

// priceMarker is the currency prefix every marketplace price carries.
const priceMarker = "US$"

// pricePattern captures a full price: currency prefix, digit groups with
// optional thousands separators, optional decimal part.
var pricePattern = regexp.MustCompile(`US\$[\d,]+\.?\d*`)

// Extractor produces candidate listings from a rendered document using
// structural and text heuristics.
type Extractor struct {
	// MaxCandidates bounds how many price matches are examined per page.
	MaxCandidates int
	// MaxAncestorHops bounds the upward walk when locating the extraction
	// container for a price node.
	MaxAncestorHops int
}

// NewExtractor returns an extractor with the empirically tuned bounds.
func NewExtractor(maxCandidates, maxAncestorHops int) *Extractor {
	return &Extractor{MaxCandidates: maxCandidates, MaxAncestorHops: maxAncestorHops}
}

// Extract returns candidate listings for tag in document order. Individual
// candidate failures are skipped so one malformed card cannot abort the
// rest of the page; validity filtering happens downstream.
func (e *Extractor) Extract(tag models.Tag, doc *goquery.Document) []*models.Listing {
	var listings []*models.Listing
	for _, node := range e.priceNodes(doc) {
		listing := e.extractOne(tag, node)
		if listing == nil {
			continue
		}
		listings = append(listings, listing)
	}
	return listings
}

// priceNodes finds the leaf elements whose own text carries the price
// marker, capped at MaxCandidates matches per document.
func (e *Extractor) priceNodes(doc *goquery.Document) []*goquery.Selection {
	var nodes []*goquery.Selection
	doc.Find("*").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !strings.Contains(ownText(sel), priceMarker) {
			return true
		}
		nodes = append(nodes, sel)
		return len(nodes) < e.MaxCandidates
	})
	return nodes
}

// extractOne builds a single candidate from a price node, or nil when the
// candidate cannot be extracted.
func (e *Extractor) extractOne(tag models.Tag, node *goquery.Selection) *models.Listing {
	container := e.findExtractionContainer(node)
	if container == nil {
		return nil
	}

	text := strings.TrimSpace(innerText(container))
	if text == "" {
		return nil
	}

	return &models.Listing{
		Tag:   tag,
		Price: pricePattern.FindString(text),
		Text:  text,
		Title: titleLine(text),
		Kind:  kindOf(text),
	}
}

// findExtractionContainer walks ancestors upward from a price node looking
// for the first one holding an image or a heading, which marks the full
// listing card. If none qualifies within MaxAncestorHops the last visited
// ancestor is used, tolerating irregular layouts.
func (e *Extractor) findExtractionContainer(node *goquery.Selection) *goquery.Selection {
	current := node
	for i := 0; i < e.MaxAncestorHops; i++ {
		parent := current.Parent()
		if parent.Length() == 0 {
			break
		}
		current = parent
		if current.Find("img").Length() > 0 || current.Find("h1,h2,h3,h4,h5,h6").Length() > 0 {
			return current
		}
	}
	if current == node {
		return nil
	}
	return current
}

// titleLine picks the first substantive line of the container text: not a
// price line, not the "From" prefix the marketplace puts above prices, and
// long enough to be a real title. Empty when no line qualifies.
func titleLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, priceMarker) || strings.Contains(line, "From") {
			continue
		}
		if utf8.RuneCountInString(line) > 10 {
			return line
		}
	}
	return ""
}

// kindOf detects the collectible tier by keyword, highest tier first.
func kindOf(text string) models.ListingKind {
	switch {
	case strings.Contains(text, "Iconic"):
		return models.KindIconic
	case strings.Contains(text, "Rare"):
		return models.KindRare
	case strings.Contains(text, "Epic"):
		return models.KindEpic
	default:
		return models.KindUnknown
	}
}
