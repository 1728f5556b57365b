package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// blockTags are elements that terminate a visual line. Used to approximate
// the rendered inner text of a container, which the title heuristic depends
// on being line-structured.
var blockTags = map[string]struct{}{
	"address": {}, "article": {}, "aside": {}, "blockquote": {}, "br": {},
	"div": {}, "dd": {}, "dl": {}, "dt": {}, "fieldset": {}, "figcaption": {},
	"figure": {}, "footer": {}, "form": {}, "h1": {}, "h2": {}, "h3": {},
	"h4": {}, "h5": {}, "h6": {}, "header": {}, "hr": {}, "li": {}, "main": {},
	"nav": {}, "ol": {}, "p": {}, "pre": {}, "section": {}, "table": {},
	"td": {}, "th": {}, "tr": {}, "ul": {},
}

// innerText renders the selection's text content with newlines at block
// boundaries, approximating the DOM innerText property closely enough for
// line-based heuristics.
func innerText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		writeText(&b, node)
	}
	return collapseLines(b.String())
}

func writeText(b *strings.Builder, node *html.Node) {
	switch node.Type {
	case html.TextNode:
		b.WriteString(node.Data)
	case html.ElementNode:
		switch node.Data {
		case "script", "style", "noscript", "template":
			return
		}
		if _, block := blockTags[node.Data]; block {
			b.WriteByte('\n')
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			writeText(b, child)
		}
		if _, block := blockTags[node.Data]; block {
			b.WriteByte('\n')
		}
	default:
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			writeText(b, child)
		}
	}
}

// collapseLines trims every line and drops runs of blank lines so the
// output matches what a browser reports for innerText.
func collapseLines(raw string) string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// ownText returns only the text held directly by the selection's nodes,
// excluding descendants. This is how price-bearing leaf elements are told
// apart from their ancestors.
func ownText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.TextNode {
				b.WriteString(child.Data)
			}
		}
	}
	return b.String()
}
