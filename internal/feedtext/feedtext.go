// Package feedtext cleans raw field values lifted from alert feeds.
// Scraped cells arrive with markup fragments, entities and layout
// whitespace that would poison containment matching downstream.
package feedtext

import (
	"strings"

	"golang.org/x/net/html"
)

// Clean strips markup and collapses whitespace in a raw feed field.
// Entities are decoded by the parser, so "&amp;" comes back as "&".
func Clean(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to the raw string if parsing fails
		return collapse(s)
	}

	// Text nodes are joined with spaces so "B1<br>exceeded" does not
	// glue into one token; collapse folds the doubles back out.
	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return collapse(buf.String())
}

// collapse folds whitespace runs into single spaces and trims the ends.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
