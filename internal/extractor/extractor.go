// Package extractor turns raw HTML into the field set the rule engine
// scores: title, meta description, header tags and visible body text.
package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"seoKeywordAnalyzerGO/internal/models"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Extract parses the page and builds its PageFields. Missing elements
// yield empty values; only a hard parse failure returns an error.
func Extract(htmlBytes []byte) (*models.PageFields, error) {
	root, err := html.Parse(bytes.NewReader(htmlBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc := goquery.NewDocumentFromNode(root)

	fields := &models.PageFields{
		Headers: make(map[int][]string, 6),
	}

	fields.Title = strings.TrimSpace(doc.Find("title").First().Text())

	if content, exists := doc.Find("meta[name='description']").First().Attr("content"); exists {
		fields.Description = strings.TrimSpace(content)
	}

	for level := 1; level <= 6; level++ {
		doc.Find(fmt.Sprintf("h%d", level)).Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if text != "" {
				fields.Headers[level] = append(fields.Headers[level], text)
			}
		})
	}

	fields.BodyText = collapseWhitespace(visibleText(root))

	return fields, nil
}

// visibleText concatenates every text node in the document, skipping the
// contents of script and style elements.
func visibleText(root *html.Node) string {
	var sb strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return sb.String()
}

// collapseWhitespace normalizes raw page text: each line is trimmed and
// split on double spaces, empty fragments are dropped, and the survivors
// are re-joined with single spaces.
//
// Because matching later runs on the re-joined string, a keyword occurrence
// that spans a double-space boundary in the source will not be found. That
// quirk is part of the observable behavior and is covered by tests; do not
// "fix" it without accepting changed keyword counts.
func collapseWhitespace(text string) string {
	var fragments []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for _, fragment := range strings.Split(line, "  ") {
			fragment = strings.TrimSpace(fragment)
			if fragment != "" {
				fragments = append(fragments, fragment)
			}
		}
	}
	return strings.Join(fragments, " ")
}
