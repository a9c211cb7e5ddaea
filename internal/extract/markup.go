package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	brTag           = regexp.MustCompile(`(?i)<br\s*/?>`)
	costPlaceholder = regexp.MustCompile(`(?i)\(\s*(?:<cost>|‹cost›)\s*\)`)
	researchLine    = regexp.MustCompile(`(?i)^Изучить\s+.+?\s*\(\s*‹cost›\s*\)$`)
)

// CleanMarkup converts <br> tags to newlines and strips all other markup,
// returning plain text with entities decoded
func CleanMarkup(htmlText string) string {
	if htmlText == "" {
		return ""
	}

	withNewlines := brTag.ReplaceAllString(htmlText, "\n")

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(withNewlines), body)
	if err != nil {
		return withNewlines
	}

	var buf strings.Builder
	for _, n := range nodes {
		writeText(&buf, n)
	}
	return buf.String()
}

// writeText appends text nodes under n, skipping non-visible elements
func writeText(buf *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "iframe":
			return
		}
	}

	if n.Type == html.TextNode {
		buf.WriteString(n.Data)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(buf, c)
	}
}

// StripCostPlaceholder removes "(<cost>)" and "(‹cost›)" placeholders
func StripCostPlaceholder(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(costPlaceholder.ReplaceAllString(text, ""))
}

// StripResearchLine drops a leading "Изучить <tech> (‹cost›)" line and the
// blank lines after it. Text without such a line is returned unchanged.
func StripResearchLine(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || !researchLine.MatchString(strings.TrimSpace(lines[0])) {
		return text
	}

	rest := lines[1:]
	for len(rest) > 0 && strings.TrimSpace(rest[0]) == "" {
		rest = rest[1:]
	}
	return strings.TrimSpace(strings.Join(rest, "\n"))
}
