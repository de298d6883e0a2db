package jd

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	tagPattern = regexp.MustCompile(`<[^>]+>`)

	// Employer boilerplate that carries no skill signal but pollutes
	// frequency counts and section detection.
	boilerplatePattern = regexp.MustCompile(
		`(?i)(equal opportunity employer|affirmative action|we are an eoe|apply now|about us|about the company)`)

	horizontalSpace = regexp.MustCompile(`[ \t]+`)
	excessBlanks    = regexp.MustCompile(`\n{3,}`)
)

// Normalize cleans raw JD text for extraction: tags and boilerplate out,
// lowercase, horizontal whitespace collapsed, 3+ blank lines reduced to one.
// Characters meaningful inside skill names (+ . # /) are preserved.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	text := tagPattern.ReplaceAllString(raw, " ")
	text = boilerplatePattern.ReplaceAllString(text, " ")
	text = strings.ToLower(text)
	text = horizontalSpace.ReplaceAllString(text, " ")
	text = excessBlanks.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// blockTags are HTML elements that imply a line break when a full document
// is flattened to text. Line structure matters downstream: section markers
// are detected per line.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"tr": true, "section": true, "article": true, "header": true, "footer": true,
}

// HTMLToText flattens a full HTML job posting to plain text, inserting
// newlines at block boundaries so list items and headings stay on their own
// lines. Script and style content is dropped entirely.
func HTMLToText(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript").Remove()

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			b.WriteByte('\n')
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			b.WriteByte('\n')
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}

	return b.String(), nil
}
