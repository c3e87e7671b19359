package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Document holds the text pulled from one page: heading text (levels 1-3)
// and paragraph text, each in document order.
type Document struct {
	Title      string
	Headings   []string
	Paragraphs []string
}

// Lines returns all headings first, then all paragraphs, each in document
// order. Headings-before-paragraphs is a deliberate simplification of page
// layout, not semantic extraction.
func (d Document) Lines() []string {
	out := make([]string, 0, len(d.Headings)+len(d.Paragraphs))
	out = append(out, d.Headings...)
	out = append(out, d.Paragraphs...)
	return out
}

// Text joins Lines with newlines. Empty means the page had no extractable content.
func (d Document) Text() string {
	return strings.Join(d.Lines(), "\n")
}

// Empty reports whether the document carries no extractable content.
func (d Document) Empty() bool {
	return len(d.Headings) == 0 && len(d.Paragraphs) == 0
}

// FromHTML parses markup and collects the text of h1-h3 and p elements.
// Element text is the concatenation of descendant text nodes with whitespace
// collapsed; items that are empty after trimming are dropped. Malformed input
// yields an empty Document rather than an error.
func FromHTML(input []byte) Document {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return Document{}
	}

	var d Document
	d.Title = strings.TrimSpace(findTitle(node))

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h1", "h2", "h3":
				if t := elementText(n); t != "" {
					d.Headings = append(d.Headings, t)
				}
				return
			case "p":
				if t := elementText(n); t != "" {
					d.Paragraphs = append(d.Paragraphs, t)
				}
				return
			case "script", "style", "noscript":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)
	return d
}

func findTitle(n *html.Node) string {
	head := findFirst(n, "head")
	if head == nil {
		return ""
	}
	t := findFirst(head, "title")
	if t == nil || t.FirstChild == nil {
		return ""
	}
	return t.FirstChild.Data
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

// elementText concatenates the text nodes under n, skipping script/style
// subtrees, and returns the trimmed, whitespace-collapsed result.
func elementText(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(cur *html.Node) {
		if cur.Type == html.ElementNode {
			switch strings.ToLower(cur.Data) {
			case "script", "style", "noscript":
				return
			}
		}
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.TrimSpace(collapseSpaces(b.String()))
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}
