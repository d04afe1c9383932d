package content

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Rendered is a page body converted to sanitized HTML plus its heading
// outline for the on-page table of contents.
type Rendered struct {
	HTML template.HTML
	TOC  []Heading
}

// Heading is one h2 entry of the rendered document.
type Heading struct {
	ID   string
	Text string
}

var (
	markdown = goldmark.New(
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// Render converts markdown to sanitized HTML, assigning slug ids to h2
// headings and collecting them for the table of contents. A render problem
// degrades to escaped plain text; it never fails the page.
func Render(md string) Rendered {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return Rendered{HTML: template.HTML("<p>" + template.HTMLEscapeString(md) + "</p>")}
	}
	clean := sanitizer.SanitizeBytes(buf.Bytes())
	out, toc := annotateHeadings(clean)
	return Rendered{HTML: template.HTML(out), TOC: toc}
}

// annotateHeadings walks the sanitized fragment, adds ids to h2 elements,
// and returns the re-serialized markup with the collected outline.
func annotateHeadings(fragment []byte) (string, []Heading) {
	nodes, err := html.ParseFragment(bytes.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return string(fragment), nil
	}
	var toc []Heading
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "h2" {
			text := textContent(n)
			id := headingID(text, len(toc))
			setAttr(n, "id", id)
			toc = append(toc, Heading{ID: id, Text: text})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	var buf bytes.Buffer
	for _, n := range nodes {
		walk(n)
		if err := html.Render(&buf, n); err != nil {
			return string(fragment), toc
		}
	}
	return buf.String(), toc
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func headingID(text string, pos int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteRune('-')
		}
	}
	id := strings.Trim(b.String(), "-")
	if id == "" {
		id = fmt.Sprintf("section-%d", pos+1)
	}
	return id
}
