// File path: internal/docparse/dates.go
package docparse

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/bizdocai/bizdoc/internal/template"
)

// RefreshDates rewrites the text of every element marked with
// data-bizdoc-date="true" to the current date, so edited documents are
// re-stamped when they are saved back into the archive.
func RefreshDates(doc string, now time.Time) (string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("docparse: parse document: %w", err)
	}

	stamp := template.FormatDate(now)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && attr(n, template.DateAttr) == "true" {
			for n.FirstChild != nil {
				n.RemoveChild(n.FirstChild)
			}
			n.AppendChild(&html.Node{Type: html.TextNode, Data: stamp})
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	body := findElement(root, func(n *html.Node) bool { return n.Data == "body" })
	if body == nil {
		return doc, nil
	}
	var b strings.Builder
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", fmt.Errorf("docparse: render document: %w", err)
		}
	}
	return b.String(), nil
}
