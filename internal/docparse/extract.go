// File path: internal/docparse/extract.go
package docparse

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/bizdocai/bizdoc/internal/template"
)

// UnknownClient is returned when no heuristic finds a client company.
const UnknownClient = "Unknown Client"

// ExtractClientCompany pulls the client company out of a rendered document.
// Heuristics run in order of preference, one per document shape: the sibling
// after a "BILL TO" label, after a bold "To:" label, after a bold "Client:"
// label, and finally an editable region still carrying the unreplaced
// company placeholder.
func ExtractClientCompany(doc string) string {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return UnknownClient
	}

	heuristics := []func(*html.Node) string{
		billToSibling,
		boldLabelSibling("To:"),
		boldLabelSibling("Client:"),
		unreplacedPlaceholder,
	}
	for _, h := range heuristics {
		if got := h(root); got != "" {
			return got
		}
	}
	return UnknownClient
}

func billToSibling(root *html.Node) string {
	label := findElement(root, func(n *html.Node) bool {
		if n.Data != "p" && n.Data != "strong" {
			return false
		}
		return strings.ToUpper(strings.TrimSpace(textContent(n))) == "BILL TO"
	})
	if label == nil {
		return ""
	}
	return siblingText(label)
}

func boldLabelSibling(marker string) func(*html.Node) string {
	return func(root *html.Node) string {
		label := findElement(root, func(n *html.Node) bool {
			return n.Data == "strong" && strings.Contains(strings.TrimSpace(textContent(n)), marker)
		})
		if label == nil {
			return ""
		}
		return siblingText(label)
	}
}

func unreplacedPlaceholder(root *html.Node) string {
	editable := findElement(root, func(n *html.Node) bool {
		return attr(n, template.EditableAttr) == "true" &&
			strings.Contains(textContent(n), template.PlaceholderClientCompany)
	})
	if editable == nil {
		return ""
	}
	return template.PlaceholderClientCompany
}

// findElement walks the tree depth-first and returns the first element node
// matching the predicate.
func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, match); found != nil {
			return found
		}
	}
	return nil
}

// siblingText returns the trimmed text of the next element sibling.
func siblingText(n *html.Node) string {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return strings.TrimSpace(textContent(s))
		}
	}
	return ""
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
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
