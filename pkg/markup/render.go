package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Render serialises a node tree to HTML.
func Render(n *html.Node) (string, error) {
	if n == nil {
		return "", nil
	}
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", fmt.Errorf("markup: render <%s>: %w", n.Data, err)
	}
	return b.String(), nil
}

// Find returns the first node in depth-first order matching pred.
func Find(root *html.Node, pred func(*html.Node) bool) *html.Node {
	if root == nil {
		return nil
	}
	if pred(root) {
		return root
	}
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if found := Find(child, pred); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node matching pred in depth-first order.
func FindAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if pred(n) {
			out = append(out, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// ByTag matches element nodes with the given tag name.
func ByTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

// ByAttr matches element nodes carrying key=value.
func ByAttr(key, value string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && HasAttr(n, key) && GetAttr(n, key) == value
	}
}

// TextContent concatenates the text nodes below n.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}
