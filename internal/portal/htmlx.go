package portal

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Small traversal helpers over x/net/html. The portal's pages are
// server-rendered JSP with stable ids/classes, so predicate-based searches
// are all the selection power needed.

func parsePage(body []byte) (*html.Node, error) {
	return html.Parse(bytes.NewReader(body))
}

func findOne(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findOne(c, pred); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	if n == nil {
		return out
	}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func byTag(name string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == name }
}

func byID(id string) func(*html.Node) bool {
	return byAttr("id", id)
}

func byAttr(key, val string) func(*html.Node) bool {
	return func(n *html.Node) bool { return attr(n, key) == val }
}

func byClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool { return hasClass(n, class) }
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// text returns the node's visible text with whitespace runs collapsed,
// the usual form for labels and cell values.
func text(n *html.Node) string {
	return strings.Join(strings.Fields(rawText(n)), " ")
}

// rawText concatenates the node's text verbatim. Needed where the markup is
// load-bearing: the topo-page title separates its parts with a no-break
// space that collapsing would destroy.
func rawText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
