// Package htmlutil holds the small amount of HTML processing the generation
// pipeline needs.
package htmlutil

import (
	"strings"

	"golang.org/x/net/html"
)

// FirstList returns the first <ul> element of the document, rendered back to
// HTML, or "" if the document contains none. Input that is not valid HTML is
// parsed leniently the way browsers do; a parse that yields no <ul> simply
// returns "".
func FirstList(doc string) string {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return ""
	}

	ul := findFirst(root, "ul")
	if ul == nil {
		return ""
	}

	var b strings.Builder
	if err := html.Render(&b, ul); err != nil {
		return ""
	}
	return b.String()
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}
