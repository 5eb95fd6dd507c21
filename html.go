package sitegen

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractImageSources returns the src attribute of every <img> tag in the
// document, de-duplicated in first-seen order. The x/net/html parser is
// tolerant by construction, so malformed or self-closing tags never abort
// the scan.
func ExtractImageSources(htmlText string) []string {
	doc, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return nil
	}

	var sources []string
	seen := make(map[string]struct{})
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			for _, attr := range n.Attr {
				if attr.Key != "src" || attr.Val == "" {
					continue
				}
				if _, ok := seen[attr.Val]; ok {
					continue
				}
				seen[attr.Val] = struct{}{}
				sources = append(sources, attr.Val)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sources
}

// isLocalSource reports whether src refers to a file on disk rather than a
// remote URL or an inline data URI.
func isLocalSource(src string) bool {
	return !strings.Contains(src, "://") && !strings.HasPrefix(src, "data:")
}
