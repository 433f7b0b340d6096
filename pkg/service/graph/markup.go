package graph

import (
	"fmt"
	stdhtml "html"
	"net/url"
	"strings"

	"github.com/secmon-lab/ocelot/pkg/domain/model"
	"golang.org/x/net/html"
)

// ExtractImageSources returns every <img src> reference in the markup in
// document order. The backend may double-encode entity references, so the
// markup is entity-decoded before parsing. The result is a finite slice,
// empty when the markup contains no images; parsing is lenient so malformed
// markup never fails, it just yields whatever images are recognizable.
func ExtractImageSources(markup string) []string {
	doc, err := html.Parse(strings.NewReader(stdhtml.UnescapeString(markup)))
	if err != nil {
		return nil
	}

	var srcs []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			for _, attr := range n.Attr {
				if attr.Key == "src" && attr.Val != "" {
					srcs = append(srcs, attr.Val)
					break
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return srcs
}

// NormalizeSource converts a markup image reference into a fetchable
// absolute URL. Already-absolute references pass through unchanged, which
// makes normalization idempotent. Relative references follow the backend
// convention of root-relative paths for self-hosted content: the leading
// path marker is stripped and the rest is resolved under the message's own
// resource URL.
func NormalizeSource(src string, ref model.MessageRef, base *url.URL) string {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src
	}

	return fmt.Sprintf("%s/%s", messageURL(base, ref), strings.TrimLeft(src, "./"))
}
