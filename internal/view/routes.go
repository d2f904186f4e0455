// Package view holds the per-page state of the site: the detail view's
// language tab, the sidebar's search term, and the chrome derived from the
// current path (breadcrumbs, theme, SEO metadata).
package view

import (
	"net/url"
	"strings"
)

// HomePath is the listing page.
const HomePath = "/"

const detailPrefix = "/animation/"

// DetailPath returns the route of a recipe's detail page.
func DetailPath(id string) string {
	return detailPrefix + url.PathEscape(id)
}

// CurrentID extracts the recipe id from a detail path.
func CurrentID(path string) (string, bool) {
	rest, ok := strings.CutPrefix(path, detailPrefix)
	if !ok || rest == "" {
		return "", false
	}
	// Sub-resources such as /animation/{id}/download belong to the same recipe.
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	id, err := url.PathUnescape(rest)
	if err != nil || id == "" {
		return "", false
	}
	return id, true
}

// VideoPath is the conventional location of a recipe's preview video.
func VideoPath(assetBase, id string) string {
	return strings.TrimSuffix(assetBase, "/") + "/videos/" + url.PathEscape(id) + ".mp4"
}
