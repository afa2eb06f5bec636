package nav

import (
	"math"
	"regexp"
	"strings"

	"github.com/inful/sitepipe/internal/markup"
)

var pageAnchorRe = regexp.MustCompile(`<a\s+href="([^"]*)"\s+role="page"[^>]*>([^<]*)</a>`)
var anyAnchorRe = regexp.MustCompile(`<a\s+href="([^"]*)"[^>]*>([^<]*)</a>`)

// BuildTrees turns every top-level unordered list in doc into a Tree, per
// spec.md §4.9. navIndex is the navigation file's position among all
// navigation files contributing to the same (component, version) menu;
// subsequent lists within the same file get navIndex+k/N so their relative
// order among each other is stable without colliding with other files'
// navIndex values.
func BuildTrees(doc *markup.Document, navIndex int) []Tree {
	n := len(doc.Lists)
	if n == 0 {
		return nil
	}

	trees := make([]Tree, 0, n)
	for k, list := range doc.Lists {
		order := float64(navIndex)
		if k > 0 {
			order = roundTo4(float64(navIndex) + float64(k)/float64(n))
		}
		root := Item{Content: list.Title, Root: true}
		root.Items = buildItems(list.Items)
		trees = append(trees, Tree{Root: root, Order: order})
	}
	return trees
}

func buildItems(items []markup.ListItem) []Item {
	out := make([]Item, 0, len(items))
	for _, li := range items {
		item := Item{Content: li.Content}
		partitionAnchor(&item)
		item.Items = buildItems(li.Items)
		out = append(out, item)
	}
	return out
}

// partitionAnchor implements spec.md §4.9's inline-content partitioning: a
// role="page" anchor is internal (url + optional hash extracted from the
// fragment); any other anchor is a fragment link if its href starts with
// "#", otherwise external; content with no anchor at all carries just
// Content. Once an anchor is found, Content is replaced with the anchor's
// visible text — the href itself is already captured in URL/Hash, so
// keeping the surrounding markup around in Content would just duplicate it.
func partitionAnchor(item *Item) {
	if m := pageAnchorRe.FindStringSubmatch(item.Content); m != nil {
		href := m[1]
		item.URLType = URLTypeInternal
		item.Content = m[2]
		if idx := strings.IndexByte(href, '#'); idx != -1 {
			item.URL = href[:idx]
			item.Hash = href[idx+1:]
		} else {
			item.URL = href
		}
		return
	}

	if m := anyAnchorRe.FindStringSubmatch(item.Content); m != nil {
		href := m[1]
		item.Content = m[2]
		if strings.HasPrefix(href, "#") {
			item.URLType = URLTypeFragment
			item.Hash = strings.TrimPrefix(href, "#")
		} else {
			item.URLType = URLTypeExternal
			item.URL = href
		}
	}
}

func roundTo4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
