package markup

import (
	"regexp"
	"strings"
)

var (
	titleLineRe     = regexp.MustCompile(`^=\s+(.+?)\s*$`)
	attributeLineRe = regexp.MustCompile(`^:([A-Za-z0-9_\-!]+):\s*(.*)$`)
	blockTitleRe    = regexp.MustCompile(`^\.([^.\s].*)$`)
	bulletLineRe    = regexp.MustCompile(`^(\*+)\s+(.*)$`)
)

// ParseDocument extracts the structural subset of body that the navigation
// builder and composer need: the document title, every attribute entry
// (unfiltered — callers strip and select the page-* subset they want), and
// every top-level unordered list.
func ParseDocument(body []byte) *Document {
	lines := strings.Split(string(body), "\n")
	doc := &Document{Attributes: make(map[string]string)}

	titleSeen := false
	pendingBlockTitle := ""

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if !titleSeen {
			if m := titleLineRe.FindStringSubmatch(line); m != nil {
				doc.Title = m[1]
				titleSeen = true
				continue
			}
		}

		if m := attributeLineRe.FindStringSubmatch(line); m != nil {
			doc.Attributes[m[1]] = strings.TrimSpace(m[2])
			pendingBlockTitle = ""
			continue
		}

		if m := blockTitleRe.FindStringSubmatch(line); m != nil {
			pendingBlockTitle = m[1]
			continue
		}

		if bulletLineRe.MatchString(line) {
			list, consumed := parseList(lines[i:], pendingBlockTitle)
			doc.Lists = append(doc.Lists, list)
			i += consumed - 1
			pendingBlockTitle = ""
			continue
		}

		if strings.TrimSpace(line) != "" {
			pendingBlockTitle = ""
		}
	}

	return doc
}

// parseList consumes a contiguous run of bullet lines starting at lines[0]
// and returns the resulting tree plus how many lines it consumed.
func parseList(lines []string, title string) (ListBlock, int) {
	type frame struct {
		depth int
		items *[]ListItem
	}

	block := ListBlock{Title: title}
	stack := []frame{{depth: 0, items: &block.Items}}

	consumed := 0
	for _, line := range lines {
		m := bulletLineRe.FindStringSubmatch(line)
		if m == nil {
			if strings.TrimSpace(line) == "" {
				consumed++
				continue
			}
			break
		}
		depth := len(m[1])
		content := strings.TrimSpace(m[2])

		for len(stack) > 1 && stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}

		parent := stack[len(stack)-1]
		*parent.items = append(*parent.items, ListItem{Content: content})
		newItem := &(*parent.items)[len(*parent.items)-1]
		stack = append(stack, frame{depth: depth, items: &newItem.Items})

		consumed++
	}

	return block, consumed
}
