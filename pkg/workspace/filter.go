package workspace

import (
	"strings"

	"github.com/webpen/webpen-cli/pkg/models"
)

// Filter returns a new tree containing only the nodes whose name matches,
// or that contain a matching descendant. Matching folders keep only their
// matching subtree; folders with no matching name and no matching
// descendant are dropped. The result is an independent copy, so mutating
// it never affects the source tree.
func (t *Tree) Filter(match func(name string) bool) *Tree {
	filtered := &Tree{}
	for _, n := range t.Roots {
		if kept := filterNode(n, match); kept != nil {
			filtered.Roots = append(filtered.Roots, kept)
		}
	}
	return filtered
}

func filterNode(n *models.FileNode, match func(string) bool) *models.FileNode {
	if !n.IsFolder() {
		if match(n.Name) {
			clone := *n
			return &clone
		}
		return nil
	}

	var kept []*models.FileNode
	for _, c := range n.Children {
		if k := filterNode(c, match); k != nil {
			kept = append(kept, k)
		}
	}
	if len(kept) == 0 && !match(n.Name) {
		return nil
	}

	clone := *n
	clone.Children = kept
	return &clone
}

// NameContains builds a case-insensitive substring predicate for Filter.
func NameContains(query string) func(string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(name string) bool {
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(name), q)
	}
}
