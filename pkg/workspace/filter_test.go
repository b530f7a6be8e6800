package workspace

import (
	"testing"

	"github.com/webpen/webpen-cli/pkg/models"
)

func buildFilterFixture(t *testing.T) *Tree {
	t.Helper()
	tree := New()
	src, _ := tree.CreateFolder("src", "")
	tree.Create("main.js", src.ID, "")
	tree.Create("style.css", src.ID, "")
	assets, _ := tree.CreateFolder("assets", "")
	tree.Create("logo.svg", assets.ID, "")
	tree.Create("index.html", "", "")
	return tree
}

func names(t *Tree) []string {
	var out []string
	t.Walk(func(n *models.FileNode, depth int) bool {
		out = append(out, n.Name)
		return true
	})
	return out
}

func TestFilterKeepsMatchingDescendants(t *testing.T) {
	tree := buildFilterFixture(t)

	filtered := tree.Filter(NameContains("js"))

	got := names(filtered)
	want := []string{"src", "main.js"}
	if len(got) != len(want) {
		t.Fatalf("filtered names = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("filtered names = %v; want %v", got, want)
		}
	}
}

func TestFilterDropsFoldersWithoutMatches(t *testing.T) {
	tree := buildFilterFixture(t)

	filtered := tree.Filter(NameContains("html"))

	got := names(filtered)
	if len(got) != 1 || got[0] != "index.html" {
		t.Fatalf("filtered names = %v; want [index.html]", got)
	}
}

func TestFilterMatchingFolderKeepsOnlyMatchingChildren(t *testing.T) {
	tree := buildFilterFixture(t)

	// "s" matches src, style.css, assets and logo.svg but not main.js.
	filtered := tree.Filter(NameContains("s"))

	for _, name := range names(filtered) {
		if name == "main.js" {
			t.Fatal("non-matching child survived inside a matching folder")
		}
		if name == "index.html" {
			t.Fatal("non-matching root file survived")
		}
	}
}

func TestFilterResultIsIndependent(t *testing.T) {
	tree := buildFilterFixture(t)
	filtered := tree.Filter(NameContains("main"))

	filtered.Walk(func(n *models.FileNode, depth int) bool {
		n.Name = "mutated"
		return true
	})

	for _, name := range names(tree) {
		if name == "mutated" {
			t.Fatal("mutating the filtered tree leaked into the source")
		}
	}
}

func TestFilterEmptyQueryKeepsEverything(t *testing.T) {
	tree := buildFilterFixture(t)
	filtered := tree.Filter(NameContains(""))

	if filtered.Len() != tree.Len() {
		t.Fatalf("empty query kept %d of %d nodes", filtered.Len(), tree.Len())
	}
}
