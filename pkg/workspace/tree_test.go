package workspace

import (
	"errors"
	"strings"
	"testing"

	"github.com/webpen/webpen-cli/pkg/models"
)

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		wantErr  error
	}{
		{"valid name", "main.js", nil},
		{"empty name", "", ErrEmptyName},
		{"whitespace only", "   ", ErrEmptyName},
		{"path separator", "a/b.js", ErrNameSeparator},
		{"backslash separator", `a\b.js`, ErrNameSeparator},
		{"leading dot", ".env", ErrNameLeadingDot},
		{"too long", strings.Repeat("x", 256), ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New()
			_, err := tree.Create(tt.fileName, "", "")

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Create(%q) failed: %v", tt.fileName, err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create(%q) error = %v; want %v", tt.fileName, err, tt.wantErr)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Create(%q) error is not a *ValidationError: %v", tt.fileName, err)
			}
			if tree.Len() != 0 {
				t.Fatal("failed create must not mutate the tree")
			}
		})
	}
}

func TestCreateDuplicateSibling(t *testing.T) {
	tree := New()
	if _, err := tree.Create("a.js", "", ""); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := tree.Create("a.js", "", "")
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("duplicate create error = %v; want ErrDuplicateName", err)
	}

	// The same name is fine under a different parent.
	folder, err := tree.CreateFolder("src", "")
	if err != nil {
		t.Fatalf("create folder failed: %v", err)
	}
	if _, err := tree.Create("a.js", folder.ID, ""); err != nil {
		t.Fatalf("create under folder failed: %v", err)
	}
}

func TestCreateUnderFile(t *testing.T) {
	tree := New()
	file, _ := tree.Create("a.js", "", "")

	_, err := tree.Create("b.js", file.ID, "")
	if !errors.Is(err, ErrNotAFolder) {
		t.Fatalf("create under file error = %v; want ErrNotAFolder", err)
	}
}

func TestFindAndUpdate(t *testing.T) {
	tree := Seed()

	var fileID string
	tree.Walk(func(n *models.FileNode, depth int) bool {
		if n.Name == "script.js" {
			fileID = n.ID
		}
		return true
	})
	if fileID == "" {
		t.Fatal("seed workspace has no script.js")
	}

	if err := tree.Update(fileID, func(n *models.FileNode) {
		n.Content = "console.log('hi')"
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	node := tree.Find(fileID)
	if node.Content != "console.log('hi')" {
		t.Fatalf("content after update = %q", node.Content)
	}
	if node.Size != len(node.Content) {
		t.Fatalf("size not refreshed: %d", node.Size)
	}

	if err := tree.Update("no-such-id", func(*models.FileNode) {}); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("update of missing node = %v; want ErrNodeNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	tree := Seed()
	before := tree.Len()

	var folderID string
	tree.Walk(func(n *models.FileNode, depth int) bool {
		if n.Name == "docs" {
			folderID = n.ID
		}
		return true
	})

	if !tree.Delete(folderID) {
		t.Fatal("delete of existing folder reported false")
	}
	if tree.Find(folderID) != nil {
		t.Fatal("deleted folder still findable")
	}
	// docs owned one file, so two nodes are gone.
	if tree.Len() != before-2 {
		t.Fatalf("Len() after delete = %d; want %d", tree.Len(), before-2)
	}

	if tree.Delete("no-such-id") {
		t.Fatal("delete of missing node reported true")
	}
}

func TestRename(t *testing.T) {
	tree := New()
	a, _ := tree.Create("a.js", "", "")
	tree.Create("b.js", "", "")

	if err := tree.Rename(a.ID, "b.js"); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("rename onto sibling = %v; want ErrDuplicateName", err)
	}

	// Renaming to the current name is not a self-collision.
	if err := tree.Rename(a.ID, "a.js"); err != nil {
		t.Fatalf("rename to own name failed: %v", err)
	}

	if err := tree.Rename(a.ID, "c.js"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if tree.Find(a.ID).Name != "c.js" {
		t.Fatal("rename did not stick")
	}

	if err := tree.Rename(a.ID, ".hidden"); !errors.Is(err, ErrNameLeadingDot) {
		t.Fatalf("rename to dotfile = %v; want ErrNameLeadingDot", err)
	}
}

func TestIDsStayUniqueAcrossOperations(t *testing.T) {
	tree := Seed()

	folder, _ := tree.CreateFolder("lib", "")
	tree.Create("util.js", folder.ID, "")
	tree.Create("extra.css", "", "body{}")
	tree.Update(folder.ID, func(n *models.FileNode) { n.Name = "lib" })

	var firstFile string
	tree.Walk(func(n *models.FileNode, depth int) bool {
		if firstFile == "" && n.Kind == models.KindFile {
			firstFile = n.ID
		}
		return true
	})
	tree.Delete(firstFile)

	seen := map[string]bool{}
	tree.Walk(func(n *models.FileNode, depth int) bool {
		if seen[n.ID] {
			t.Fatalf("duplicate id %s", n.ID)
		}
		seen[n.ID] = true
		return true
	})
}

func TestNextSelection(t *testing.T) {
	tree := New()
	a, _ := tree.Create("a.js", "", "")
	b, _ := tree.Create("b.js", "", "")

	if got := tree.NextSelection(a.ID); got != b.ID {
		t.Fatalf("NextSelection = %s; want first remaining sibling %s", got, b.ID)
	}

	tree.Delete(b.ID)
	if got := tree.NextSelection(a.ID); got != "" {
		t.Fatalf("NextSelection with no siblings = %q; want empty", got)
	}

	if got := tree.NextSelection("no-such-id"); got != "" {
		t.Fatalf("NextSelection of missing node = %q; want empty", got)
	}
}
