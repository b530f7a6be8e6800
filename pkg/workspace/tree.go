package workspace

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/webpen/webpen-cli/pkg/models"
)

// Tree is the in-memory workspace: an ordered forest of owned file and
// folder nodes. Every node is owned by exactly one parent container; the
// root list is owned by the session. Operations validate before they
// mutate, so a failed call never leaves a partial change behind.
type Tree struct {
	Roots []*models.FileNode
}

// New returns an empty workspace tree.
func New() *Tree {
	return &Tree{}
}

// Find returns the first node with the given id in depth-first order,
// or nil when no node matches.
func (t *Tree) Find(id string) *models.FileNode {
	return findNode(t.Roots, id)
}

func findNode(nodes []*models.FileNode, id string) *models.FileNode {
	for _, n := range nodes {
		if n.ID == id {
			return n
		}
		if found := findNode(n.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// FindParent returns the folder that owns the node with the given id.
// A nil parent with found=true means the node sits at the root level.
func (t *Tree) FindParent(id string) (parent *models.FileNode, found bool) {
	for _, n := range t.Roots {
		if n.ID == id {
			return nil, true
		}
	}
	return findParent(t.Roots, id)
}

func findParent(nodes []*models.FileNode, id string) (*models.FileNode, bool) {
	for _, n := range nodes {
		for _, c := range n.Children {
			if c.ID == id {
				return n, true
			}
		}
		if p, ok := findParent(n.Children, id); ok {
			return p, true
		}
	}
	return nil, false
}

// Update applies mutate to the node with the given id. File metadata is
// refreshed afterwards. Returns ErrNodeNotFound when no node matches.
func (t *Tree) Update(id string, mutate func(*models.FileNode)) error {
	node := t.Find(id)
	if node == nil {
		return fmt.Errorf("update %s: %w", id, ErrNodeNotFound)
	}
	mutate(node)
	node.Touch()
	return nil
}

// Delete removes the node with the given id from wherever it appears,
// along with everything it owns. Returns false when no node matches.
func (t *Tree) Delete(id string) bool {
	_, ok := removeNode(&t.Roots, id)
	return ok
}

func removeNode(nodes *[]*models.FileNode, id string) (*models.FileNode, bool) {
	for i, n := range *nodes {
		if n.ID == id {
			*nodes = append((*nodes)[:i], (*nodes)[i+1:]...)
			return n, true
		}
		if removed, ok := removeNode(&n.Children, id); ok {
			return removed, true
		}
	}
	return nil, false
}

// Create adds a new file under the folder with parentID, or at the root
// level when parentID is empty. The name is validated and checked against
// the target container's existing children before anything is inserted.
func (t *Tree) Create(name, parentID, content string) (*models.FileNode, error) {
	node := &models.FileNode{
		ID:           uuid.NewString(),
		Name:         name,
		Kind:         models.KindFile,
		Content:      content,
		Size:         len(content),
		LastModified: time.Now(),
	}
	if err := t.insert(node, parentID); err != nil {
		return nil, err
	}
	return node, nil
}

// CreateFolder adds a new empty folder, with the same placement and
// validation rules as Create.
func (t *Tree) CreateFolder(name, parentID string) (*models.FileNode, error) {
	node := &models.FileNode{
		ID:   uuid.NewString(),
		Name: name,
		Kind: models.KindFolder,
	}
	if err := t.insert(node, parentID); err != nil {
		return nil, err
	}
	return node, nil
}

func (t *Tree) insert(node *models.FileNode, parentID string) error {
	if err := ValidateName(node.Name); err != nil {
		return err
	}

	container := &t.Roots
	if parentID != "" {
		parent := t.Find(parentID)
		if parent == nil {
			return fmt.Errorf("create under %s: %w", parentID, ErrNodeNotFound)
		}
		if !parent.IsFolder() {
			return fmt.Errorf("create under %s: %w", parent.Name, ErrNotAFolder)
		}
		container = &parent.Children
	}

	if err := validateSibling(*container, node.Name, node.ID); err != nil {
		return err
	}

	*container = append(*container, node)
	return nil
}

// Rename changes a node's name, running the same validation as Create but
// allowing the node to keep its current name.
func (t *Tree) Rename(id, newName string) error {
	node := t.Find(id)
	if node == nil {
		return fmt.Errorf("rename %s: %w", id, ErrNodeNotFound)
	}
	if err := ValidateName(newName); err != nil {
		return err
	}

	siblings := t.Roots
	if parent, ok := t.FindParent(id); ok && parent != nil {
		siblings = parent.Children
	}
	if err := validateSibling(siblings, newName, id); err != nil {
		return err
	}

	node.Name = newName
	node.Touch()
	return nil
}

// Walk visits every node depth-first in display order. Returning false
// from fn skips the node's children.
func (t *Tree) Walk(fn func(node *models.FileNode, depth int) bool) {
	walkNodes(t.Roots, 0, fn)
}

func walkNodes(nodes []*models.FileNode, depth int, fn func(*models.FileNode, int) bool) {
	for _, n := range nodes {
		if fn(n, depth) {
			walkNodes(n.Children, depth+1, fn)
		}
	}
}

// Len returns the total number of nodes in the tree.
func (t *Tree) Len() int {
	count := 0
	t.Walk(func(*models.FileNode, int) bool {
		count++
		return true
	})
	return count
}
