package models

import "time"

// NodeKind distinguishes files from folders in the workspace tree.
type NodeKind string

const (
	KindFile   NodeKind = "file"
	KindFolder NodeKind = "folder"
)

// FileNode is a single entry in the in-memory workspace tree.
// Files carry Content; folders carry Children. A node never has both.
type FileNode struct {
	ID           string
	Name         string
	Kind         NodeKind
	Content      string
	Children     []*FileNode
	Size         int
	LastModified time.Time
}

// IsFolder reports whether the node is a folder.
func (n *FileNode) IsFolder() bool {
	return n.Kind == KindFolder
}

// Touch refreshes the derived metadata of a file node after a content change.
func (n *FileNode) Touch() {
	if n.Kind != KindFile {
		return
	}
	n.Size = len(n.Content)
	n.LastModified = time.Now()
}
