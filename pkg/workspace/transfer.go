package workspace

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/webpen/webpen-cli/pkg/models"
)

// MaxImportSize caps imported file payloads at 1 MiB.
const MaxImportSize = 1 << 20

// ImportFile creates a new file node from raw uploaded bytes. Oversized
// payloads are rejected with a *SizeLimitError before any validation, so a
// bad file in a batch never disturbs the tree. The raw name is reduced to
// its base name and then held to the usual naming rules.
func (t *Tree) ImportFile(rawName string, raw []byte, parentID string) (*models.FileNode, error) {
	if len(raw) > MaxImportSize {
		return nil, &SizeLimitError{Name: rawName, Size: len(raw), Limit: MaxImportSize}
	}
	name := SanitizeName(rawName)
	return t.Create(name, parentID, string(raw))
}

// ExportFile returns the raw content of a file node for the surrounding
// UI or CLI to write out.
func ExportFile(node *models.FileNode) ([]byte, error) {
	if node == nil {
		return nil, ErrNodeNotFound
	}
	if node.IsFolder() {
		return nil, fmt.Errorf("export %s: %w", node.Name, ErrNotAFile)
	}
	return []byte(node.Content), nil
}

// SanitizeName strips any path component and surrounding whitespace from a
// raw file name. The result still has to pass ValidateName.
func SanitizeName(rawName string) string {
	name := filepath.Base(strings.TrimSpace(rawName))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}
