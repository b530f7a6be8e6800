package workspace

import (
	"strings"

	"github.com/webpen/webpen-cli/pkg/models"
)

// MaxNameLength is the longest accepted node name.
const MaxNameLength = 255

// ValidateName checks a candidate node name. It returns a *ValidationError
// describing the first rule the name breaks, or nil when the name is valid.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return &ValidationError{Name: name, Err: ErrEmptyName}
	case len(name) > MaxNameLength:
		return &ValidationError{Name: name, Err: ErrNameTooLong}
	case strings.ContainsAny(name, `/\`):
		return &ValidationError{Name: name, Err: ErrNameSeparator}
	case strings.HasPrefix(name, "."):
		return &ValidationError{Name: name, Err: ErrNameLeadingDot}
	}
	return nil
}

// validateSibling rejects a name already used by another node in the same
// container. selfID exempts the node being renamed from colliding with itself.
func validateSibling(siblings []*models.FileNode, name, selfID string) error {
	for _, s := range siblings {
		if s.ID != selfID && s.Name == name {
			return &ValidationError{Name: name, Err: ErrDuplicateName}
		}
	}
	return nil
}
