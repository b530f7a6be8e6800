package workspace

import (
	"errors"
	"fmt"
)

// Name validation errors
var (
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrNameTooLong    = errors.New("name cannot exceed 255 characters")
	ErrNameSeparator  = errors.New("name cannot contain path separators")
	ErrNameLeadingDot = errors.New("name cannot start with a dot")
	ErrDuplicateName  = errors.New("a sibling with this name already exists")
)

// Tree operation errors
var (
	ErrNodeNotFound = errors.New("node not found")
	ErrNotAFolder   = errors.New("parent is not a folder")
	ErrNotAFile     = errors.New("node is not a file")
)

// ValidationError reports a rejected name. The underlying reason is one of
// the name validation errors above and can be matched with errors.Is.
type ValidationError struct {
	Name string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid name %q: %v", e.Name, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// SizeLimitError reports an import that exceeds the allowed size.
type SizeLimitError struct {
	Name  string
	Size  int
	Limit int
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("%s is too large: %d bytes (limit %d)", e.Name, e.Size, e.Limit)
}
