package navigation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a slug is not declared anywhere in the tree.
	ErrNotFound = errors.New("navigation entry not found")

	// ErrInvalidDeclaration matches any ValidationErrors returned by Build.
	ErrInvalidDeclaration = errors.New("invalid navigation declaration")
)

// Error describes a failed tree operation.
type Error struct {
	Op  string // Operation that failed (e.g., "FindBySlug")
	Err error  // Underlying error
	Msg string // Additional context
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ValidationError represents a single violation found in a declaration.
type ValidationError struct {
	// Path locates the offending node, e.g. "sidebar[0].items[1].slug".
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is every violation found in a declaration, in the order
// the depth-first traversal encountered them.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	messages := make([]string, 0, len(e))
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// Is reports whether target is ErrInvalidDeclaration.
func (e ValidationErrors) Is(target error) bool {
	return target == ErrInvalidDeclaration
}
