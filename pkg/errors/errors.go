package errors

import (
	"fmt"
)

// ParseError represents a failure to parse a color literal or a palette field.
type ParseError struct {
	Literal string
	Message string
	Err     error
}

// NewParseError constructs a ParseError for the given source literal.
func NewParseError(literal string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Literal: literal, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Literal != "" {
		return fmt.Sprintf("parse error: %q: %s", e.Literal, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or option validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StateError reports an operation invoked against an object in the wrong
// lifecycle state, such as projecting a palette that was never parsed or
// extracting a value from a slot that has already been projected.
type StateError struct {
	Op      string
	Message string
}

// NewStateError constructs a StateError for the given operation.
func NewStateError(op, message string) error {
	return &StateError{Op: op, Message: message}
}

func (e *StateError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("state error in %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("state error: %s", e.Message)
}

// NotFoundError reports a lookup of a palette, template, build, or slot
// that does not exist.
type NotFoundError struct {
	Kind string
	Name string
}

// NewNotFoundError constructs a NotFoundError for the given kind and name.
func NewNotFoundError(kind, name string) error {
	return &NotFoundError{Kind: kind, Name: name}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s not found: %q", e.Kind, e.Name)
}

// IOError represents a filesystem or cache store failure.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// NewIOError constructs an IOError for the given operation and path.
func NewIOError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}

func (e *IOError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
