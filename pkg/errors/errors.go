package errors

import (
	"fmt"
	"strings"
)

// SceneError represents a failure to read or decode a scene file, with
// optional line metadata.
type SceneError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewSceneError constructs a SceneError.
func NewSceneError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &SceneError{Path: path, Line: line, Message: message, Err: err}
}

func (e *SceneError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("scene error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("scene error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *SceneError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures scene validation issues.
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

// PresetError reports a request for a theme preset that does not exist.
type PresetError struct {
	Name  string
	Known []string
}

// NewPresetError constructs a PresetError listing the known presets.
func NewPresetError(name string, known []string) error {
	return &PresetError{Name: name, Known: known}
}

func (e *PresetError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown preset %q", e.Name)
	}
	return fmt.Sprintf("unknown preset %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// PropsError indicates a malformed component props assignment such as a
// --set flag value.
type PropsError struct {
	Input   string
	Message string
	Err     error
}

// NewPropsError constructs a PropsError for the given input.
func NewPropsError(input, message string, err error) error {
	return &PropsError{Input: input, Message: message, Err: err}
}

func (e *PropsError) Error() string {
	if e == nil {
		return ""
	}
	if e.Input != "" {
		return fmt.Sprintf("props error [%s]: %s", e.Input, e.Message)
	}
	return fmt.Sprintf("props error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *PropsError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
