package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/slottheme/internal/scene"
	themeerrors "github.com/alexisbeaulieu97/slottheme/pkg/errors"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// suggestionFor picks a hint matching the typed error behind err.
func suggestionFor(err error) string {
	var (
		sceneErr      *themeerrors.SceneError
		validationErr *themeerrors.ValidationError
		presetErr     *themeerrors.PresetError
		propsErr      *themeerrors.PropsError
	)

	switch {
	case errors.As(err, &presetErr):
		return "Run 'slottheme presets' to list available presets"
	case errors.As(err, &propsErr):
		return "Pass props as key=value, for example --set variant=danger"
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Check %s; component kinds are %s", validationErr.Field, strings.Join(scene.Kinds(), ", "))
	case errors.As(err, &sceneErr):
		return "Check that the scene file exists and is valid YAML"
	default:
		return "Re-run with --verbose for details"
	}
}
