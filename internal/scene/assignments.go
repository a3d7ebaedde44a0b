package scene

import (
	"strings"

	"gopkg.in/yaml.v3"

	themeerrors "github.com/alexisbeaulieu97/slottheme/pkg/errors"
)

// ParseAssignments turns key=value pairs into a props map. Values are read
// as YAML scalars, so "true" is a bool and "3" an int.
func ParseAssignments(pairs []string) (map[string]any, error) {
	props := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, themeerrors.NewPropsError(pair, "expected key=value", nil)
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, themeerrors.NewPropsError(pair, "invalid value", err)
		}
		if value == nil {
			value = raw
		}
		props[key] = value
	}
	return props, nil
}

// Single returns a scene holding one component.
func Single(kind, text string, props map[string]any) *Scene {
	return &Scene{
		Name:       kind,
		Components: []Node{{Kind: kind, Text: text, Props: props}},
	}
}
