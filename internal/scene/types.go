// Package scene loads YAML descriptions of component trees and builds them
// into renderable components.
//
// A scene only describes component instances and their props. Themes come
// from the named presets and are never read from disk.
package scene

// Scene is the root of a scene file.
type Scene struct {
	Name       string `yaml:"name"`
	Preset     string `yaml:"preset" validate:"omitempty,preset_name"`
	Width      int    `yaml:"width" validate:"gte=0"`
	Components []Node `yaml:"components" validate:"required,min=1,dive"`
}

// Node describes one component instance.
type Node struct {
	Kind string `yaml:"kind" validate:"required,component_kind"`

	// Text is the content of Text, the label of Button and Badge, and the
	// message of Alert.
	Text   string `yaml:"text"`
	Title  string `yaml:"title"`
	Footer string `yaml:"footer"`

	// Preset is the theme a Provider node injects.
	Preset string `yaml:"preset" validate:"omitempty,preset_name"`

	Props    map[string]any `yaml:"props"`
	Children []Node         `yaml:"children" validate:"dive"`
}
