package presets

import (
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/slottheme/internal/ui/components"
	"github.com/alexisbeaulieu97/slottheme/pkg/theme"
)

type componentSnapshot struct {
	Styles map[string]theme.StyleObject `yaml:"styles"`
	Config map[string]any               `yaml:"config,omitempty"`
}

// Snapshot resolves every component against t with the given props and
// encodes the result as YAML. Components appear in name order and map keys
// are sorted, so snapshots of two themes can be compared line by line.
// props is keyed by component name; missing entries resolve with nil props.
func Snapshot(t *theme.Theme, props map[string]any) ([]byte, error) {
	ambient := theme.Empty()
	if t != nil {
		ambient = t.Normalize()
	}

	snapshot := make(map[string]componentSnapshot, len(components.Names()))
	for _, name := range components.Names() {
		defaults, _ := components.Defaults(name)
		p := props[name]

		merged := defaults
		if override, ok := ambient.Components[name]; ok {
			merged = theme.MergeComponent(defaults, override)
		}
		resolved := theme.Resolve(merged, p)

		snapshot[name] = componentSnapshot{
			Styles: resolved.Styles,
			Config: resolved.Config.Eval(p),
		}
	}
	return yaml.Marshal(snapshot)
}
