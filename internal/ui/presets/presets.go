// Package presets bundles named application themes. Every preset is a
// partial theme: it overrides only the components and slots it restyles
// and leaves the rest to the component defaults.
package presets

import (
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/slottheme/internal/ui/components"
	"github.com/alexisbeaulieu97/slottheme/internal/ui/palette"
	themeerrors "github.com/alexisbeaulieu97/slottheme/pkg/errors"
	"github.com/alexisbeaulieu97/slottheme/pkg/theme"
)

// Default is the name of the preset that changes nothing.
const Default = "default"

var (
	registryOnce sync.Once
	registry     map[string]*theme.Theme
)

// Each preset is built once so repeated lookups return the same theme
// value; component caches key on that identity.
func presets() map[string]*theme.Theme {
	registryOnce.Do(func() {
		empty := theme.Empty()
		dark := darkTheme()
		highContrast := theme.Extend(dark, contrastOverrides())
		compact := compactTheme()

		registry = map[string]*theme.Theme{
			Default:         &empty,
			"dark":          &dark,
			"high-contrast": &highContrast,
			"compact":       &compact,
		}
	})
	return registry
}

// Names lists the registered presets in sorted order.
func Names() []string {
	all := presets()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the preset registered under name. An empty name selects
// the default preset. The returned theme is shared and must not be
// modified; use theme.Extend to derive a new one.
func Lookup(name string) (*theme.Theme, error) {
	if name == "" {
		name = Default
	}
	t, ok := presets()[name]
	if !ok {
		return nil, themeerrors.NewPresetError(name, Names())
	}
	return t, nil
}

// MustLookup is Lookup for names known to exist. It panics otherwise.
func MustLookup(name string) *theme.Theme {
	t, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return t
}

func darkTheme() theme.Theme {
	p := palette.Dark()
	return theme.Theme{Components: map[string]theme.ComponentTheme{
		components.ButtonName: {
			Styles: theme.Slots{"root": components.ButtonRootStyle(p)},
		},
		components.BadgeName: {
			Styles: theme.Slots{"root": components.BadgeRootStyle(p)},
		},
		components.AlertName: {
			Styles: theme.Slots{"root": components.AlertRootStyle(p)},
		},
		components.CardName: {
			Styles: theme.Slots{
				"root":  theme.Static(theme.StyleObject{"borderColor": p.Neutral.Base}),
				"title": theme.Static(theme.StyleObject{"color": p.Surface.OnBase}),
			},
		},
		components.BoxName: {
			Styles: theme.Slots{
				"root": theme.Static(theme.StyleObject{"borderColor": p.Neutral.Base}),
			},
		},
		components.DividerName: {
			Styles: theme.Slots{
				"root": theme.Static(theme.StyleObject{"color": p.Neutral.Base}),
			},
		},
	}}
}

func contrastOverrides() theme.Theme {
	p := palette.HighContrast()
	return theme.Theme{Components: map[string]theme.ComponentTheme{
		components.ButtonName: {
			Styles: theme.Slots{
				"root":  components.ButtonRootStyle(p),
				"label": theme.Static(theme.StyleObject{"bold": true}),
			},
			Config: theme.StaticConfig(map[string]any{"focusMarker": "▶"}),
		},
		components.BadgeName: {
			Styles: theme.Slots{"root": components.BadgeRootStyle(p)},
		},
		components.CardName: {
			Styles: theme.Slots{
				"root":  theme.Static(theme.StyleObject{"borderStyle": "thick", "borderColor": p.Neutral.Muted}),
				"title": theme.Static(theme.StyleObject{"underline": true}),
			},
		},
		components.DividerName: {
			Config: theme.StaticConfig(map[string]any{"char": "━"}),
		},
	}}
}

func compactTheme() theme.Theme {
	return theme.Theme{Components: map[string]theme.ComponentTheme{
		components.CardName: {
			Styles: theme.Slots{"root": theme.Static(theme.StyleObject{"padding": 0})},
		},
		components.BoxName: {
			Styles: theme.Slots{"root": theme.Static(theme.StyleObject{"paddingX": 0})},
		},
		components.AlertName: {
			Styles: theme.Slots{"message": theme.Static(theme.StyleObject{"italic": true})},
		},
		components.ButtonName: {
			Config: theme.StaticConfig(map[string]any{"focusMarker": ">"}),
		},
		components.DividerName: {
			Config: theme.StaticConfig(map[string]any{"width": 20}),
		},
	}}
}
