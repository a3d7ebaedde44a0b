package theme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUseComponentThemeWithoutOverride(t *testing.T) {
	defaults := ComponentTheme{Styles: Slots{
		"root": Static(StyleObject{"padding": 10, "backgroundColor": "blue"}),
	}}

	resolved := UseComponentTheme(context.Background(), "Button", defaults, nil)

	assert.Equal(t, StyleObject{"padding": 10, "backgroundColor": "blue"}, resolved.Styles["root"])
}

func TestUseComponentThemeMergesOverride(t *testing.T) {
	defaults := ComponentTheme{Styles: Slots{
		"root": Static(StyleObject{"padding": 10, "backgroundColor": "blue"}),
	}}
	ctx := WithTheme(context.Background(), &Theme{Components: map[string]ComponentTheme{
		"Button": {Styles: Slots{"root": Static(StyleObject{"backgroundColor": "red", "margin": 5})}},
	}})

	resolved := UseComponentTheme(ctx, "Button", defaults, nil)

	assert.Equal(t, StyleObject{"padding": 10, "backgroundColor": "red", "margin": 5}, resolved.Styles["root"])
}

func TestUseComponentThemeGlobalBeatsDefault(t *testing.T) {
	defaults := ComponentTheme{Styles: Slots{
		"root": Static(StyleObject{"borderColor": "red", "borderWidth": 1}),
	}}
	ctx := WithTheme(context.Background(), &Theme{Components: map[string]ComponentTheme{
		"Box": {Styles: Slots{"root": Static(StyleObject{"borderColor": "green"})}},
	}})

	resolved := UseComponentTheme(ctx, "Box", defaults, nil)

	assert.Equal(t, StyleObject{"borderColor": "green", "borderWidth": 1}, resolved.Styles["root"])
}

func TestUseComponentThemeResolvesOverrideFunctions(t *testing.T) {
	ctx := WithTheme(context.Background(), &Theme{Components: map[string]ComponentTheme{
		"Custom": {Styles: Slots{"label": Computed(func(any) StyleObject {
			return StyleObject{"color": "magenta"}
		})}},
	}})
	defaults := ComponentTheme{Styles: Slots{"label": Static(StyleObject{"color": "black"})}}

	resolved := UseComponentTheme(ctx, "Custom", defaults, map[string]any{})

	assert.Equal(t, "magenta", resolved.Slot("label")["color"])
}

func TestUseComponentThemeFastPathMatchesResolve(t *testing.T) {
	defaults := activeTheme()
	ctx := WithTheme(context.Background(), &Theme{Components: map[string]ComponentTheme{
		"Other": {Styles: Slots{"text": Static(StyleObject{"color": "red"})}},
	}})

	for _, props := range []activeProps{{Active: true}, {Active: false}} {
		assert.Equal(t, Resolve(defaults, props).Styles, UseComponentTheme(ctx, "Dynamic", defaults, props).Styles)
		assert.Equal(t,
			Resolve(MergeComponent(defaults, ComponentTheme{}), props).Styles,
			UseComponentTheme(ctx, "Dynamic", defaults, props).Styles,
		)
	}
}

func TestUseComponentThemeDynamicProps(t *testing.T) {
	ctx := WithTheme(context.Background(), &Theme{Components: map[string]ComponentTheme{
		"DynamicComp": {Styles: Slots{"text": ComputedFor(func(p map[string]any) StyleObject {
			if active, _ := p["active"].(bool); active {
				return StyleObject{"color": "lime"}
			}
			return StyleObject{"color": "gray"}
		})}},
	}})
	defaults := ComponentTheme{Styles: Slots{}}

	on := UseComponentTheme(ctx, "DynamicComp", defaults, map[string]any{"active": true})
	off := UseComponentTheme(ctx, "DynamicComp", defaults, map[string]any{"active": false})

	assert.Equal(t, "lime", on.Slot("text")["color"])
	assert.Equal(t, "gray", off.Slot("text")["color"])
}
