package theme

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buttonTheme() Theme {
	return Theme{
		Components: map[string]ComponentTheme{
			"Button": {
				Styles: Slots{
					"root": Static(StyleObject{"padding": 10, "backgroundColor": "blue"}),
				},
			},
		},
	}
}

func TestExtendMergesNewComponents(t *testing.T) {
	base := Theme{Components: map[string]ComponentTheme{"BaseComp": {Styles: Slots{}}}}
	custom := Extend(base, Theme{Components: map[string]ComponentTheme{
		"Custom": {Styles: Slots{"label": Static(StyleObject{"color": "red"})}},
	}})

	assert.Contains(t, custom.Components, "Custom")
	assert.Contains(t, custom.Components, "BaseComp")
}

func TestExtendDeepMergesComponentStyles(t *testing.T) {
	override := Theme{Components: map[string]ComponentTheme{
		"Button": {Styles: Slots{"root": Static(StyleObject{"backgroundColor": "red", "margin": 5})}},
	}}

	merged := Extend(buttonTheme(), override)
	root, ok := merged.Components["Button"].Styles["root"].StaticValue()
	require.True(t, ok)

	assert.Equal(t, 10, root["padding"], "base value preserved")
	assert.Equal(t, 5, root["margin"], "override value added")
	assert.Equal(t, "red", root["backgroundColor"], "override value wins")
}

func TestExtendWithEmptyOverrideCopies(t *testing.T) {
	base := buttonTheme()
	merged := Extend(base, Theme{})

	assert.Equal(t, base, merged)

	baseRoot, _ := base.Components["Button"].Styles["root"].StaticValue()
	mergedRoot, _ := merged.Components["Button"].Styles["root"].StaticValue()
	assert.NotEqual(t, reflect.ValueOf(base.Components).Pointer(), reflect.ValueOf(merged.Components).Pointer())
	assert.NotEqual(t, reflect.ValueOf(baseRoot).Pointer(), reflect.ValueOf(mergedRoot).Pointer())
}

func TestExtendDoesNotMutateInputs(t *testing.T) {
	base := Theme{Components: map[string]ComponentTheme{"A": {}}}
	next := Theme{Components: map[string]ComponentTheme{"B": {}}}

	merged := Extend(base, next)

	assert.Len(t, merged.Components, 2)
	assert.NotContains(t, base.Components, "B")
	assert.NotContains(t, next.Components, "A")
}

func TestMergeComponentNestedNonMutation(t *testing.T) {
	base := ComponentTheme{
		Styles: Slots{"root": Static(StyleObject{
			"border": map[string]any{"style": "rounded", "color": "red"},
			"margin": []any{1, 2},
		})},
		Config: StaticConfig(map[string]any{"size": "md", "icons": map[string]any{"ok": "v"}}),
	}
	override := ComponentTheme{
		Styles: Slots{"root": Static(StyleObject{
			"border": map[string]any{"color": "green"},
			"margin": []any{3},
		})},
		Config: StaticConfig(map[string]any{"icons": map[string]any{"fail": "x"}}),
	}

	baseRoot, _ := base.Styles["root"].StaticValue()
	overrideRoot, _ := override.Styles["root"].StaticValue()
	baseSnapshot := Extend(Theme{Components: map[string]ComponentTheme{"X": base}}, Theme{})
	overrideSnapshot := Extend(Theme{Components: map[string]ComponentTheme{"X": override}}, Theme{})

	merged := MergeComponent(base, override)
	root, ok := merged.Styles["root"].StaticValue()
	require.True(t, ok)

	assert.Equal(t, map[string]any{"style": "rounded", "color": "green"}, root["border"])
	assert.Equal(t, []any{3}, root["margin"], "slices are replaced, not merged")
	assert.Equal(t, map[string]any{
		"size":  "md",
		"icons": map[string]any{"ok": "v", "fail": "x"},
	}, merged.Config.Eval(nil))

	assert.Equal(t, baseSnapshot.Components["X"], base)
	assert.Equal(t, overrideSnapshot.Components["X"], override)
	assert.Equal(t, map[string]any{"style": "rounded", "color": "red"}, baseRoot["border"])
	assert.Equal(t, map[string]any{"color": "green"}, overrideRoot["border"])

	root["border"].(map[string]any)["color"] = "purple"
	assert.Equal(t, "green", overrideRoot["border"].(map[string]any)["color"], "result must not alias the override")

	t.Run("typed slice of style objects", func(t *testing.T) {
		layers := []StyleObject{{"color": "a"}}
		base := ComponentTheme{Styles: Slots{"root": Static(StyleObject{"layers": layers})}}
		override := ComponentTheme{Styles: Slots{"root": Static(StyleObject{"bold": true})}}

		merged := MergeComponent(base, override)
		root, _ := merged.Styles["root"].StaticValue()
		root["layers"].([]StyleObject)[0]["color"] = "changed"

		assert.Equal(t, "a", layers[0]["color"])
	})

	t.Run("typed nested map", func(t *testing.T) {
		states := map[string]map[string]any{"hover": {"color": "blue"}}
		base := ComponentTheme{Styles: Slots{"root": Static(StyleObject{"padding": 1})}}
		override := ComponentTheme{Styles: Slots{"root": Static(StyleObject{"states": states})}}

		merged := MergeComponent(base, override)
		root, _ := merged.Styles["root"].StaticValue()
		root["states"].(map[string]map[string]any)["hover"]["color"] = "changed"

		assert.Equal(t, "blue", states["hover"]["color"])
	})
}

func TestMergeKeepsBaseMapType(t *testing.T) {
	base := ComponentTheme{Styles: Slots{"root": Static(StyleObject{
		"border": map[string]any{"style": "rounded"},
		"hover":  StyleObject{"color": "blue"},
	})}}
	override := ComponentTheme{Styles: Slots{"root": Static(StyleObject{
		"border": StyleObject{"color": "green"},
		"hover":  map[string]any{"bold": true},
	})}}

	root, _ := MergeComponent(base, override).Styles["root"].StaticValue()

	assert.Equal(t, map[string]any{"style": "rounded", "color": "green"}, root["border"])
	assert.IsType(t, map[string]any{}, root["border"])
	assert.Equal(t, StyleObject{"color": "blue", "bold": true}, root["hover"])
	assert.IsType(t, StyleObject{}, root["hover"])
}

func TestMergeComponentFunctionOverrideReplaces(t *testing.T) {
	base := ComponentTheme{Styles: Slots{"root": Computed(func(any) StyleObject {
		return StyleObject{"color": "blue"}
	})}}
	override := ComponentTheme{Styles: Slots{"root": Computed(func(any) StyleObject {
		return StyleObject{"color": "red"}
	})}}

	merged := MergeComponent(base, override)

	require.True(t, merged.Styles["root"].IsComputed())
	assert.Equal(t, StyleObject{"color": "red"}, merged.Styles["root"].Eval(nil))
}

func TestMergeComponentStaticOverComputed(t *testing.T) {
	base := ComponentTheme{Styles: Slots{"root": Computed(func(any) StyleObject {
		return StyleObject{"color": "blue", "bold": true}
	})}}
	override := ComponentTheme{Styles: Slots{"root": Static(StyleObject{"color": "red"})}}

	merged := MergeComponent(base, override)

	assert.False(t, merged.Styles["root"].IsComputed())
	assert.Equal(t, StyleObject{"color": "red"}, merged.Styles["root"].Eval(nil))
}

func TestMergeComponentComputedConfigWins(t *testing.T) {
	base := ComponentTheme{Config: StaticConfig(map[string]any{"size": "md"})}
	override := ComponentTheme{Config: ComputedConfig(func(props any) map[string]any {
		return map[string]any{"size": props}
	})}

	merged := MergeComponent(base, override)

	require.True(t, merged.Config.IsComputed())
	assert.Equal(t, map[string]any{"size": "lg"}, merged.Config.Eval("lg"))
}

func TestMergeComponentAbsentOverrideKeepsBase(t *testing.T) {
	base := ComponentTheme{
		Styles: Slots{"root": Static(StyleObject{"padding": 1})},
		Config: StaticConfig(map[string]any{"char": "-"}),
	}

	merged := MergeComponent(base, ComponentTheme{Styles: Slots{"root": {}}})

	assert.Equal(t, StyleObject{"padding": 1}, merged.Styles["root"].Eval(nil))
	assert.Equal(t, map[string]any{"char": "-"}, merged.Config.Eval(nil))
}

func TestMergeComponentNilOverrideValueWins(t *testing.T) {
	base := ComponentTheme{Styles: Slots{"root": Static(StyleObject{"color": "red"})}}
	override := ComponentTheme{Styles: Slots{"root": Static(StyleObject{"color": nil})}}

	merged := MergeComponent(base, override)

	root := merged.Styles["root"].Eval(nil)
	assert.Contains(t, root, "color")
	assert.Nil(t, root["color"])
}

func TestMergePrecedenceTable(t *testing.T) {
	tests := []struct {
		name     string
		base     StyleObject
		override StyleObject
		want     StyleObject
	}{
		{
			name:     "override wins on shared key",
			base:     StyleObject{"color": "a"},
			override: StyleObject{"color": "b"},
			want:     StyleObject{"color": "b"},
		},
		{
			name:     "base only key kept",
			base:     StyleObject{"color": "a", "bold": true},
			override: StyleObject{"color": "b"},
			want:     StyleObject{"color": "b", "bold": true},
		},
		{
			name:     "nested style objects merge",
			base:     StyleObject{"hover": StyleObject{"color": "a", "bold": true}},
			override: StyleObject{"hover": StyleObject{"color": "b"}},
			want:     StyleObject{"hover": StyleObject{"color": "b", "bold": true}},
		},
		{
			name:     "map replaces scalar",
			base:     StyleObject{"border": "none"},
			override: StyleObject{"border": map[string]any{"style": "rounded"}},
			want:     StyleObject{"border": map[string]any{"style": "rounded"}},
		},
		{
			name:     "typed slice replaced",
			base:     StyleObject{"padding": []int{1, 2}},
			override: StyleObject{"padding": []int{0}},
			want:     StyleObject{"padding": []int{0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := MergeComponent(
				ComponentTheme{Styles: Slots{"root": Static(tt.base)}},
				ComponentTheme{Styles: Slots{"root": Static(tt.override)}},
			)
			assert.Equal(t, tt.want, merged.Styles["root"].Eval(nil))
		})
	}
}
