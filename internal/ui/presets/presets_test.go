package presets

import (
	"errors"
	"testing"

	"github.com/alexisbeaulieu97/slottheme/internal/ui/components"
	themeerrors "github.com/alexisbeaulieu97/slottheme/pkg/errors"
	"github.com/alexisbeaulieu97/slottheme/pkg/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"compact", "dark", "default", "high-contrast"}, Names())
}

func TestLookupReturnsSameTheme(t *testing.T) {
	first, err := Lookup("dark")
	require.NoError(t, err)
	second, err := Lookup("dark")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLookupEmptyNameIsDefault(t *testing.T) {
	t1, err := Lookup("")
	require.NoError(t, err)
	assert.Same(t, MustLookup(Default), t1)
	assert.Empty(t, t1.Components)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("neon")
	require.Error(t, err)

	var presetErr *themeerrors.PresetError
	require.True(t, errors.As(err, &presetErr))
	assert.Equal(t, "neon", presetErr.Name)
	assert.Equal(t, Names(), presetErr.Known)

	assert.Panics(t, func() { MustLookup("neon") })
}

func TestHighContrastExtendsDark(t *testing.T) {
	dark := MustLookup("dark")
	contrast := MustLookup("high-contrast")

	// Components only dark restyles are inherited.
	for _, name := range []string{components.AlertName, components.BoxName} {
		assert.Contains(t, contrast.Components, name)
	}

	// Static slots merge key by key.
	card := theme.Resolve(contrast.Components[components.CardName], nil)
	assert.Equal(t, "thick", card.Slot("root")["borderStyle"])
	assert.Equal(t, true, card.Slot("title")["underline"])
	assert.Contains(t, card.Slot("title"), "color")

	// Building high-contrast left dark untouched.
	darkCard := theme.Resolve(dark.Components[components.CardName], nil)
	assert.NotContains(t, darkCard.Slot("root"), "borderStyle")
	assert.NotContains(t, dark.Components[components.DividerName].Config.Eval(nil), "char")
}

func TestPresetsResolveAgainstComponentDefaults(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			preset := MustLookup(name)
			for _, component := range components.Names() {
				defaults, ok := components.Defaults(component)
				require.True(t, ok)

				resolved := theme.Resolve(theme.MergeComponent(defaults, preset.Components[component]), nil)
				assert.NotNil(t, resolved.Styles)
				for slot := range defaults.Styles {
					assert.Contains(t, resolved.Styles, slot)
				}
			}
		})
	}
}

func TestCompactKeepsDefaultBorder(t *testing.T) {
	compact := MustLookup("compact")
	merged := theme.MergeComponent(components.BoxDefaults, compact.Components[components.BoxName])
	root := theme.Resolve(merged, nil).Slot("root")

	assert.Equal(t, "rounded", root["borderStyle"])
	assert.Equal(t, 0, root["paddingX"])
}

func TestPresetsRenderButtons(t *testing.T) {
	button := components.NewButton("Save").WithActive(true)

	assert.Contains(t, components.NewProvider(MustLookup("compact"), button).View(), "> Save")
	assert.Contains(t, components.NewProvider(MustLookup("high-contrast"), button).View(), "▶ Save")
	assert.Contains(t, components.NewProvider(MustLookup("dark"), button).View(), "› Save")
}

func TestSnapshotIsStableAndComparable(t *testing.T) {
	first, err := Snapshot(MustLookup("dark"), nil)
	require.NoError(t, err)
	second, err := Snapshot(MustLookup("dark"), nil)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	def, err := Snapshot(nil, nil)
	require.NoError(t, err)
	assert.NotEqual(t, string(def), string(first))
	assert.Contains(t, string(def), "focusMarker: ›")
}

func TestSnapshotUsesProps(t *testing.T) {
	info, err := Snapshot(nil, nil)
	require.NoError(t, err)
	warn, err := Snapshot(nil, map[string]any{
		components.AlertName: components.AlertProps{Variant: "warning"},
	})
	require.NoError(t, err)

	assert.Contains(t, string(info), "icon: ℹ")
	assert.Contains(t, string(warn), "icon: ⚠")
}
