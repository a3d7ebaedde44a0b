// Package components provides a themeable component library for terminal
// applications, rendered with lipgloss.
//
// # Overview
//
// Every component ships a default theme: a set of named slots (root, label,
// title, ...) whose styles are static maps or functions of the component's
// props, plus optional config. Applications restyle components by injecting
// a theme.Theme keyed by component name; the override is deep-merged onto
// the defaults before the slots are resolved.
//
// # Injecting a theme
//
// Wrap a subtree in a Provider:
//
//	dark := presets.MustLookup("dark")
//	view := components.NewProvider(dark,
//		components.PrimaryButton("Save"),
//		components.WarningAlert("Unsaved changes"),
//	).View()
//
// Or install the theme on the render context directly:
//
//	ctx := components.DefaultContext().WithTheme(dark)
//	output := button.ViewWithContext(ctx)
//
// A nested Provider replaces the outer theme for its subtree; the two are
// not merged.
//
// # Overriding a component
//
//	override := theme.Theme{Components: map[string]theme.ComponentTheme{
//		components.ButtonName: {
//			Styles: theme.Slots{
//				"label": theme.Static(theme.StyleObject{"italic": true}),
//			},
//			Config: theme.StaticConfig(map[string]any{"focusMarker": "»"}),
//		},
//	}}
//
// Static overrides merge key by key with static defaults. A computed
// override replaces the slot entirely, as does a static override of a
// computed default.
//
// # Style objects
//
// Resolved slots are plain maps turned into lipgloss styles by Style. See
// Style for the recognised keys.
//
// # Caching
//
// Each component instance caches its resolved theme and recomputes it only
// when its props or the ambient theme change. CacheStats exposes the
// counters.
//
// # Core Components
//
// Primitive components:
//   - Text: Styled text content
//   - Spacer: Empty space for layout (not themed)
//   - Divider: Horizontal separators
//
// Layout components:
//   - Stack: Vertical/horizontal arrangement with gaps
//   - Box: Bordered container
//   - Provider: Theme injection point
//
// Semantic components:
//   - Card: Container with title and footer
//   - Button, Badge, Alert: Variant-driven components
//
// See the examples/components directory for a showcase.
package components
