// Package theme implements slot-based theming for terminal UI components.
//
// # Overview
//
// Component authors ship a default ComponentTheme: a set of named slots
// ("root", "label", ...) holding either static style data or a function of
// the component's props, plus an optional config block. Application authors
// override those defaults per component name by injecting a Theme into the
// render context.
//
// # Pipeline
//
// Every themed component runs the same steps on each render:
//
//  1. Read the ambient theme installed by the nearest WithTheme call.
//  2. Look up the override registered for the component's name.
//  3. Deep-merge the override onto the component defaults (MergeComponent).
//  4. Resolve computed slots against the current props (Resolve).
//
// UseComponentTheme performs these steps; Memo caches the result per
// component instance so computed styles are only re-evaluated when props or
// the ambient theme change.
//
// # Example
//
//	var buttonDefaults = theme.ComponentTheme{
//		Styles: theme.Slots{
//			"root": theme.ComputedFor(func(p ButtonProps) theme.StyleObject {
//				if p.Active {
//					return theme.StyleObject{"color": "lime"}
//				}
//				return theme.StyleObject{"color": "gray"}
//			}),
//		},
//	}
//
//	ctx := theme.WithTheme(context.Background(), &theme.Theme{
//		Components: map[string]theme.ComponentTheme{
//			"Button": {Styles: theme.Slots{"root": theme.Static(theme.StyleObject{"bold": true})}},
//		},
//	})
//	resolved := theme.UseComponentTheme(ctx, "Button", buttonDefaults, ButtonProps{Active: true})
//	_ = resolved.Styles["root"]
//
// Themes are treated as immutable once injected: merge and resolve never
// mutate their inputs, and cache identity is derived from the injected maps.
package theme
