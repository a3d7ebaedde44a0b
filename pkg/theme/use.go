package theme

import "context"

// UseComponentTheme produces the resolved theme for one render of a
// component. It merges the ambient override registered under name onto
// defaults and resolves the result against props. When the ambient theme
// has no entry for name the defaults are resolved directly.
//
// Components that re-render often should call Memo.Use instead, which
// skips the work when nothing changed since the previous render.
func UseComponentTheme(ctx context.Context, name string, defaults ComponentTheme, props any) ResolvedComponentTheme {
	return resolveAgainst(FromContext(ctx), name, defaults, props)
}

func resolveAgainst(ambient Theme, name string, defaults ComponentTheme, props any) ResolvedComponentTheme {
	override, ok := ambient.Components[name]
	if !ok {
		return Resolve(defaults, props)
	}
	return Resolve(MergeComponent(defaults, override), props)
}
