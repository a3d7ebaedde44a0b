package theme

// Resolve evaluates every computed slot of ct against props and returns a
// theme whose slots are all static. Static slots are copied through, slots
// missing from ct stay missing, and config is passed on unevaluated.
func Resolve(ct ComponentTheme, props any) ResolvedComponentTheme {
	styles := make(map[string]StyleObject, len(ct.Styles))
	for slot, v := range ct.Styles {
		if v.kind == kindComputed {
			styles[slot] = v.fn(props)
			continue
		}
		styles[slot] = cloneStyle(v.static)
	}

	return ResolvedComponentTheme{
		Styles: styles,
		Config: cloneConfig(ct.Config),
	}
}
