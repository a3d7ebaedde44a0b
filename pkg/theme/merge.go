package theme

import "reflect"

// Extend deep-merges override onto base and returns a new theme. Component
// names from both sides are kept; where both define the same name the
// override wins key by key (see MergeComponent). Neither input is modified
// and the result shares no maps with them.
//
//	custom := theme.Extend(presets.Dark(), theme.Theme{
//		Components: map[string]theme.ComponentTheme{
//			"Button": {Styles: theme.Slots{"root": theme.Static(theme.StyleObject{"bold": true})}},
//		},
//	})
func Extend(base, override Theme) Theme {
	out := make(map[string]ComponentTheme, len(base.Components)+len(override.Components))
	for name, ct := range base.Components {
		out[name] = cloneComponent(ct)
	}
	for name, ct := range override.Components {
		if existing, ok := base.Components[name]; ok {
			out[name] = MergeComponent(existing, ct)
			continue
		}
		out[name] = cloneComponent(ct)
	}
	return Theme{Components: out}
}

// MergeComponent combines a component's default theme with an override.
//
// Static slots are merged recursively, nested maps key by key, with the
// override winning on conflicts. Computed slots, slices and scalar values
// from the override replace the base value wholesale. A zero StyleValue or
// zero ConfigValue in the override counts as absent.
func MergeComponent(base, override ComponentTheme) ComponentTheme {
	return ComponentTheme{
		Styles: mergeSlots(base.Styles, override.Styles),
		Config: mergeConfig(base.Config, override.Config),
	}
}

func mergeSlots(base, override Slots) Slots {
	if base == nil && override == nil {
		return nil
	}
	out := make(Slots, len(base)+len(override))
	for name, v := range base {
		out[name] = cloneStyleValue(v)
	}
	for name, v := range override {
		if existing, ok := base[name]; ok {
			out[name] = mergeStyleValue(existing, v)
			continue
		}
		out[name] = cloneStyleValue(v)
	}
	return out
}

func mergeStyleValue(base, override StyleValue) StyleValue {
	switch {
	case override.kind == kindNone:
		return cloneStyleValue(base)
	case override.kind == kindStatic && base.kind == kindStatic:
		return Static(StyleObject(mergeMaps(base.static, override.static)))
	default:
		return cloneStyleValue(override)
	}
}

func mergeConfig(base, override ConfigValue) ConfigValue {
	switch {
	case override.kind == kindNone:
		return cloneConfig(base)
	case override.kind == kindStatic && base.kind == kindStatic:
		return StaticConfig(mergeMaps(base.static, override.static))
	default:
		return cloneConfig(override)
	}
}

// mergeMaps returns a fresh map holding base overlaid with override.
func mergeMaps(base, override map[string]any) map[string]any {
	out := cloneMap(base)
	if out == nil {
		out = make(map[string]any, len(override))
	}
	for key, ov := range override {
		if bv, ok := base[key]; ok {
			out[key] = mergeValue(bv, ov)
			continue
		}
		out[key] = cloneValue(ov)
	}
	return out
}

// mergeValue merges nested maps key by key. The result keeps the dynamic
// map type of base.
func mergeValue(base, override any) any {
	o, ok := asMap(override)
	if !ok {
		return cloneValue(override)
	}
	b, ok := asMap(base)
	if !ok {
		return cloneValue(override)
	}
	merged := mergeMaps(b, o)
	if _, isStyle := base.(StyleObject); isStyle {
		return StyleObject(merged)
	}
	return merged
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case StyleObject:
		return m, true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

func cloneComponent(ct ComponentTheme) ComponentTheme {
	var styles Slots
	if ct.Styles != nil {
		styles = make(Slots, len(ct.Styles))
		for name, v := range ct.Styles {
			styles[name] = cloneStyleValue(v)
		}
	}
	return ComponentTheme{Styles: styles, Config: cloneConfig(ct.Config)}
}

func cloneStyleValue(v StyleValue) StyleValue {
	if v.kind == kindStatic {
		v.static = cloneStyle(v.static)
	}
	return v
}

// cloneConfig keeps the identity of c: the copy holds the same content.
func cloneConfig(c ConfigValue) ConfigValue {
	if c.kind == kindStatic {
		c.static = cloneMap(c.static)
	}
	return c
}

func cloneStyle(s StyleObject) StyleObject {
	if s == nil {
		return nil
	}
	return StyleObject(cloneMap(s))
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue deep-copies the JSON-like parts of a value: nested maps and
// slices. Everything else (scalars, funcs, lipgloss colours and borders) is
// copied by value.
func cloneValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case StyleObject:
		return cloneStyle(t)
	case map[string]any:
		return cloneMap(t)
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := range rv.Len() {
			out.Index(i).Set(cloneElem(rv.Index(i)))
		}
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), cloneElem(iter.Value()))
		}
		return out.Interface()
	default:
		return v
	}
}

// cloneElem deep-copies an element of a typed slice or map. Elements whose
// copy does not fit the element type are kept as they are.
func cloneElem(elem reflect.Value) reflect.Value {
	if !elem.CanInterface() {
		return elem
	}
	raw := elem.Interface()
	if raw == nil {
		return elem
	}
	cloned := reflect.ValueOf(cloneValue(raw))
	if !cloned.IsValid() || !cloned.Type().AssignableTo(elem.Type()) {
		return elem
	}
	return cloned
}
