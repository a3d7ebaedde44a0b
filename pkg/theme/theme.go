package theme

import "sync/atomic"

// StyleObject is an opaque mapping from style property names to values.
// The theme package copies and merges it but never interprets its keys.
type StyleObject map[string]any

// StyleFunc computes a StyleObject from a component's current props.
type StyleFunc func(props any) StyleObject

// ConfigFunc computes a config block from a component's current props.
type ConfigFunc func(props any) map[string]any

type valueKind uint8

const (
	kindNone valueKind = iota
	kindStatic
	kindComputed
)

// StyleValue is the content of a single slot: either static style data or a
// function of props. Build one with Static, Computed or ComputedFor.
type StyleValue struct {
	kind   valueKind
	static StyleObject
	fn     StyleFunc
}

// Static wraps a style object as a slot value.
func Static(style StyleObject) StyleValue {
	return StyleValue{kind: kindStatic, static: style}
}

// Computed wraps a style function as a slot value.
func Computed(fn StyleFunc) StyleValue {
	return StyleValue{kind: kindComputed, fn: fn}
}

// ComputedFor adapts a typed style function. The props passed at resolve
// time must be of type P.
func ComputedFor[P any](fn func(P) StyleObject) StyleValue {
	return Computed(func(props any) StyleObject {
		return fn(propsAs[P](props))
	})
}

// IsComputed reports whether the slot holds a style function.
func (v StyleValue) IsComputed() bool {
	return v.kind == kindComputed
}

// StaticValue returns the static style data and true, or nil and false for
// computed slots.
func (v StyleValue) StaticValue() (StyleObject, bool) {
	if v.kind == kindComputed {
		return nil, false
	}
	return v.static, true
}

// Eval returns the concrete style for props.
func (v StyleValue) Eval(props any) StyleObject {
	if v.kind == kindComputed {
		return v.fn(props)
	}
	return v.static
}

// Slots maps slot names to their style values.
type Slots map[string]StyleValue

// ConfigValue is a component's non-style configuration, static or computed.
// The zero value means no config was provided.
type ConfigValue struct {
	kind   valueKind
	static map[string]any
	fn     ConfigFunc
	// id identifies the value for Memo; closures cannot be compared.
	id uint64
}

var configSeq atomic.Uint64

// StaticConfig wraps a static config block.
func StaticConfig(cfg map[string]any) ConfigValue {
	return ConfigValue{kind: kindStatic, static: cfg, id: configSeq.Add(1)}
}

// ComputedConfig wraps a config function.
func ComputedConfig(fn ConfigFunc) ConfigValue {
	return ConfigValue{kind: kindComputed, fn: fn, id: configSeq.Add(1)}
}

// ComputedConfigFor adapts a typed config function.
func ComputedConfigFor[P any](fn func(P) map[string]any) ConfigValue {
	return ComputedConfig(func(props any) map[string]any {
		return fn(propsAs[P](props))
	})
}

// propsAs converts props for a typed function. Nil props yield the zero
// value; props of any other type panic.
func propsAs[P any](props any) P {
	var p P
	if props == nil {
		return p
	}
	return props.(P)
}

// IsSet reports whether any config was provided.
func (c ConfigValue) IsSet() bool {
	return c.kind != kindNone
}

// IsComputed reports whether the config is a function of props.
func (c ConfigValue) IsComputed() bool {
	return c.kind == kindComputed
}

// Eval returns the config block for props. Resolution leaves config
// untouched, so callers evaluate it themselves when they need it.
func (c ConfigValue) Eval(props any) map[string]any {
	switch c.kind {
	case kindComputed:
		return c.fn(props)
	case kindStatic:
		return c.static
	default:
		return nil
	}
}

// ComponentTheme is the theme definition for one component name.
type ComponentTheme struct {
	Styles Slots
	Config ConfigValue
}

// Theme maps component names to their theme definitions.
type Theme struct {
	Components map[string]ComponentTheme
}

// Empty returns the canonical empty theme. Empty themes are
// interchangeable: every theme without components is the same ambient value
// for caching purposes.
func Empty() Theme {
	return Theme{Components: map[string]ComponentTheme{}}
}

// Normalize returns t with a missing components map replaced by the empty
// one.
func (t Theme) Normalize() Theme {
	if t.Components == nil {
		t.Components = map[string]ComponentTheme{}
	}
	return t
}

// Component returns the definition registered for name.
func (t Theme) Component(name string) (ComponentTheme, bool) {
	ct, ok := t.Components[name]
	return ct, ok
}

// ResolvedComponentTheme is a component theme whose slots are all static.
// Config keeps its original static or computed shape.
type ResolvedComponentTheme struct {
	Styles map[string]StyleObject
	Config ConfigValue
}

// Slot returns the style for a slot, or an empty object when the slot is
// not defined.
func (r ResolvedComponentTheme) Slot(name string) StyleObject {
	if style, ok := r.Styles[name]; ok && style != nil {
		return style
	}
	return StyleObject{}
}
