package theme

import "context"

type ambientKey struct{}

// WithTheme installs t as the ambient theme for everything rendered with the
// returned context. A nil theme installs the empty theme and a theme without
// components is normalized to an empty components map.
//
// The theme replaces whatever an enclosing WithTheme installed; nested
// themes shadow their ancestors rather than layering on top of them. Use
// Extend to build a layered theme explicitly.
func WithTheme(ctx context.Context, t *Theme) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	value := Empty()
	if t != nil {
		value = t.Normalize()
	}
	return context.WithValue(ctx, ambientKey{}, value)
}

// FromContext returns the ambient theme, or the empty theme when none was
// installed.
func FromContext(ctx context.Context) Theme {
	if ctx == nil {
		return Empty()
	}
	if t, ok := ctx.Value(ambientKey{}).(Theme); ok {
		return t
	}
	return Empty()
}
