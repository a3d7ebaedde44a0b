package components

import (
	"context"

	"github.com/alexisbeaulieu97/slottheme/pkg/theme"
	"github.com/charmbracelet/lipgloss"
)

// Renderable is anything that renders to a string.
type Renderable interface {
	View() string
}

// ContextualRenderable is a component that can receive the render context.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// themed carries the per-instance theming state shared by all components:
// the component name, its defaults and the memo cache for its resolved theme.
type themed struct {
	name     string
	defaults theme.ComponentTheme
	memo     theme.Memo
}

// resolve returns the resolved theme for this render pass.
func (t *themed) resolve(ctx RenderContext, props any) theme.ResolvedComponentTheme {
	return t.memo.Use(ctx.Context(), t.name, t.defaults, props)
}

// Name returns the name the component is registered under in a theme.
func (t *themed) Name() string {
	return t.name
}

// CacheStats reports how many renders reused the cached theme and how many
// recomputed it.
func (t *themed) CacheStats() (hits, misses uint64) {
	return t.memo.Stats()
}

// Themed is implemented by every component that resolves a theme.
type Themed interface {
	Name() string
	CacheStats() (hits, misses uint64)
}

// Spacing represents spacing (padding or margin) around a component.
// Uses CSS box model ordering: Top, Right, Bottom, Left.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing creates spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing creates spacing with different horizontal and vertical values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero returns true if all spacing values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Constraints defines sizing constraints for layout calculations.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// HasWidth returns true if there's a width constraint.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// RenderContext is the value handed down the component tree during one
// render pass. It carries layout constraints and a context.Context holding
// the ambient theme. Every component of a pass reads the same ambient theme;
// a theme injected after the pass started shows up on the next pass.
type RenderContext struct {
	ctx         context.Context
	Constraints Constraints
	ParentWidth int
}

// DefaultContext returns a render context with no ambient theme and no
// constraints.
func DefaultContext() RenderContext {
	return NewRenderContext(context.Background())
}

// NewRenderContext starts a render pass from ctx. A theme already injected
// into ctx with theme.WithTheme is the ambient theme of the pass.
func NewRenderContext(ctx context.Context) RenderContext {
	return RenderContext{ctx: ctx, Constraints: Unconstrained()}
}

// Context returns the context.Context of the pass.
func (r RenderContext) Context() context.Context {
	if r.ctx == nil {
		return context.Background()
	}
	return r.ctx
}

// Theme returns the ambient theme of the pass.
func (r RenderContext) Theme() theme.Theme {
	return theme.FromContext(r.Context())
}

// WithTheme returns a new context in which t is the ambient theme. A nil
// theme installs the empty theme.
func (r RenderContext) WithTheme(t *theme.Theme) RenderContext {
	r.ctx = theme.WithTheme(r.Context(), t)
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) toLipglossPosition() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func renderChild(child Renderable, ctx RenderContext) string {
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
