package components

import "github.com/alexisbeaulieu97/slottheme/pkg/theme"

// Provider makes a theme ambient for its subtree. Every descendant rendered
// through ViewWithContext resolves against that theme; a Provider nested
// inside another replaces the outer theme for its own subtree rather than
// merging with it.
type Provider struct {
	theme    *theme.Theme
	children *Stack
}

// NewProvider injects t above children. A nil theme injects the empty theme.
func NewProvider(t *theme.Theme, children ...Renderable) *Provider {
	return &Provider{theme: t, children: VStack(children...)}
}

// View renders the subtree.
func (p *Provider) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the subtree with the provider's theme installed
// on ctx.
func (p *Provider) ViewWithContext(ctx RenderContext) string {
	return p.children.ViewWithContext(ctx.WithTheme(p.theme))
}

// SetTheme replaces the injected theme. Descendants see it on the next
// render.
func (p *Provider) SetTheme(t *theme.Theme) *Provider {
	p.theme = t
	return p
}

// Theme returns the injected theme.
func (p *Provider) Theme() *theme.Theme {
	return p.theme
}

// Add appends children.
func (p *Provider) Add(children ...Renderable) *Provider {
	p.children.Add(children...)
	return p
}
