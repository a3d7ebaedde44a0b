package components

import "github.com/alexisbeaulieu97/slottheme/pkg/theme"

// BoxName is the theme key of Box.
const BoxName = "Box"

// BoxDefaults is the default theme of Box.
var BoxDefaults = theme.ComponentTheme{
	Styles: theme.Slots{
		"root": theme.Static(theme.StyleObject{
			"borderStyle": "rounded",
			"paddingX":    1,
		}),
	},
}

// Box is a generic bordered container laying its children out vertically.
type Box struct {
	themed
	layout *Stack
}

// NewBox creates a box around children.
func NewBox(children ...Renderable) *Box {
	return &Box{
		themed: themed{name: BoxName, defaults: BoxDefaults},
		layout: VStack(children...),
	}
}

// View renders the box.
func (b *Box) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the box and its children under ctx. Borders and
// padding render even without children.
func (b *Box) ViewWithContext(ctx RenderContext) string {
	resolved := b.resolve(ctx, nil)

	var content string
	if len(b.layout.Children()) > 0 {
		content = b.layout.ViewWithContext(ctx)
	}
	return Style(resolved.Slot("root")).Render(content)
}

// Add appends children to the box.
func (b *Box) Add(children ...Renderable) *Box {
	b.layout.Add(children...)
	return b
}

// WithGap sets the gap between children.
func (b *Box) WithGap(gap int) *Box {
	b.layout.WithGap(gap)
	return b
}

// Children returns the child renderables.
func (b *Box) Children() []Renderable {
	return b.layout.Children()
}
