package components

import (
	"strings"

	"github.com/alexisbeaulieu97/slottheme/internal/ui/palette"
	"github.com/alexisbeaulieu97/slottheme/pkg/theme"
)

// DividerName is the theme key of Divider.
const DividerName = "Divider"

const fallbackDividerWidth = 40

// DividerDefaults is the default theme of Divider. Config "char" is the
// repeated rune and "width" a fixed width, 0 meaning the available width.
var DividerDefaults = theme.ComponentTheme{
	Styles: theme.Slots{
		"root": theme.Static(theme.StyleObject{"color": palette.Default().Neutral.Muted}),
	},
	Config: theme.StaticConfig(map[string]any{
		"char":  "─",
		"width": 0,
	}),
}

// Divider renders a horizontal separator line.
type Divider struct {
	themed
	char  string
	width int
}

// NewDivider creates a divider that follows the themed char and width.
func NewDivider() *Divider {
	return &Divider{
		themed: themed{name: DividerName, defaults: DividerDefaults},
	}
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider under ctx. The width is the first
// positive value of: the instance width, the themed width, the constraint
// width, the parent width, 40.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	resolved := d.resolve(ctx, nil)
	cfg := resolved.Config.Eval(nil)

	char := d.char
	if char == "" {
		char, _ = cfg["char"].(string)
	}
	if char == "" {
		char = "─"
	}

	width := d.width
	if width <= 0 {
		width, _ = asInt(cfg["width"])
	}
	if width <= 0 && ctx.Constraints.HasWidth() {
		if ctx.Constraints.MaxWidth >= 0 {
			width = ctx.Constraints.MaxWidth
		} else {
			width = ctx.Constraints.MinWidth
		}
	}
	if width <= 0 && ctx.ParentWidth > 0 {
		width = ctx.ParentWidth
	}
	if width <= 0 {
		width = fallbackDividerWidth
	}

	return Style(resolved.Slot("root")).Render(strings.Repeat(char, width))
}

// WithChar overrides the themed character.
func (d *Divider) WithChar(char string) *Divider {
	d.char = char
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// Width returns the explicit divider width, 0 when unset.
func (d *Divider) Width() int {
	return d.width
}
