package components

import (
	"github.com/alexisbeaulieu97/slottheme/internal/ui/palette"
	"github.com/alexisbeaulieu97/slottheme/pkg/theme"
	"github.com/charmbracelet/lipgloss"
)

// CardName is the theme key of Card.
const CardName = "Card"

// CardDefaults is the default theme of Card.
var CardDefaults = theme.ComponentTheme{
	Styles: theme.Slots{
		"root": theme.Static(theme.StyleObject{
			"borderStyle": "rounded",
			"borderColor": palette.Default().Neutral.Muted,
			"padding":     []int{0, 1},
		}),
		"title": theme.Static(theme.StyleObject{
			"bold":  true,
			"color": palette.Default().Primary.Base,
		}),
		"footer": theme.Static(theme.StyleObject{"faint": true}),
	},
}

// Card is a bordered container with an optional title and footer.
type Card struct {
	themed
	title   string
	body    *Stack
	divider *Divider
	footer  Renderable
}

// NewCard creates a new card around children.
func NewCard(children ...Renderable) *Card {
	return &Card{
		themed:  themed{name: CardName, defaults: CardDefaults},
		body:    VStack(children...),
		divider: NewDivider(),
	}
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card under ctx.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	resolved := c.resolve(ctx, nil)

	parts := make([]string, 0, 4)
	if c.title != "" {
		parts = append(parts, Style(resolved.Slot("title")).Render(c.title))
	}
	if len(c.body.Children()) > 0 {
		parts = append(parts, c.body.ViewWithContext(ctx))
	}

	if c.footer != nil {
		// The divider spans the widest line rendered so far.
		width := 0
		for _, part := range parts {
			width = max(width, lipgloss.Width(part))
		}
		c.divider.WithWidth(width)
		parts = append(parts, c.divider.ViewWithContext(ctx))
		parts = append(parts, Style(resolved.Slot("footer")).Render(renderChild(c.footer, ctx)))
	}

	return Style(resolved.Slot("root")).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// WithTitle sets the card title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithFooter sets the footer, separated from the body by a divider.
func (c *Card) WithFooter(footer Renderable) *Card {
	c.footer = footer
	return c
}

// Add appends children to the card body.
func (c *Card) Add(children ...Renderable) *Card {
	c.body.Add(children...)
	return c
}

// Title returns the card title.
func (c *Card) Title() string {
	return c.title
}
