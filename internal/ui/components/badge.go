package components

import (
	"github.com/alexisbeaulieu97/slottheme/internal/ui/palette"
	"github.com/alexisbeaulieu97/slottheme/pkg/theme"
)

// BadgeName is the theme key of Badge.
const BadgeName = "Badge"

// BadgeProps are the props Badge resolves its theme against.
type BadgeProps struct {
	Variant string
}

// BadgeDefaults is the default theme of Badge.
var BadgeDefaults = theme.ComponentTheme{
	Styles: theme.Slots{
		"root": BadgeRootStyle(palette.Default()),
	},
}

// BadgeRootStyle builds the root slot of a badge for the given palette.
func BadgeRootStyle(p palette.Palette) theme.StyleValue {
	return theme.ComputedFor(func(props BadgeProps) theme.StyleObject {
		cs := p.Neutral
		if props.Variant != "" {
			cs = p.Variant(props.Variant)
		}
		return theme.StyleObject{
			"backgroundColor": cs.Base,
			"color":           cs.OnBase,
			"paddingX":        1,
			"bold":            true,
		}
	})
}

// Badge is a small status indicator component.
type Badge struct {
	themed
	text  string
	props BadgeProps
}

// NewBadge creates a new neutral badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		themed: themed{name: BadgeName, defaults: BadgeDefaults},
		text:   text,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge under the ambient theme of ctx.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	resolved := b.resolve(ctx, b.props)
	return Style(resolved.Slot("root")).Render(b.text)
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant string) *Badge {
	b.props.Variant = variant
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant("success")
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant("warning")
}

// DangerBadge creates a danger badge.
func DangerBadge(text string) *Badge {
	return NewBadge(text).WithVariant("danger")
}
