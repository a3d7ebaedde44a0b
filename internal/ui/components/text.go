package components

import (
	"github.com/alexisbeaulieu97/slottheme/internal/ui/palette"
	"github.com/alexisbeaulieu97/slottheme/pkg/theme"
)

// TextName is the theme key of Text.
const TextName = "Text"

// TextProps are the props Text resolves its theme against.
type TextProps struct {
	// Tone is a palette slot name ("danger", "muted", ...). Empty means
	// the terminal's default colour.
	Tone string
	Bold bool
}

// TextDefaults is the default theme of Text.
var TextDefaults = theme.ComponentTheme{
	Styles: theme.Slots{
		"root": theme.ComputedFor(func(p TextProps) theme.StyleObject {
			style := theme.StyleObject{}
			switch p.Tone {
			case "":
			case "muted":
				style["faint"] = true
			default:
				if cs, ok := palette.Default().Lookup(p.Tone); ok {
					style["color"] = cs.Base
				}
			}
			if p.Bold {
				style["bold"] = true
			}
			return style
		}),
	},
}

// Text is a primitive component for rendering styled text content.
type Text struct {
	themed
	content string
	props   TextProps
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		themed:  themed{name: TextName, defaults: TextDefaults},
		content: content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text under the ambient theme of ctx.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	resolved := t.resolve(ctx, t.props)
	return Style(resolved.Slot("root")).Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithTone sets the palette tone.
func (t *Text) WithTone(tone string) *Text {
	t.props.Tone = tone
	return t
}

// WithBold toggles bold text.
func (t *Text) WithBold(bold bool) *Text {
	t.props.Bold = bold
	return t
}

// Props returns the current props.
func (t *Text) Props() TextProps {
	return t.props
}

// BoldText creates bold text.
func BoldText(content string) *Text {
	return NewText(content).WithBold(true)
}

// MutedText creates faint text.
func MutedText(content string) *Text {
	return NewText(content).WithTone("muted")
}
