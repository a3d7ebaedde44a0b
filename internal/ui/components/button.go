package components

import (
	"github.com/alexisbeaulieu97/slottheme/internal/ui/palette"
	"github.com/alexisbeaulieu97/slottheme/pkg/theme"
)

// ButtonName is the theme key of Button.
const ButtonName = "Button"

// ButtonProps are the props Button resolves its theme against.
type ButtonProps struct {
	// Variant is a palette slot name; unknown or empty means primary.
	Variant  string
	Active   bool
	Disabled bool
}

// ButtonDefaults is the default theme of Button. The root slot follows the
// variant and state; config carries the marker drawn before an active label.
var ButtonDefaults = theme.ComponentTheme{
	Styles: theme.Slots{
		"root": theme.ComputedFor(func(p ButtonProps) theme.StyleObject {
			return buttonRoot(palette.Default(), p)
		}),
		"label": theme.Static(theme.StyleObject{}),
	},
	Config: theme.StaticConfig(map[string]any{
		"focusMarker": "›",
	}),
}

// ButtonRootStyle builds the root slot of a button for the given palette.
// Presets reuse it to restyle buttons with another palette.
func ButtonRootStyle(p palette.Palette) theme.StyleValue {
	return theme.ComputedFor(func(props ButtonProps) theme.StyleObject {
		return buttonRoot(p, props)
	})
}

func buttonRoot(p palette.Palette, props ButtonProps) theme.StyleObject {
	cs := p.Variant(props.Variant)
	style := theme.StyleObject{
		"backgroundColor": cs.Base,
		"color":           cs.OnBase,
		"paddingX":        2,
	}
	if props.Disabled {
		style["faint"] = true
	}
	if props.Active {
		style["bold"] = true
		style["underline"] = true
	}
	return style
}

// Button represents a button. It is visual only; callers toggle Active and
// Disabled themselves.
type Button struct {
	themed
	label string
	props ButtonProps
}

// NewButton creates a new primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		themed: themed{name: ButtonName, defaults: ButtonDefaults},
		label:  label,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button under the ambient theme of ctx.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	resolved := b.resolve(ctx, b.props)

	label := Style(resolved.Slot("label")).Render(b.label)
	if b.props.Active {
		if marker, ok := resolved.Config.Eval(b.props)["focusMarker"].(string); ok && marker != "" {
			label = marker + " " + label
		}
	}
	return Style(resolved.Slot("root")).Render(label)
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant string) *Button {
	b.props.Variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.props.Disabled = disabled
	return b
}

// WithActive sets the active/selected state.
func (b *Button) WithActive(active bool) *Button {
	b.props.Active = active
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// SetLabel updates the button label.
func (b *Button) SetLabel(label string) *Button {
	b.label = label
	return b
}

// Props returns the current props.
func (b *Button) Props() ButtonProps {
	return b.props
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.props.Disabled
}

// IsActive returns true if the button is active.
func (b *Button) IsActive() bool {
	return b.props.Active
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant("primary")
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant("secondary")
}

// DangerButton creates a danger button.
func DangerButton(label string) *Button {
	return NewButton(label).WithVariant("danger")
}
