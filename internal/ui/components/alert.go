package components

import (
	"github.com/alexisbeaulieu97/slottheme/internal/ui/palette"
	"github.com/alexisbeaulieu97/slottheme/pkg/theme"
	"github.com/charmbracelet/lipgloss"
)

// AlertName is the theme key of Alert.
const AlertName = "Alert"

// AlertProps are the props Alert resolves its theme against.
type AlertProps struct {
	// Variant is one of success, warning, danger or info. Empty means info.
	Variant string
}

var alertIcons = map[string]string{
	"success": "✓",
	"warning": "⚠",
	"danger":  "✗",
	"info":    "ℹ",
}

// AlertDefaults is the default theme of Alert. Config is computed so the
// icon follows the variant.
var AlertDefaults = theme.ComponentTheme{
	Styles: theme.Slots{
		"root":    AlertRootStyle(palette.Default()),
		"title":   theme.Static(theme.StyleObject{"bold": true}),
		"message": theme.Static(theme.StyleObject{}),
	},
	Config: theme.ComputedConfigFor(func(p AlertProps) map[string]any {
		icon, ok := alertIcons[p.Variant]
		if !ok {
			icon = alertIcons["info"]
		}
		return map[string]any{"icon": icon}
	}),
}

// AlertRootStyle builds the root slot of an alert for the given palette.
func AlertRootStyle(p palette.Palette) theme.StyleValue {
	return theme.ComputedFor(func(props AlertProps) theme.StyleObject {
		cs := p.Info
		if _, ok := alertIcons[props.Variant]; ok {
			cs = p.Variant(props.Variant)
		}
		return theme.StyleObject{
			"borderStyle": "normal",
			"borderColor": cs.Base,
			"padding":     []int{0, 1},
		}
	})
}

// Alert is a composite component for displaying notifications and messages.
type Alert struct {
	themed
	title   string
	message string
	icon    string
	props   AlertProps
}

// NewAlert creates a new info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		themed:  themed{name: AlertName, defaults: AlertDefaults},
		message: message,
	}
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert under the ambient theme of ctx.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	resolved := a.resolve(ctx, a.props)

	icon := a.icon
	if icon == "" {
		icon, _ = resolved.Config.Eval(a.props)["icon"].(string)
	}

	line := a.message
	if icon != "" {
		line = icon + " " + line
	}

	lines := make([]string, 0, 2)
	if a.title != "" {
		lines = append(lines, Style(resolved.Slot("title")).Render(a.title))
	}
	lines = append(lines, Style(resolved.Slot("message")).Render(line))

	return Style(resolved.Slot("root")).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant string) *Alert {
	a.props.Variant = variant
	return a
}

// WithIcon sets a custom icon that takes precedence over the themed one.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle adds a title to the alert.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// SetMessage updates the alert message.
func (a *Alert) SetMessage(message string) *Alert {
	a.message = message
	return a
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant("success")
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant("warning")
}

// ErrorAlert creates a danger alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant("danger")
}

// InfoAlert creates an info alert.
func InfoAlert(message string) *Alert {
	return NewAlert(message).WithVariant("info")
}
