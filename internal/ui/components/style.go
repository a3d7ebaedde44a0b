package components

import (
	"strings"

	"github.com/alexisbeaulieu97/slottheme/pkg/theme"
	"github.com/charmbracelet/lipgloss"
)

// Style converts a resolved style object into a lipgloss style.
//
// Recognised keys:
//
//	padding, margin             int, Spacing or []int (CSS shorthand order)
//	paddingX, paddingY          int
//	marginX, marginY            int
//	color, foreground           string or lipgloss.TerminalColor
//	backgroundColor, background string or lipgloss.TerminalColor
//	borderStyle                 "normal", "rounded", "thick", "double", "hidden" or lipgloss.Border
//	borderColor                 string or lipgloss.TerminalColor
//	bold, italic, underline     bool
//	faint                       bool
//	width                       int
//	align                       "left", "center", "right"
//
// Unknown keys and values of an unexpected type are ignored.
func Style(obj theme.StyleObject) lipgloss.Style {
	return applyStyle(lipgloss.NewStyle(), obj)
}

func applyStyle(style lipgloss.Style, obj theme.StyleObject) lipgloss.Style {
	if v, ok := obj["padding"]; ok {
		if s, ok := asSpacing(v); ok {
			style = style.Padding(s.Top, s.Right, s.Bottom, s.Left)
		}
	}
	if n, ok := asInt(obj["paddingX"]); ok {
		style = style.PaddingLeft(n).PaddingRight(n)
	}
	if n, ok := asInt(obj["paddingY"]); ok {
		style = style.PaddingTop(n).PaddingBottom(n)
	}
	if v, ok := obj["margin"]; ok {
		if s, ok := asSpacing(v); ok {
			style = style.Margin(s.Top, s.Right, s.Bottom, s.Left)
		}
	}
	if n, ok := asInt(obj["marginX"]); ok {
		style = style.MarginLeft(n).MarginRight(n)
	}
	if n, ok := asInt(obj["marginY"]); ok {
		style = style.MarginTop(n).MarginBottom(n)
	}

	if c, ok := firstColor(obj, "color", "foreground"); ok {
		style = style.Foreground(c)
	}
	if c, ok := firstColor(obj, "backgroundColor", "background"); ok {
		style = style.Background(c)
	}

	if border, ok := asBorder(obj["borderStyle"]); ok {
		style = style.BorderStyle(border)
	}
	if c, ok := asColor(obj["borderColor"]); ok {
		style = style.BorderForeground(c)
	}

	if b, ok := obj["bold"].(bool); ok {
		style = style.Bold(b)
	}
	if b, ok := obj["italic"].(bool); ok {
		style = style.Italic(b)
	}
	if b, ok := obj["underline"].(bool); ok {
		style = style.Underline(b)
	}
	if b, ok := obj["faint"].(bool); ok {
		style = style.Faint(b)
	}
	if n, ok := asInt(obj["width"]); ok && n > 0 {
		style = style.Width(n)
	}
	if pos, ok := asPosition(obj["align"]); ok {
		style = style.Align(pos)
	}

	return style
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// asSpacing accepts a single int, a Spacing, or a one to four element slice
// using CSS shorthand ordering.
func asSpacing(v any) (Spacing, bool) {
	if s, ok := v.(Spacing); ok {
		return s, true
	}
	if n, ok := asInt(v); ok {
		return UniformSpacing(n), true
	}

	var values []int
	switch list := v.(type) {
	case []int:
		values = list
	case []any:
		for _, item := range list {
			n, ok := asInt(item)
			if !ok {
				return Spacing{}, false
			}
			values = append(values, n)
		}
	default:
		return Spacing{}, false
	}

	switch len(values) {
	case 1:
		return UniformSpacing(values[0]), true
	case 2:
		return SymmetricSpacing(values[0], values[1]), true
	case 3:
		return Spacing{Top: values[0], Right: values[1], Bottom: values[2], Left: values[1]}, true
	case 4:
		return Spacing{Top: values[0], Right: values[1], Bottom: values[2], Left: values[3]}, true
	default:
		return Spacing{}, false
	}
}

func asColor(v any) (lipgloss.TerminalColor, bool) {
	switch c := v.(type) {
	case string:
		if c == "" {
			return nil, false
		}
		return lipgloss.Color(c), true
	case lipgloss.TerminalColor:
		return c, true
	default:
		return nil, false
	}
}

func firstColor(obj theme.StyleObject, keys ...string) (lipgloss.TerminalColor, bool) {
	for _, key := range keys {
		if c, ok := asColor(obj[key]); ok {
			return c, true
		}
	}
	return nil, false
}

func asBorder(v any) (lipgloss.Border, bool) {
	switch b := v.(type) {
	case lipgloss.Border:
		return b, true
	case string:
		switch strings.ToLower(b) {
		case "normal":
			return lipgloss.NormalBorder(), true
		case "rounded":
			return lipgloss.RoundedBorder(), true
		case "thick":
			return lipgloss.ThickBorder(), true
		case "double":
			return lipgloss.DoubleBorder(), true
		case "hidden":
			return lipgloss.HiddenBorder(), true
		}
	}
	return lipgloss.Border{}, false
}

func asPosition(v any) (lipgloss.Position, bool) {
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	switch strings.ToLower(s) {
	case "left":
		return lipgloss.Left, true
	case "center":
		return lipgloss.Center, true
	case "right":
		return lipgloss.Right, true
	default:
		return 0, false
	}
}
