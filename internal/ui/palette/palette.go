// Package palette defines the semantic colour slots shared by the component
// defaults and the bundled presets.
package palette

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet groups the colours of one semantic slot:
//   - Base: background or brand colour
//   - OnBase: text colour that reads well on Base
//   - Muted: a quieter variant of Base for borders and accents
//   - Contrast: an accent that stands out against Base
//
// All colours are adaptive and pick their light or dark variant from the
// terminal background.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// Slot selects one ColourSet from a Palette.
type Slot func(Palette) ColourSet

var (
	Primary   Slot = func(p Palette) ColourSet { return p.Primary }
	Secondary Slot = func(p Palette) ColourSet { return p.Secondary }
	Surface   Slot = func(p Palette) ColourSet { return p.Surface }
	Success   Slot = func(p Palette) ColourSet { return p.Success }
	Warning   Slot = func(p Palette) ColourSet { return p.Warning }
	Danger    Slot = func(p Palette) ColourSet { return p.Danger }
	Info      Slot = func(p Palette) ColourSet { return p.Info }
	Neutral   Slot = func(p Palette) ColourSet { return p.Neutral }
)

var slotsByName = map[string]Slot{
	"primary":   Primary,
	"secondary": Secondary,
	"surface":   Surface,
	"success":   Success,
	"warning":   Warning,
	"danger":    Danger,
	"info":      Info,
	"neutral":   Neutral,
}

// Lookup returns the colour set registered under name. Unknown names
// report false.
func (p Palette) Lookup(name string) (ColourSet, bool) {
	slot, ok := slotsByName[name]
	if !ok {
		return ColourSet{}, false
	}
	return slot(p), true
}

// Variant returns the colour set for name, falling back to Primary.
func (p Palette) Variant(name string) ColourSet {
	if cs, ok := p.Lookup(name); ok {
		return cs
	}
	return p.Primary
}

// Names lists the slot names accepted by Lookup in sorted order.
func Names() []string {
	names := make([]string, 0, len(slotsByName))
	for name := range slotsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// Default returns the light-leaning palette used by component defaults.
func Default() Palette {
	return Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}
}

// Dark returns Default with darker surface and neutral slots.
func Dark() Palette {
	p := Default()
	p.Surface = ColourSet{
		Base:     ac("#111827", "#0b1120"),
		OnBase:   ac("#f9fafb", "#e5e7eb"),
		Muted:    ac("#1f2937", "#111827"),
		Contrast: ac("#3b82f6", "#60a5fa"),
	}
	p.Neutral = ColourSet{
		Base:     ac("#475569", "#334155"),
		OnBase:   ac("#e5e7eb", "#cbd5f5"),
		Muted:    ac("#374151", "#1f2937"),
		Contrast: ac("#f8fafc", "#f8fafc"),
	}
	return p
}

// HighContrast returns Dark with every OnBase forced to pure black or white.
func HighContrast() Palette {
	p := Dark()
	black, white := ac("#000000", "#000000"), ac("#ffffff", "#ffffff")
	p.Primary.OnBase = white
	p.Secondary.OnBase = white
	p.Surface.OnBase = white
	p.Success.OnBase = black
	p.Warning.OnBase = black
	p.Danger.OnBase = white
	p.Info.OnBase = black
	p.Neutral.OnBase = white
	p.Neutral.Muted = ac("#e5e7eb", "#e5e7eb")
	return p
}
