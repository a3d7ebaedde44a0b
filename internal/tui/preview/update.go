package preview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/slottheme/internal/ui/presets"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buttons := m.tree.Buttons

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Next):
		if len(buttons) > 0 {
			m.focus = (m.focus + 1) % len(buttons)
			m.syncFocus()
		}

	case key.Matches(msg, m.keys.Prev):
		if len(buttons) > 0 {
			m.focus = (m.focus - 1 + len(buttons)) % len(buttons)
			m.syncFocus()
		}

	case key.Matches(msg, m.keys.Press):
		if len(buttons) > 0 {
			b := buttons[m.focus]
			b.WithActive(!b.IsActive())
		}

	case key.Matches(msg, m.keys.Disable):
		if len(buttons) > 0 {
			b := buttons[m.focus]
			b.WithDisabled(!b.IsDisabled())
		}

	case key.Matches(msg, m.keys.Preset):
		m.presetIdx = (m.presetIdx + 1) % len(m.presets)
		preset, err := presets.Lookup(m.Preset())
		if err != nil {
			// Names and Lookup share one registry.
			return m, nil
		}
		m.provider.SetTheme(preset)
		zerolog.Ctx(m.ctx).Debug().Str("preset", m.Preset()).Msg("preset switched")
	}

	return m, nil
}
