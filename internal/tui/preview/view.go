package preview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/slottheme/internal/ui/components"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	statsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// View implements tea.Model. Each call is one render pass over the scene.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := components.NewRenderContext(m.ctx)
	if m.width > 0 {
		ctx = ctx.WithConstraints(components.WithMaxWidth(m.width))
	}
	body := m.provider.ViewWithContext(ctx)

	title := m.title
	if title == "" {
		title = "scene"
	}
	header := titleStyle.Render(fmt.Sprintf("slottheme • %s • preset %s", title, m.Preset()))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		sectionStyle.Render("Theme cache"),
		m.statsView(),
		"",
		m.help.View(m.keys),
	)
}

func (m Model) statsView() string {
	hits, misses := m.CacheStats()
	ratio := 0.0
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total)
	}
	label := statsStyle.Render(fmt.Sprintf("%d hits / %d misses", hits, misses))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", m.hitRatio.ViewAs(ratio))
}
