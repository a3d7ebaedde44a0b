package preview

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/slottheme/internal/scene"
)

func buttonsScene() *scene.Scene {
	return &scene.Scene{
		Name:   "demo",
		Preset: "dark",
		Components: []scene.Node{
			{Kind: "Button", Text: "Save"},
			{Kind: "Button", Text: "Cancel"},
			{Kind: "Text", Text: "hint"},
		},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestNewModel(t *testing.T) {
	m, err := NewModel(context.Background(), buttonsScene())
	require.NoError(t, err)

	require.Equal(t, "dark", m.Preset())
	require.Equal(t, 0, m.Focus())
	require.True(t, m.Tree().Buttons[0].IsActive())
	require.False(t, m.Tree().Buttons[1].IsActive())
	require.Nil(t, m.Init())
}

func TestNewModelDefaultsPreset(t *testing.T) {
	s := buttonsScene()
	s.Preset = ""

	m, err := NewModel(nil, s)
	require.NoError(t, err)
	require.Equal(t, "default", m.Preset())
}

func TestNewModelRejectsInvalidScene(t *testing.T) {
	_, err := NewModel(context.Background(), &scene.Scene{})
	require.Error(t, err)
}

func TestFocusCycles(t *testing.T) {
	m, err := NewModel(context.Background(), buttonsScene())
	require.NoError(t, err)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 1, m.Focus())
	require.True(t, m.Tree().Buttons[1].IsActive())
	require.False(t, m.Tree().Buttons[0].IsActive())

	m = update(t, m, runes("l"))
	require.Equal(t, 0, m.Focus())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, 1, m.Focus())
}

func TestPressAndDisable(t *testing.T) {
	m, err := NewModel(context.Background(), buttonsScene())
	require.NoError(t, err)
	save := m.Tree().Buttons[0]

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, save.IsActive())

	m = update(t, m, runes("d"))
	require.True(t, save.IsDisabled())
	m = update(t, m, runes("d"))
	require.False(t, save.IsDisabled())
}

func TestPresetCycles(t *testing.T) {
	m, err := NewModel(context.Background(), buttonsScene())
	require.NoError(t, err)

	m = update(t, m, runes("p"))
	require.Equal(t, "default", m.Preset())
	m = update(t, m, runes("p"))
	require.Equal(t, "high-contrast", m.Preset())
	m = update(t, m, runes("p"))
	require.Equal(t, "compact", m.Preset())
	require.Contains(t, m.View(), "> Save")
}

func TestViewReusesCacheAcrossFrames(t *testing.T) {
	m, err := NewModel(context.Background(), buttonsScene())
	require.NoError(t, err)

	first := m.View()
	require.Contains(t, first, "preset dark")
	require.Contains(t, first, "› Save")
	_, missesAfterFirst := m.CacheStats()

	m.View()
	hits, misses := m.CacheStats()
	require.Equal(t, missesAfterFirst, misses)
	require.Equal(t, missesAfterFirst, hits)

	// Moving focus changes props of both buttons only.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m.View()
	_, misses = m.CacheStats()
	require.Equal(t, missesAfterFirst+2, misses)
}

func TestPresetSwitchInvalidatesCaches(t *testing.T) {
	m, err := NewModel(context.Background(), buttonsScene())
	require.NoError(t, err)

	m.View()
	_, before := m.CacheStats()

	m = update(t, m, runes("p"))
	m.View()
	_, after := m.CacheStats()
	require.Equal(t, 2*before, after)
}

func TestHelpToggleAndQuit(t *testing.T) {
	m, err := NewModel(context.Background(), buttonsScene())
	require.NoError(t, err)

	require.NotContains(t, m.View(), "toggle disabled")
	m = update(t, m, runes("?"))
	require.Contains(t, m.View(), "toggle disabled")

	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	model := next.(Model)
	require.True(t, model.Quitting())
	require.Empty(t, model.View())
}

func TestWindowSize(t *testing.T) {
	m, err := NewModel(context.Background(), buttonsScene())
	require.NoError(t, err)

	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	require.Equal(t, 20, m.width)
}

func TestPresetSwitchLogsThroughContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	m, err := NewModel(logger.WithContext(context.Background()), buttonsScene())
	require.NoError(t, err)

	m = update(t, m, runes("p"))
	m.View()
	require.Contains(t, buf.String(), "preset switched")
	require.Contains(t, buf.String(), "resolving component theme")
}

func TestNoButtons(t *testing.T) {
	m, err := NewModel(context.Background(), &scene.Scene{Components: []scene.Node{{Kind: "Text", Text: "x"}}})
	require.NoError(t, err)
	require.Equal(t, -1, m.Focus())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, runes("d"))
	require.Contains(t, m.View(), "x")
}
