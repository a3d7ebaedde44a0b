// Package preview is an interactive bubbletea viewer for scenes. Every
// frame re-renders the whole component tree, so the per-component theme
// caches are exercised the way a real application would exercise them.
package preview

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/slottheme/internal/scene"
	"github.com/alexisbeaulieu97/slottheme/internal/ui/components"
	"github.com/alexisbeaulieu97/slottheme/internal/ui/presets"
)

// Model is the bubbletea state of the preview.
type Model struct {
	ctx      context.Context
	title    string
	tree     *scene.Tree
	provider *components.Provider

	presets   []string
	presetIdx int
	focus     int

	keys     keyMap
	help     help.Model
	hitRatio progress.Model

	width    int
	frames   int
	quitting bool
}

// NewModel builds the preview for a scene. ctx is the parent of every
// render pass; a zerolog logger attached to it receives cache events.
func NewModel(ctx context.Context, s *scene.Scene) (Model, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	tree, err := scene.Build(s)
	if err != nil {
		return Model{}, err
	}

	names := presets.Names()
	idx := indexOf(names, s.Preset)
	if idx < 0 {
		idx = indexOf(names, presets.Default)
	}
	preset, err := presets.Lookup(names[idx])
	if err != nil {
		return Model{}, err
	}

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30

	m := Model{
		ctx:       ctx,
		title:     s.Name,
		tree:      tree,
		provider:  components.NewProvider(preset, tree.Root),
		presets:   names,
		presetIdx: idx,
		keys:      defaultKeyMap(),
		help:      help.New(),
		hitRatio:  bar,
		width:     s.Width,
	}
	m.syncFocus()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Preset returns the name of the injected preset.
func (m Model) Preset() string {
	return m.presets[m.presetIdx]
}

// Focus returns the index of the focused button, or -1 without buttons.
func (m Model) Focus() int {
	if len(m.tree.Buttons) == 0 {
		return -1
	}
	return m.focus
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Tree returns the built scene.
func (m Model) Tree() *scene.Tree {
	return m.tree
}

// CacheStats sums the theme cache counters of every component in the scene.
func (m Model) CacheStats() (hits, misses uint64) {
	for _, c := range m.tree.Themed {
		h, ms := c.CacheStats()
		hits += h
		misses += ms
	}
	return hits, misses
}

// syncFocus marks the focused button active and every other one inactive.
func (m *Model) syncFocus() {
	for i, b := range m.tree.Buttons {
		b.WithActive(i == m.focus)
	}
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
