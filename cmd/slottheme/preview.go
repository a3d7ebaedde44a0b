package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slottheme/internal/scene"
	"github.com/alexisbeaulieu97/slottheme/internal/tui/preview"
)

func newPreviewCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <scene.yaml>",
		Short: "Explore a scene interactively, switching presets and button states",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !isTerminal(cmd.OutOrStdout()) {
				return newCommandError("start preview", path, errors.New("stdout is not a terminal"), "Use 'slottheme render' for non-interactive output")
			}

			s, err := scene.ParseFile(path)
			if err != nil {
				return newCommandError("load scene", path, err, suggestionFor(err))
			}
			if p := root.preset(); p != "" {
				s.Preset = p
			}
			if w := root.width(); w > 0 {
				s.Width = w
			}

			model, err := preview.NewModel(cmd.Context(), s)
			if err != nil {
				return newCommandError("build scene", path, err, suggestionFor(err))
			}

			root.log.WithFields(map[string]any{"scene": path, "preset": model.Preset()}).Info("launching preview")
			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := program.Run(); err != nil {
				root.log.Error(err, "preview failed")
				return newCommandError("run preview", path, err, "Re-run with --verbose for details")
			}
			root.log.Info("preview closed")
			return nil
		},
	}
}
