package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slottheme/internal/scene"
	"github.com/alexisbeaulieu97/slottheme/internal/ui/components"
	"github.com/alexisbeaulieu97/slottheme/internal/ui/presets"
)

type renderOptions struct {
	component string
	text      string
	set       []string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [scene.yaml]",
		Short: "Render a scene file or a single component to stdout",
		Example: `  slottheme render examples/scenes/showcase.yaml --preset dark
  slottheme render --component Button --text Save --set variant=danger --set active=true`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, source, err := loadScene(args, opts)
			if err != nil {
				return newCommandError("load scene", source, err, suggestionFor(err))
			}

			out, err := renderScene(cmd, root, s)
			if err != nil {
				root.log.Error(err, "render failed")
				return newCommandError("render scene", source, err, suggestionFor(err))
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.component, "component", "c", "", "Render a single component of this kind instead of a scene file")
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Text or label of the single component")
	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Prop of the single component as key=value (repeatable)")

	return cmd
}

// loadScene reads the scene named by args, or assembles a one-component
// scene from the flags. The second result names the source for errors.
func loadScene(args []string, opts *renderOptions) (*scene.Scene, string, error) {
	if len(args) == 1 {
		if opts.component != "" {
			return nil, args[0], fmt.Errorf("--component cannot be combined with a scene file")
		}
		s, err := scene.ParseFile(args[0])
		return s, args[0], err
	}

	if opts.component == "" {
		return nil, "arguments", fmt.Errorf("a scene file or --component is required")
	}

	source := "component " + opts.component
	props, err := scene.ParseAssignments(opts.set)
	if err != nil {
		return nil, source, err
	}
	s := scene.Single(opts.component, opts.text, props)
	if err := scene.Validate(s); err != nil {
		return nil, source, err
	}
	return s, source, nil
}

// renderScene runs one render pass of s. The --preset and --width flags
// take precedence over the scene's own values.
func renderScene(cmd *cobra.Command, root *rootOptions, s *scene.Scene) (string, error) {
	presetName := s.Preset
	if p := root.preset(); p != "" {
		if flag := cmd.Flag("preset"); flag == nil || !flag.Changed {
			root.log.WithFields(map[string]any{"preset": p}).Info("preset taken from SLOTTHEME_PRESET")
		}
		if s.Preset != "" && s.Preset != p {
			root.log.WithFields(map[string]any{
				"scene":  s.Preset,
				"preset": p,
			}).Warn("preset overrides the scene's preset")
		}
		presetName = p
	}
	preset, err := presets.Lookup(presetName)
	if err != nil {
		return "", err
	}

	tree, err := scene.Build(s)
	if err != nil {
		return "", err
	}

	ctx := components.NewRenderContext(cmd.Context())
	width := s.Width
	if w := root.width(); w > 0 {
		width = w
	}
	if width > 0 {
		ctx = ctx.WithConstraints(components.WithMaxWidth(width))
	}

	out := components.NewProvider(preset, tree.Root).ViewWithContext(ctx)
	root.log.WithFields(map[string]any{
		"preset":     presetName,
		"components": len(tree.Themed),
	}).Debug("scene rendered")
	return out, nil
}
