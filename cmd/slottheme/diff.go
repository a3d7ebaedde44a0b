package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slottheme/internal/ui/presets"
	"github.com/alexisbeaulieu97/slottheme/pkg/diff"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <preset> <preset>",
		Short: "Show how two presets resolve differently",
		Long: `Resolve every component under both presets and print a unified diff of
the resolved slot styles and config. Props are left at their zero values.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, err := snapshotPreset(args[0])
			if err != nil {
				return newCommandError("resolve preset", args[0], err, suggestionFor(err))
			}
			after, err := snapshotPreset(args[1])
			if err != nil {
				return newCommandError("resolve preset", args[1], err, suggestionFor(err))
			}

			out := cmd.OutOrStdout()
			if d := diff.Unified(before, after, args[0], args[1]); d != "" {
				fmt.Fprint(out, d)
				return nil
			}
			fmt.Fprintf(out, "%s and %s resolve identically\n", args[0], args[1])
			return nil
		},
	}
}

func snapshotPreset(name string) ([]byte, error) {
	preset, err := presets.Lookup(name)
	if err != nil {
		return nil, err
	}
	return presets.Snapshot(preset, nil)
}
