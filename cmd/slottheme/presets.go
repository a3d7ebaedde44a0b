package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slottheme/internal/ui/presets"
)

func newPresetsCmd() *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the bundled theme presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range presets.Names() {
				if !detailed {
					fmt.Fprintln(out, name)
					continue
				}

				preset, err := presets.Lookup(name)
				if err != nil {
					return err
				}
				overridden := make([]string, 0, len(preset.Components))
				for component := range preset.Components {
					overridden = append(overridden, component)
				}
				sort.Strings(overridden)
				if len(overridden) == 0 {
					fmt.Fprintf(out, "%s: component defaults\n", name)
					continue
				}
				fmt.Fprintf(out, "%s: %s\n", name, strings.Join(overridden, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&detailed, "components", "c", false, "Show which components each preset restyles")
	return cmd
}
