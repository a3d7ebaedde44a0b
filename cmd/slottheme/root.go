package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/slottheme/internal/logger"
)

// rootOptions holds state shared by every subcommand. Flag values are read
// through v so that SLOTTHEME_* environment variables apply too.
type rootOptions struct {
	v   *viper.Viper
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "slottheme",
		Short:         "slottheme renders themed terminal components",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("preset", "", "Theme preset to inject")
	flags.Int("width", 0, "Maximum render width, 0 for unlimited")
	bindFlags(opts.v, flags)

	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newPreviewCmd(opts))
	cmd.AddCommand(newPresetsCmd())
	cmd.AddCommand(newDiffCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	v.SetEnvPrefix("SLOTTHEME")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	flags.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
	})
}

// setup creates the logger and attaches it to the command context, where
// the theme caches pick it up.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	level := o.v.GetString("log-level")
	if o.v.GetBool("verbose") {
		level = "debug"
	}

	out := cmd.ErrOrStderr()
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: isTerminal(out),
		Writer:        out,
	})
	if err != nil {
		return newCommandError("configure logging", fmt.Sprintf("log level %q", level), err, "Use one of debug, info, warn or error")
	}

	o.log = log
	cmd.SetContext(log.WithContext(cmd.Context()))
	return nil
}

func (o *rootOptions) preset() string {
	return o.v.GetString("preset")
}

func (o *rootOptions) width() int {
	return o.v.GetInt("width")
}
