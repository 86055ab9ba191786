// Package cli provides the cobra commands of the cropbox tool.
package cli

import (
	"fmt"

	"deedles.dev/cropbox/internal/config"
	"deedles.dev/cropbox/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app holds the state shared by every command once the configuration
// has been loaded.
type app struct {
	version    string
	configFile string

	cfg *config.Config
	log zerolog.Logger
}

// NewRootCmd returns the root cropbox command with every subcommand
// attached.
func NewRootCmd(version string) *cobra.Command {
	a := app{version: version, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "cropbox",
		Short: "Move and resize a crop box inside of a container",
		Long: `cropbox drives the geometry of a resizable crop box.

A box can be dragged around its container or resized by dragging one
of its corners, but it never leaves the container and never shrinks
below its minimum size. Use 'cropbox replay' and 'cropbox render' to
run scripted gestures, or 'cropbox play' to drag a box around the
terminal with the mouse.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "configuration file (default: search for cropbox.yaml)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "", "log format (console or json)")

	root.AddCommand(
		newReplayCmd(&a),
		newRenderCmd(&a),
		newPlayCmd(&a),
		newVersionCmd(&a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	v := config.NewViper(a.configFile)

	err := v.BindPFlag("logging.level", cmd.Flags().Lookup("log-level"))
	if err != nil {
		return fmt.Errorf("bind flag: %w", err)
	}
	err = v.BindPFlag("logging.format", cmd.Flags().Lookup("log-format"))
	if err != nil {
		return fmt.Errorf("bind flag: %w", err)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	a.cfg = cfg

	logCfg, err := a.logConfig()
	if err != nil {
		return err
	}
	a.log = logging.New(cmd.ErrOrStderr(), logCfg)

	a.log.Debug().
		Str("file", v.ConfigFileUsed()).
		Interface("box", cfg.Box).
		Msg("configuration loaded")
	return nil
}

func (a *app) logConfig() (logging.Config, error) {
	cfg, err := logging.Parse(a.cfg.Logging.Level, a.cfg.Logging.Format)
	if err != nil {
		return cfg, fmt.Errorf("logging: %w", err)
	}
	return cfg, nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cropbox %v\n", a.version)
		},
	}
}
