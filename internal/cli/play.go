package cli

import (
	"fmt"

	"deedles.dev/cropbox"
	"deedles.dev/cropbox/internal/logging"
	"deedles.dev/cropbox/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Drag a crop box around the terminal with the mouse",
		Long: `Show a crop box in the terminal. Drag inside of it to move it, or
drag one of its corners to resize it. Press r to put it back in the
middle and q to quit. The final position is printed on exit.

The terminal is in use while the box is shown, so logs are written to
the file named by logging.file instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logCfg, err := a.logConfig()
			if err != nil {
				return err
			}
			log, closer, err := logging.OpenFile(a.cfg.Logging.File, logCfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			box := a.cfg.Play.Box(cropbox.Point{})
			log.Info().
				Str("min", box.MinSize.String()).
				Float64("hit_distance", box.HitDistance).
				Msg("starting")

			p := tea.NewProgram(
				tui.New(box, log),
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("run: %w", err)
			}

			if m, ok := final.(tui.Model); ok {
				fmt.Fprintln(cmd.OutOrStdout(), m.Rect())
			}
			return nil
		},
	}
}
