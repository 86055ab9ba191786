package cli

import (
	"fmt"
	"image"

	"deedles.dev/cropbox"
	"deedles.dev/cropbox/internal/render"
	"deedles.dev/cropbox/internal/script"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var output, background string

	cmd := &cobra.Command{
		Use:   "render SCRIPT",
		Short: "Replay a gesture script and draw the final box as a PNG",
		Long: `Replay a gesture script and draw a preview of the box after the
last move. The container is filled with the background image, if one is
given, scaled to fit it. Everything outside of the box is dimmed, and
the box is drawn with its outline, guide lines, and corner pins.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return fmt.Errorf("load script: %w", err)
			}

			var bg image.Image
			if background != "" {
				bg, err = render.LoadImage(background)
				if err != nil {
					return fmt.Errorf("load background: %w", err)
				}
			}

			step := s.Final(a.cfg.Box.Box(cropbox.Point{}))
			img := render.Render(step.Frame, step.Rect, bg, render.DefaultStyle())

			err = render.WriteFile(output, img)
			if err != nil {
				return fmt.Errorf("write preview: %w", err)
			}

			a.log.Info().
				Str("path", output).
				Str("rect", step.Rect.String()).
				Msg("wrote preview")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write")
	cmd.Flags().StringVar(&background, "background", "", "PNG or JPEG image to draw behind the box")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
