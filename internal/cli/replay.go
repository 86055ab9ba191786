package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"deedles.dev/cropbox"
	"deedles.dev/cropbox/internal/script"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// Row is a single step of a replayed script as written by replay
// --json.
type Row struct {
	Gesture int            `json:"gesture"`
	Move    int            `json:"move"`
	Corner  cropbox.Corner `json:"corner"`
	X       float64        `json:"x"`
	Y       float64        `json:"y"`
	Width   float64        `json:"width"`
	Height  float64        `json:"height"`
}

func newRow(step script.Step) Row {
	return Row{
		Gesture: step.Gesture,
		Move:    step.Move,
		Corner:  step.Corner,
		X:       step.Rect.Origin.X,
		Y:       step.Rect.Origin.Y,
		Width:   step.Rect.Size.X,
		Height:  step.Rect.Size.Y,
	}
}

func newReplayCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "replay SCRIPT",
		Short: "Replay a gesture script and print the box after every move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return fmt.Errorf("load script: %w", err)
			}

			var rows []Row
			for step := range s.Run(a.cfg.Box.Box(cropbox.Point{})) {
				a.log.Debug().
					Int("gesture", step.Gesture).
					Int("move", step.Move).
					Stringer("corner", step.Corner).
					Str("rect", step.Rect.String()).
					Msg("step")
				rows = append(rows, newRow(step))
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			return writeTable(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}

func writeJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}

	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	err := e.Encode(rows)
	if err != nil {
		return fmt.Errorf("encode rows: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, rows []Row) error {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("GESTURE", "MOVE", "CORNER", "X", "Y", "WIDTH", "HEIGHT").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, r := range rows {
		t.Row(
			strconv.Itoa(r.Gesture),
			strconv.Itoa(r.Move),
			r.Corner.String(),
			formatFloat(r.X),
			formatFloat(r.Y),
			formatFloat(r.Width),
			formatFloat(r.Height),
		)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
