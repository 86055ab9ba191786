package tui

import (
	"fmt"
	"math"
	"strings"

	"deedles.dev/cropbox"
	"github.com/charmbracelet/lipgloss"
)

type cellKind uint8

const (
	cellOutside cellKind = iota
	cellInside
	cellGrid
	cellBorder
	cellHandle
)

type styles struct {
	kinds  [cellHandle + 1]lipgloss.Style
	status lipgloss.Style
}

func defaultStyles() styles {
	var s styles
	s.kinds[cellOutside] = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	s.kinds[cellInside] = lipgloss.NewStyle()
	s.kinds[cellGrid] = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	s.kinds[cellBorder] = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	s.kinds[cellHandle] = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	s.status = lipgloss.NewStyle().Reverse(true)
	return s
}

// cells is the box rounded to terminal cells. The bounds are
// inclusive.
type cells struct {
	x0, y0, x1, y1 int
	gridX, gridY   [2]int
}

func toCells(r cropbox.Rect) cells {
	end := r.Max()
	c := cells{
		x0: int(math.Round(r.Origin.X)),
		y0: int(math.Round(r.Origin.Y)),
		x1: int(math.Round(end.X)) - 1,
		y1: int(math.Round(end.Y)) - 1,
	}
	xs, ys := cropbox.Grid(r)
	for i := range xs {
		c.gridX[i] = int(math.Round(xs[i]))
		c.gridY[i] = int(math.Round(ys[i]))
	}
	return c
}

func (c cells) at(x, y int) (rune, cellKind) {
	if x < c.x0 || x > c.x1 || y < c.y0 || y > c.y1 {
		return '░', cellOutside
	}

	left, right := x == c.x0, x == c.x1
	top, bottom := y == c.y0, y == c.y1
	switch {
	case (left || right) && (top || bottom):
		return '●', cellHandle
	case left || right:
		return '│', cellBorder
	case top || bottom:
		return '─', cellBorder
	}

	gx := x == c.gridX[0] || x == c.gridX[1]
	gy := y == c.gridY[0] || y == c.gridY[1]
	switch {
	case gx && gy:
		return '┼', cellGrid
	case gx:
		return '┆', cellGrid
	case gy:
		return '┄', cellGrid
	default:
		return ' ', cellInside
	}
}

func (m Model) View() string {
	if !m.sized {
		return "waiting for terminal size..."
	}

	var buf strings.Builder
	c := toCells(m.rect)
	rows := m.height - statusHeight

	var run strings.Builder
	for y := range rows {
		kind := cellOutside
		for x := range m.width {
			r, k := c.at(x, y)
			if (k != kind) && (run.Len() > 0) {
				buf.WriteString(m.styles.kinds[kind].Render(run.String()))
				run.Reset()
			}
			kind = k
			run.WriteRune(r)
		}
		buf.WriteString(m.styles.kinds[kind].Render(run.String()))
		run.Reset()
		buf.WriteByte('\n')
	}

	buf.WriteString(m.statusLine())
	return buf.String()
}

func (m Model) statusLine() string {
	status := fmt.Sprintf(
		" %v  x=%.0f y=%.0f w=%.0f h=%.0f  drag to move, corners to resize  %v",
		m.mode(),
		m.rect.Origin.X,
		m.rect.Origin.Y,
		m.rect.Size.X,
		m.rect.Size.Y,
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)
	return m.styles.status.MaxWidth(m.width).Render(status)
}
