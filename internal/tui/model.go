// Package tui implements an interactive crop box in the terminal. The
// container is the terminal window, measured in cells, and the box is
// moved and resized with the mouse.
package tui

import (
	"fmt"

	"deedles.dev/cropbox"
	"deedles.dev/cropbox/geom"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// statusHeight is the number of rows at the bottom of the terminal
// reserved for the status line.
const statusHeight = 1

// Model is the bubbletea model of the interactive crop box.
type Model struct {
	box     cropbox.Box
	rect    cropbox.Rect
	session cropbox.Session

	pressed bool
	press   cropbox.Point

	width, height int
	sized         bool

	keys   keyMap
	help   help.Model
	styles styles
	log    zerolog.Logger
}

// New returns a model that constrains its box by box. The box's frame
// is replaced by the size of the terminal once it is known.
func New(box cropbox.Box, log zerolog.Logger) Model {
	return Model{
		box:    box,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: defaultStyles(),
		log:    log,
	}
}

// Rect returns the current position of the box.
func (m Model) Rect() cropbox.Rect { return m.rect }

// Session returns the state of the drag in progress, if any.
func (m Model) Session() cropbox.Session { return m.session }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.log.Info().Str("rect", m.rect.String()).Msg("quit")
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.session = m.session.End()
			m.pressed = false
			m.rect = m.initialRect()
		}
		return m, nil

	case tea.MouseMsg:
		return m.mouse(msg), nil
	}

	return m, nil
}

func (m Model) resize(width, height int) Model {
	m.width, m.height = width, height
	m.help.Width = width
	m.box.Frame = geom.Pt(float64(width), float64(max(height-statusHeight, 0)))

	if m.session.Active() {
		m.log.Debug().Msg("drag cancelled by resize")
	}
	m.session = m.session.End()
	m.pressed = false

	if !m.sized {
		m.sized = true
		m.rect = m.initialRect()
		return m
	}
	m.rect = cropbox.Fit(m.rect, m.box.Frame)
	return m
}

// initialRect returns a box half the size of the frame, but no smaller
// than the minimum, in the middle of it.
func (m Model) initialRect() cropbox.Rect {
	size := m.box.Frame.Div(2).Max(m.box.MinSize)
	return cropbox.Centered(m.box.Frame, size)
}

func (m Model) mouse(msg tea.MouseMsg) Model {
	if !m.sized {
		return m
	}

	p := geom.Pt(float64(msg.X), float64(msg.Y))
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		if !p.In(geom.RectAt(cropbox.Point{}, m.box.Frame)) {
			return m
		}
		m.pressed = true
		m.press = p
		m.session = m.session.End()

	case tea.MouseActionMotion:
		if !m.pressed {
			return m
		}

		began := !m.session.Active()
		m.session, m.rect = m.box.Update(m.session, m.rect, cropbox.Drag{
			Start:       m.press,
			Translation: p.Sub(m.press),
		})
		if began {
			m.log.Debug().
				Stringer("corner", m.session.Corner).
				Str("start", m.press.String()).
				Msg("drag began")
		}

	case tea.MouseActionRelease:
		if m.session.Active() {
			m.log.Debug().
				Stringer("corner", m.session.Corner).
				Str("rect", m.rect.String()).
				Msg("drag ended")
		}
		m.pressed = false
		m.session = m.session.End()
	}

	return m
}

func (m Model) mode() string {
	switch {
	case !m.session.Active():
		return "idle"
	case m.session.Resizing():
		return fmt.Sprintf("resizing %v", m.session.Corner)
	default:
		return "moving"
	}
}
