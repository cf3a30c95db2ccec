// Package tui hosts the constellation in a terminal. The pointer is the
// mouse, tracked with all-motion reporting; the drawing surface is the
// terminal minus a two-line footer.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/constellation/pkg/config"
	"github.com/matzehuels/constellation/pkg/fonts"
	"github.com/matzehuels/constellation/pkg/frame"
	"github.com/matzehuels/constellation/pkg/render/term"
	"github.com/matzehuels/constellation/pkg/reveal"
	"github.com/matzehuels/constellation/pkg/scene"
	"github.com/matzehuels/constellation/pkg/viewport"
)

const (
	footerHeight = 2
	// maxFrameGap caps dt so a suspended terminal does not jump the reveal.
	maxFrameGap = 100 * time.Millisecond
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	hoverStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(scene.Highlight))
)

type tickMsg time.Time

// ConfigMsg delivers a reloaded config. Err is set when the file changed
// but could not be loaded; the running config is kept in that case.
type ConfigMsg struct {
	Config *config.Config
	Err    error
}

// Model is the bubbletea model driving one frame controller.
type Model struct {
	ctrl    *frame.Controller
	grid    term.Grid
	pointer frame.Pointer
	last    time.Time
	frame   frame.Frame
	ready   bool
	sizeErr error // set while the grid leaves no room after padding

	help    help.Model
	bar     progress.Model
	errText string
}

// New creates a model around ctrl. The controller must not be used by
// anything else while the program runs.
func New(ctrl *frame.Controller) Model {
	return Model{
		ctrl: ctrl,
		help: help.New(),
		bar: progress.New(
			progress.WithSolidFill(ctrl.Config().Colors.Highlight),
			progress.WithoutPercentage(),
		),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	fps := m.ctrl.Config().Animation.FPS
	if fps <= 0 {
		fps = reveal.DefaultFPS
	}
	return tea.Tick(time.Duration(float64(time.Second)/fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.WindowSizeMsg:
		rows := max(msg.Height-footerHeight, 1)
		m.grid = term.NewGrid(msg.Width, rows, m.ctrl.Config().Terminal.CellAspect)
		m.help.Width = msg.Width
		m.bar.Width = max(msg.Width/3, 10)
		m.ready = true
		m.refit()

	case tea.MouseMsg:
		m.pointer = m.grid.Pointer(msg.X, msg.Y)

	case tickMsg:
		now := time.Time(msg)
		if m.ready && m.sizeErr == nil {
			m.frame = m.ctrl.TickFor(m.width(), m.height(), m.pointer, m.elapsed(now))
		}
		m.last = now
		return m, m.tick()

	case ConfigMsg:
		m.applyConfig(msg)
	}
	return m, nil
}

// refit checks the grid against the padding and redraws the idle frame.
// A grid that is too small would fit the scene at a negative scale.
func (m *Model) refit() {
	w, h := m.grid.Size()
	m.sizeErr = viewport.CheckViewport(w, h, m.ctrl.Config().Padding)
	if m.sizeErr == nil {
		m.frame = m.ctrl.Snapshot(w, h)
	}
}

func (m Model) width() float64  { w, _ := m.grid.Size(); return w }
func (m Model) height() float64 { _, h := m.grid.Size(); return h }

func (m Model) elapsed(now time.Time) time.Duration {
	if m.last.IsZero() {
		fps := m.ctrl.Config().Animation.FPS
		return time.Duration(float64(time.Second) / fps)
	}
	return min(now.Sub(m.last), maxFrameGap)
}

func (m *Model) applyConfig(msg ConfigMsg) {
	if msg.Err != nil {
		m.errText = msg.Err.Error()
		return
	}
	m.errText = ""

	prev := m.ctrl.Config()
	if msg.Config.Glyph.FontSize != prev.Glyph.FontSize {
		meas, err := fonts.NewMeasurer(msg.Config.Glyph.FontSize)
		if err != nil {
			m.errText = err.Error()
			return
		}
		if err := m.ctrl.SetMeasurer(meas); err != nil {
			m.errText = err.Error()
		}
	}
	m.ctrl.SetConfig(msg.Config)
	if msg.Config.Terminal.CellAspect != prev.Terminal.CellAspect {
		m.grid = term.NewGrid(m.grid.Cols, m.grid.Rows, msg.Config.Terminal.CellAspect)
	}
	if m.ready {
		m.refit()
	}
	m.bar = progress.New(progress.WithSolidFill(msg.Config.Colors.Highlight), progress.WithoutPercentage())
	m.bar.Width = max(m.grid.Cols/3, 10)
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Loading constellation..."
	}
	if m.sizeErr != nil {
		return "\n  " + statusStyle.Render("Terminal too small: "+m.sizeErr.Error()) + "\n\n" + m.help.View(keys)
	}
	canvas := term.Draw(m.frame, m.grid).String()
	return canvas + "\n" + m.status() + "\n" + m.help.View(keys)
}

func (m Model) status() string {
	s := m.bar.ViewAs(m.frame.Progress) + "  " +
		statusStyle.Render(fmt.Sprintf("%s %3.0f%%", m.frame.State, m.frame.Progress*100))
	if h := m.frame.Hovered; h != reveal.NoNode {
		s += "  " + hoverStyle.Render(m.ctrl.Scene().Node(h).Label)
	}
	if m.errText != "" {
		s += "  " + statusStyle.Render("config: "+m.errText)
	}
	return s
}

// Frame returns the most recent frame.
func (m Model) Frame() frame.Frame { return m.frame }
