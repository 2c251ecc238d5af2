// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/state"
	"github.com/litescript/ls-almanac/internal/version"
)

// TickMsg triggers periodic recomputation of the almanac.
type TickMsg time.Time

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager

	width  int
	height int
	ready  bool

	snapshot state.Snapshot
}

// New creates the root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{state: stateMgr}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return TickMsg(time.Now()) },
		m.tickCmd(),
	)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.state.RefreshInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case TickMsg:
		m.snapshot = m.state.Recompute(time.Time(msg))
		return m, m.tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "u":
			m.state.ToggleUTCWindow()
		case "left", "h":
			m.state.StepDay(-1)
		case "right", "l":
			m.state.StepDay(1)
		case "n":
			m.state.ResetToNow()
		default:
			return m, nil
		}
		// Any state change above warrants an immediate recompute.
		m.snapshot = m.state.Recompute(time.Now())
		return m, nil
	}

	return m, nil
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)

	headerDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.snapshot.Trace == nil {
		return "Computing almanac..."
	}

	r := m.snapshot.Report

	site := r.Observer.Name
	if site == "" {
		site = fmt.Sprintf("%.4f, %.4f", r.Observer.LatDeg, r.Observer.LonDeg)
	}

	window := "local"
	if r.InUTC {
		window = "UTC"
	}

	header := titleStyle.Render("ls-almanac "+version.Version) + "  " +
		headerDimStyle.Render(fmt.Sprintf("%s  %s  day window: %s",
			site, r.At.Format("2006-01-02 15:04:05 MST"), window))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(RenderSunPanel(r))
	b.WriteString("\n")
	b.WriteString(RenderMoonPanel(r))
	b.WriteString("\n")
	b.WriteString(RenderAltitudeStrip(m.snapshot.Trace, r.At))
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render("←/→ day  n today  u toggle UTC window  q quit"))

	return b.String()
}
