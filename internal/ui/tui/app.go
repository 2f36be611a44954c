package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/ventmap/internal/domain"
)

// chrome is the number of rows taken by the header, stats and help lines.
const chrome = 7

type model struct {
	theme Theme
	deps  Deps

	variant domain.Variant
	vp      viewport.Model
	ready   bool

	solving bool
	report  domain.SolveReport
	diagram string
	toast   string
}

// Run opens the full-screen viewer and blocks until the user quits.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	v := deps.Variant
	if v == "" {
		v = domain.VariantAll
	}
	if deps.Threshold < 1 {
		deps.Threshold = domain.DefaultThreshold
	}
	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		variant: v,
		vp:      viewport.New(80, 20),
		solving: true,
	}
}

func (m model) Init() tea.Cmd {
	return cmdSolve(m.deps, m.variant)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = max(msg.Width-4, 10)
		m.vp.Height = max(msg.Height-chrome, 3)
		m.ready = true
		return m, nil

	case solvedMsg:
		// A slower run for a variant the user already toggled away from.
		if msg.variant != m.variant {
			return m, nil
		}
		m.solving = false
		m.report = msg.report
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.diagram = ""
			m.vp.SetContent("")
			return m, nil
		}
		m.toast = ""
		m.diagram = msg.diagram
		m.vp.SetContent(msg.diagram)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "d":
			if m.variant == domain.VariantAll {
				m.variant = domain.VariantAxisAligned
			} else {
				m.variant = domain.VariantAll
			}
			m.solving = true
			return m, cmdSolve(m.deps, m.variant)

		case "r":
			m.solving = true
			return m, cmdSolve(m.deps, m.variant)
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(0, 1)
	header := m.theme.Title.Render("ventmap") + "  " +
		m.theme.Subtitle.Render(clampString(m.deps.Input, 60))

	status := renderStats(m.report, m.variant)
	if m.solving {
		status = m.theme.Subtitle.Render("solving…")
	}
	if m.toast != "" {
		status = m.theme.Toast.Render(m.toast)
	}

	help := m.theme.Help.Render("↑/↓ pgup/pgdn scroll • d toggle diagonals • r reload • q quit")
	return wrap.Render(fmt.Sprintf("%s\n%s\n%s\n%s", header, status, m.theme.Card.Render(m.vp.View()), help))
}
