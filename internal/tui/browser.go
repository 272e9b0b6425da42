package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/spectre/internal/analysis"
	"github.com/san-kum/spectre/internal/viz"
	"github.com/san-kum/spectre/pkg/eigensolver"
)

const tableRows = 12

type model struct {
	sol      *eigensolver.Solution
	title    string
	selected int
	dim      int
	theme    viz.Theme
	styles   viz.Styles

	width  int
	height int
}

// NewBrowser returns a bubbletea model stepping through the states of sol,
// starting in the given theme.
func NewBrowser(sol *eigensolver.Solution, title string, theme viz.Theme) tea.Model {
	return model{
		sol:    sol,
		title:  title,
		theme:  theme,
		styles: viz.NewStyles(theme),
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < m.sol.NumStates()-1 {
			m.selected++
		}
	case "left", "h":
		if m.dim > 0 {
			m.dim--
		}
	case "right", "l":
		if m.dim < m.sol.Dims()-1 {
			m.dim++
		}
	case "t":
		m.theme = viz.NextTheme(m.theme)
		m.styles = viz.NewStyles(m.theme)
	}
	return m, nil
}

func (m model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("spectre") + s.Muted.Render("  "+m.title) + "\n\n")

	first := max(0, m.selected-tableRows/2)
	last := min(m.sol.NumStates(), first+tableRows)
	table := viz.LevelTable(m.sol.Values[first:last], m.selected-first, m.theme)

	side := m.stats()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, table, "  ", s.Panel.Render(side)))
	b.WriteString("\n\n")

	if m.sol.HasVectors() {
		x, rho, err := analysis.Marginal(m.sol, m.selected, m.dim)
		if err == nil {
			plotWidth := max(20, m.width-12)
			caption := fmt.Sprintf("|ψ_%d|² along x%d", m.selected, m.dim)
			b.WriteString(viz.DensityPlot(x, rho, plotWidth, 8, caption))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(s.KeyHint.Render("↑/↓ state  ←/→ axis  t theme  q quit"))
	return b.String()
}

func (m model) stats() string {
	s := m.styles
	line := func(label, value string) string {
		return s.Label.Render(fmt.Sprintf("%-8s", label)) + s.Value.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(line("state", fmt.Sprintf("%d / %d", m.selected, m.sol.NumStates()-1)))
	b.WriteString(line("E", fmt.Sprintf("%.8f", m.sol.Values[m.selected])))
	if m.selected > 0 {
		b.WriteString(line("E−E₀", fmt.Sprintf("%.6f", m.sol.Values[m.selected]-m.sol.Values[0])))
	}

	if !m.sol.HasVectors() {
		b.WriteString(s.Muted.Render("values only"))
		return b.String()
	}

	axis := fmt.Sprintf("x%d", m.dim)
	if mean, err := analysis.Expectation(m.sol, m.selected, m.dim); err == nil {
		b.WriteString(line("⟨"+axis+"⟩", fmt.Sprintf("%.6f", mean)))
	}
	if dx, err := analysis.Uncertainty(m.sol, m.selected, m.dim); err == nil {
		b.WriteString(line("Δ"+axis, fmt.Sprintf("%.6f", dx)))
	}
	if norm, err := analysis.Norm(m.sol, m.selected); err == nil {
		b.WriteString(line("norm", fmt.Sprintf("%.10f", norm)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RunBrowser opens the state browser full screen.
func RunBrowser(sol *eigensolver.Solution, title string, theme viz.Theme) error {
	if sol.NumStates() == 0 {
		return fmt.Errorf("tui: solution has no states")
	}
	p := tea.NewProgram(NewBrowser(sol, title, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
