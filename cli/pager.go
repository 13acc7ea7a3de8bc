package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/samber/lo"
)

var (
	matchStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("228")). // yellow
			Foreground(lipgloss.Color("0"))    // black

	currentMatchStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("196")). // red
				Foreground(lipgloss.Color("15"))   // white

	pagerHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(2)
)

// pagerModel shows rendered menus in a scrollable viewport with line search
type pagerModel struct {
	viewport viewport.Model
	ready    bool

	lines []string // rendered lines as printed
	plain []string // the same lines without styling, used for search

	searching bool
	input     textinput.Model
	matches   []int // indexes into lines
	current   int
}

func newPager(content string) *pagerModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	return &pagerModel{
		lines: lines,
		plain: lo.Map(lines, func(l string, _ int) string { return ansi.Strip(l) }),
		input: ti,
	}
}

func (m *pagerModel) Init() tea.Cmd {
	return nil
}

func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.clearSearch()
		case "/":
			m.searching = true
			m.input.Focus()
			return m, textinput.Blink
		case "n":
			m.jump(1)
		case "N":
			m.jump(-1)
		case "g", "home":
			m.viewport.GotoTop()
		case "G", "end":
			m.viewport.GotoBottom()
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-1)
			m.ready = true
			m.refresh()
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 1
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *pagerModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.input.Blur()
		m.clearSearch()
		return m, nil
	case tea.KeyEnter:
		m.searching = false
		m.input.Blur()
		m.search(m.input.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *pagerModel) View() string {
	if !m.ready {
		return "\nInitializing..."
	}

	if m.searching {
		return m.viewport.View() + "\n" + m.input.View()
	}

	help := "↑/k up • ↓/j down • g top • G bottom • / search • q quit"
	if len(m.matches) > 0 {
		help = fmt.Sprintf("↑/k up • ↓/j down • / search (%d/%d) • n next • N previous • q quit",
			m.current+1, len(m.matches))
	}
	return m.viewport.View() + "\n" + pagerHelpStyle.Render(help)
}

// search collects the lines containing query. Lower case queries match case-insensitively.
func (m *pagerModel) search(query string) {
	m.matches = nil
	m.current = 0
	if query == "" {
		m.refresh()
		return
	}

	fold := strings.ToLower(query) == query
	for i, line := range m.plain {
		if fold {
			line = strings.ToLower(line)
		}
		if strings.Contains(line, query) {
			m.matches = append(m.matches, i)
		}
	}

	m.refresh()
	m.scrollToCurrent()
}

// jump moves the current match by delta, wrapping around
func (m *pagerModel) jump(delta int) {
	if len(m.matches) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.matches)) % len(m.matches)
	m.refresh()
	m.scrollToCurrent()
}

func (m *pagerModel) clearSearch() {
	m.input.Reset()
	m.matches = nil
	m.current = 0
	m.refresh()
}

// refresh renders the content with matched lines highlighted
func (m *pagerModel) refresh() {
	if !m.ready {
		return
	}
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	for i, idx := range m.matches {
		if i == m.current {
			out[idx] = currentMatchStyle.Render(m.plain[idx])
		} else {
			out[idx] = matchStyle.Render(m.plain[idx])
		}
	}
	m.viewport.SetContent(strings.Join(out, "\n"))
}

func (m *pagerModel) scrollToCurrent() {
	if len(m.matches) == 0 {
		return
	}
	line := m.matches[m.current]
	if line < m.viewport.YOffset || line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(max(0, line-m.viewport.Height/2))
	}
}

// RunPager shows content in a full screen pager until the user quits
func RunPager(content string) error {
	p := tea.NewProgram(
		newPager(content),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
