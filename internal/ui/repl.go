package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Evaluator turns one input line into rendered output; failed reports
// whether the line produced a classified failure so history can style it.
type Evaluator func(input string) (output string, failed bool)

// historyLimit bounds how many past evaluations the view keeps.
const historyLimit = 256

type historyItem struct {
	input  string
	output string
	failed bool
}

type replModel struct {
	title   string
	input   textinput.Model
	history []historyItem
	eval    Evaluator
	width   int
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// NewReplModel returns a Bubble Tea model implementing the interactive
// checked calculator.
func NewReplModel(title string, eval Evaluator) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "int8(100) + int8(27)"
	ti.Prompt = promptStyle.Render("> ")
	ti.Focus()
	return &replModel{title: title, input: ti, eval: eval, width: 80}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			if line == "" {
				return m, nil
			}
			out, failed := m.eval(line)
			m.history = append(m.history, historyItem{input: line, output: out, failed: failed})
			if len(m.history) > historyLimit {
				m.history = m.history[len(m.history)-historyLimit:]
			}
			m.input.Reset()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	// show as much history as a screenful allows
	visible := m.history
	if len(visible) > 16 {
		visible = visible[len(visible)-16:]
	}
	for _, item := range visible {
		b.WriteString(dimStyle.Render("> " + m.fit(item.input)))
		b.WriteByte('\n')
		if item.failed {
			b.WriteString(errStyle.Render(m.fit(item.output)))
		} else {
			b.WriteString(okStyle.Render(m.fit(item.output)))
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter to evaluate, esc to quit"))
	b.WriteString("\n")
	return b.String()
}

// fit truncates a line to the terminal width, rune-width aware.
func (m *replModel) fit(s string) string {
	if m.width <= 1 {
		return s
	}
	return runewidth.Truncate(s, m.width-1, "…")
}
