package ui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ZacxDev/prereq/planner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/dedent"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	tea "github.com/charmbracelet/bubbletea"
)

type action int

const (
	actionLoad action = iota
	actionList
	actionCourse
	actionSchedule
	actionTerms
	actionTree
	actionExit
)

type menuItem struct {
	label  string
	action action
}

var menu = []menuItem{
	{"Load data structure", actionLoad},
	{"Print course list", actionList},
	{"Print course", actionCourse},
	{"Print schedule", actionSchedule},
	{"Print terms", actionTerms},
	{"Print tree", actionTree},
	{"Exit", actionExit},
}

var help = strings.TrimSpace(dedent.Dedent(`
	up/down or j/k to navigate, enter or 1-7 to select
	pgup/pgdown to scroll output, q to quit
`))

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

type treeLoadedMsg struct {
	err error
}

// Model is the interactive course planner menu.
type Model struct {
	planner *planner.Planner
	logger  *zap.Logger

	selectedIdx int
	prompting   bool
	loading     bool
	done        bool

	input  textinput.Model
	output viewport.Model
	status string
	failed bool
}

func New(p *planner.Planner, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = "CSCI200"
	input.Prompt = "Course number: "
	input.CharLimit = 64

	return &Model{
		planner: p,
		logger:  logger,
		input:   input,
		output:  viewport.New(80, 20),
	}
}

// Run starts the menu and blocks until the user exits.
func Run(p *planner.Planner, logger *zap.Logger, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(p, logger), opts...).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			return m, tea.Quit
		}
		if m.prompting {
			return m.updatePrompt(msg)
		}

		switch msg.String() {
		case "q":
			m.done = true
			return m, tea.Quit
		case "up", "k":
			m.selectedIdx = (m.selectedIdx - 1 + len(menu)) % len(menu)
		case "down", "j":
			m.selectedIdx = (m.selectedIdx + 1) % len(menu)
		case "enter", " ":
			return m.run(menu[m.selectedIdx].action)
		case "pgup", "pgdown":
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		default:
			if len(msg.Runes) == 1 && msg.Runes[0] >= '1' && int(msg.Runes[0]-'0') <= len(menu) {
				m.selectedIdx = int(msg.Runes[0] - '1')
				return m.run(menu[m.selectedIdx].action)
			}
		}
	case tea.WindowSizeMsg:
		m.output.Width = msg.Width
		m.output.Height = max(msg.Height-len(menu)-6, 3)
	case treeLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.fail(msg.err)
		} else {
			m.succeed("Data structure loaded.")
		}
	}

	return m, nil
}

func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompting = false
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case "enter":
		number := strings.ToUpper(strings.TrimSpace(m.input.Value()))
		m.prompting = false
		m.input.Blur()
		m.input.Reset()
		if number == "" {
			m.fail(errors.New("no course number entered"))
			return m, nil
		}
		m.show(func(buf *bytes.Buffer) error {
			return PrintCourse(buf, m.planner, number)
		})
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// run performs a menu action. While the tree is being built in the
// background the planner belongs to that command, so every action except
// Exit is refused until treeLoadedMsg arrives.
func (m *Model) run(a action) (tea.Model, tea.Cmd) {
	if m.loading && a != actionExit {
		m.status = "Still loading the data structure, please wait."
		m.failed = true
		return m, nil
	}

	switch a {
	case actionLoad:
		m.loading = true
		m.status = "Loading..."
		m.failed = false
		return m, m.buildTree
	case actionList:
		m.show(func(buf *bytes.Buffer) error { return PrintCourseList(buf, m.planner) })
	case actionCourse:
		m.prompting = true
		return m, m.input.Focus()
	case actionSchedule:
		m.show(func(buf *bytes.Buffer) error { return PrintSchedule(buf, m.planner) })
	case actionTerms:
		m.show(func(buf *bytes.Buffer) error { return PrintTerms(buf, m.planner) })
	case actionTree:
		m.show(func(buf *bytes.Buffer) error { return m.planner.RenderTree(buf) })
	case actionExit:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) buildTree() tea.Msg {
	return treeLoadedMsg{err: m.planner.BuildTree()}
}

func (m *Model) show(render func(buf *bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		m.fail(err)
		return
	}
	m.status = ""
	m.failed = false
	m.output.SetContent(buf.String())
	m.output.GotoTop()
}

func (m *Model) succeed(status string) {
	m.status = status
	m.failed = false
}

func (m *Model) fail(err error) {
	m.logger.Debug("menu action failed", zap.Error(err))
	m.status = err.Error()
	m.failed = true
	m.output.SetContent("")
}

func (m *Model) View() string {
	if m.done {
		return "Thank you for using the course planner!\n"
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Course Planner"))
	sb.WriteString("\n\n")

	for i, item := range menu {
		line := fmt.Sprintf("%d. %s", i+1, item.label)
		if i == m.selectedIdx {
			sb.WriteString(selectedStyle.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}

	if m.prompting {
		sb.WriteString("\n")
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
	}

	if m.status != "" {
		sb.WriteString("\n")
		if m.failed {
			sb.WriteString(errorStyle.Render(m.status))
		} else {
			sb.WriteString(successStyle.Render(m.status))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.output.View())
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render(help))
	return sb.String()
}
