package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rohanvs/tasklink/cmd/tui/client"
)

type listTasksSuccessMsg struct {
	tasks []client.TaskItem
}

type listTasksErrorMsg struct {
	err error
}

type TasksModel struct {
	tasks   []client.TaskItem
	cursor  int
	loading bool
	err     error
	client  *client.Client
	loaded  bool
}

func NewTasksModel(c *client.Client) *TasksModel {
	return &TasksModel{client: c}
}

func (m *TasksModel) Init() tea.Cmd {
	return nil
}

func listTasksCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		tasks, err := c.ListTasks()
		if err != nil {
			return listTasksErrorMsg{err: err}
		}
		return listTasksSuccessMsg{tasks: tasks}
	}
}

func (m *TasksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listTasksSuccessMsg:
		m.loading = false
		m.tasks = msg.tasks
		m.err = nil
		m.loaded = true
		return m, nil

	case listTasksErrorMsg:
		m.loading = false
		m.err = msg.err
		m.loaded = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case "r":
			if !m.loading {
				m.loading = true
				return m, listTasksCmd(m.client)
			}
		}
	}

	// Auto-load on first view
	if !m.loaded && !m.loading {
		m.loading = true
		return m, listTasksCmd(m.client)
	}

	return m, nil
}

func (m *TasksModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Render("MY TASKS")

	b.WriteString(centered(title))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(centered(InfoStyle.Render("Loading tasks...")))
	case m.err != nil:
		b.WriteString(centered(ErrorStyle.Render(m.err.Error())))
	case len(m.tasks) == 0:
		b.WriteString(centered(InfoStyle.Render("No tasks yet. Create one from the menu.")))
	default:
		var rows []string
		for i, task := range m.tasks {
			cursor := "  "
			style := ItemStyle
			if i == m.cursor {
				cursor = "> "
				style = SelectedItemStyle
			}
			rows = append(rows, style.Render(fmt.Sprintf("%s%s", cursor, task.Name)))
		}
		list := lipgloss.JoinVertical(lipgloss.Left, rows...)
		b.WriteString(centered(BoxStyle.Width(60).Render(list)))
	}

	b.WriteString("\n\n")
	b.WriteString(centered(InfoStyle.Render("↑/↓ navigate  •  r refresh  •  q back")))

	return lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(2).
		Render(b.String())
}
