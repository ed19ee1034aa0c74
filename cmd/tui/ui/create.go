package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rohanvs/tasklink/cmd/tui/client"
)

type createTaskSuccessMsg struct {
	name string
}

type createTaskErrorMsg struct {
	err error
}

type CreateModel struct {
	nameInput string
	loading   bool
	result    string
	err       error
	client    *client.Client
}

func NewCreateModel(c *client.Client) *CreateModel {
	return &CreateModel{client: c}
}

func (m *CreateModel) Init() tea.Cmd {
	return nil
}

func createTaskCmd(c *client.Client, name string) tea.Cmd {
	return func() tea.Msg {
		task, err := c.CreateTask(name)
		if err != nil {
			return createTaskErrorMsg{err: err}
		}
		return createTaskSuccessMsg{name: task.Name}
	}
}

func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case createTaskSuccessMsg:
		m.loading = false
		m.err = nil
		m.result = msg.name
		m.nameInput = ""
		return m, nil

	case createTaskErrorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "enter":
			if strings.TrimSpace(m.nameInput) == "" {
				m.err = fmt.Errorf("task name cannot be empty")
				return m, nil
			}

			m.loading = true
			m.err = nil
			m.result = ""
			return m, createTaskCmd(m.client, m.nameInput)
		case "backspace":
			if len(m.nameInput) > 0 {
				m.nameInput = m.nameInput[:len(m.nameInput)-1]
			}
		case "ctrl+l":
			m.nameInput = ""
			m.result = ""
			m.err = nil
		default:
			if len(msg.String()) == 1 || msg.String() == " " {
				m.nameInput += msg.String()
			}
		}
	}
	return m, nil
}

func (m *CreateModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Render("CREATE TASK")

	b.WriteString(centered(title))
	b.WriteString("\n\n")

	b.WriteString(centered(inputField("Task name:", m.nameInput, true)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(centered(InfoStyle.Render("Saving...")))
		b.WriteString("\n")
	}

	if m.result != "" {
		b.WriteString(centered(SuccessStyle.Render("Created: " + m.result)))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(centered(ErrorStyle.Render(m.err.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centered(InfoStyle.Render("enter create  •  ctrl+l clear  •  q back")))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(2, 4).
		Width(76).
		Render(b.String())
}
