package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rohanvs/tasklink/cmd/tui/client"
)

type listUsersSuccessMsg struct {
	users []client.UserItem
}

type listUsersErrorMsg struct {
	err error
}

type UsersModel struct {
	users   []client.UserItem
	cursor  int
	loading bool
	err     error
	client  *client.Client
	loaded  bool
}

func NewUsersModel(c *client.Client) *UsersModel {
	return &UsersModel{client: c}
}

func (m *UsersModel) Init() tea.Cmd {
	return nil
}

func listUsersCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		users, err := c.ListUsers()
		if err != nil {
			return listUsersErrorMsg{err: err}
		}
		return listUsersSuccessMsg{users: users}
	}
}

func (m *UsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listUsersSuccessMsg:
		m.loading = false
		m.users = msg.users
		m.err = nil
		m.loaded = true
		return m, nil

	case listUsersErrorMsg:
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
			if m.cursor < len(m.users)-1 {
				m.cursor++
			}
		case "r":
			if !m.loading {
				m.loading = true
				return m, listUsersCmd(m.client)
			}
		}
	}

	if !m.loaded && !m.loading {
		m.loading = true
		return m, listUsersCmd(m.client)
	}

	return m, nil
}

func (m *UsersModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Render("TEAM MEMBERS")

	b.WriteString(centered(title))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(centered(InfoStyle.Render("Loading users...")))
	case m.err != nil:
		b.WriteString(centered(ErrorStyle.Render(m.err.Error())))
	case len(m.users) == 0:
		b.WriteString(centered(InfoStyle.Render("No users registered.")))
	default:
		var rows []string
		for i, u := range m.users {
			cursor := "  "
			style := ItemStyle
			if i == m.cursor {
				cursor = "> "
				style = SelectedItemStyle
			}
			rows = append(rows, style.Render(fmt.Sprintf("%s%s (%d tasks)", cursor, u.Email, len(u.Tasks))))
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
