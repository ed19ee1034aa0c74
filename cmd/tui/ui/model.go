package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rohanvs/tasklink/cmd/tui/client"
)

type View int

const (
	LoginView View = iota
	SignupView
	MenuView
	CreateView
	TasksView
	UsersView
)

// authSuccessMsg is emitted by both the login and signup screens once the
// service has issued a token.
type authSuccessMsg struct {
	token  string
	userID string
	email  string
}

type Model struct {
	currentView View
	login       *LoginModel
	signup      *SignupModel
	menu        *MenuModel
	create      *CreateModel
	tasks       *TasksModel
	users       *UsersModel
	client      *client.Client
	width       int
	height      int

	isAuthenticated bool
	userEmail       string
}

func NewModel(apiClient *client.Client) Model {
	return Model{
		currentView: LoginView,
		login:       NewLoginModel(apiClient),
		signup:      NewSignupModel(apiClient),
		menu:        NewMenuModel(),
		create:      NewCreateModel(apiClient),
		tasks:       NewTasksModel(apiClient),
		users:       NewUsersModel(apiClient),
		client:      apiClient,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case authSuccessMsg:
		m.isAuthenticated = true
		m.userEmail = msg.email
		m.client.SetAuth(msg.token, msg.userID)
		m.currentView = MenuView
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.currentView == MenuView || m.currentView == LoginView || m.currentView == SignupView {
				return m, tea.Quit
			}
			m.currentView = MenuView
			return m, nil

		case "ctrl+s":
			// Toggle between login and signup
			if m.currentView == LoginView {
				m.currentView = SignupView
				return m, nil
			} else if m.currentView == SignupView {
				m.currentView = LoginView
				return m, nil
			}
		}
	}

	switch m.currentView {
	case LoginView:
		updated, cmd := m.login.Update(msg)
		m.login = updated.(*LoginModel)
		return m, cmd

	case SignupView:
		updated, cmd := m.signup.Update(msg)
		m.signup = updated.(*SignupModel)
		return m, cmd

	case MenuView:
		updated, cmd := m.menu.Update(msg)
		m.menu = updated.(*MenuModel)
		if m.menu.selected != -1 {
			switch m.menu.selected {
			case 0:
				m.currentView = CreateView
			case 1:
				m.currentView = TasksView
				m.tasks.loaded = false
			case 2:
				m.currentView = UsersView
				m.users.loaded = false
			}
			m.menu.selected = -1
		}
		return m, cmd

	case CreateView:
		updated, cmd := m.create.Update(msg)
		m.create = updated.(*CreateModel)
		return m, cmd

	case TasksView:
		updated, cmd := m.tasks.Update(msg)
		m.tasks = updated.(*TasksModel)
		return m, cmd

	case UsersView:
		updated, cmd := m.users.Update(msg)
		m.users = updated.(*UsersModel)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	var statusBar string
	if m.isAuthenticated && m.currentView != LoginView && m.currentView != SignupView {
		who := lipgloss.NewStyle().Foreground(Success).Render(m.userEmail)
		statusBar = lipgloss.NewStyle().
			Width(80).
			Align(lipgloss.Left).
			Background(BgDark).
			Padding(0, 2).
			Render(who)
	}

	var mainContent string
	switch m.currentView {
	case LoginView:
		mainContent = m.login.View()
	case SignupView:
		mainContent = m.signup.View()
	case MenuView:
		mainContent = m.menu.View()
	case CreateView:
		mainContent = m.create.View()
	case TasksView:
		mainContent = m.tasks.View()
	case UsersView:
		mainContent = m.users.View()
	}

	if statusBar != "" {
		return lipgloss.JoinVertical(lipgloss.Left, statusBar, "\n", mainContent)
	}
	return mainContent
}
