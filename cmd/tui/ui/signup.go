package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rohanvs/tasklink/cmd/tui/client"
)

type signupErrorMsg struct {
	err error
}

type SignupModel struct {
	emailInput    string
	passwordInput string
	confirmInput  string
	focusedInput  int
	loading       bool
	err           error
	client        *client.Client
}

func NewSignupModel(c *client.Client) *SignupModel {
	return &SignupModel{client: c}
}

func (m *SignupModel) Init() tea.Cmd {
	return nil
}

// signupCmd registers and then logs in, since registration alone does not
// issue a token.
func signupCmd(c *client.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		if _, err := c.Register(email, password); err != nil {
			return signupErrorMsg{err: err}
		}

		resp, err := c.Login(email, password)
		if err != nil {
			return signupErrorMsg{err: err}
		}

		return authSuccessMsg{
			token:  resp.Token,
			userID: resp.UserID,
			email:  resp.Email,
		}
	}
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authSuccessMsg:
		m.loading = false
		m.err = nil
		return m, nil

	case signupErrorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "tab", "shift+tab":
			m.focusedInput = (m.focusedInput + 1) % 3
		case "enter":
			if m.emailInput == "" {
				m.err = fmt.Errorf("email cannot be empty")
				return m, nil
			}
			if len(m.passwordInput) < 6 {
				m.err = fmt.Errorf("password must be at least 6 characters")
				return m, nil
			}
			if m.passwordInput != m.confirmInput {
				m.err = fmt.Errorf("passwords do not match")
				return m, nil
			}

			m.loading = true
			m.err = nil
			return m, signupCmd(m.client, m.emailInput, m.passwordInput)
		case "backspace":
			switch m.focusedInput {
			case 0:
				if len(m.emailInput) > 0 {
					m.emailInput = m.emailInput[:len(m.emailInput)-1]
				}
			case 1:
				if len(m.passwordInput) > 0 {
					m.passwordInput = m.passwordInput[:len(m.passwordInput)-1]
				}
			case 2:
				if len(m.confirmInput) > 0 {
					m.confirmInput = m.confirmInput[:len(m.confirmInput)-1]
				}
			}
		case "ctrl+l":
			m.emailInput = ""
			m.passwordInput = ""
			m.confirmInput = ""
			m.err = nil
		default:
			if len(msg.String()) == 1 {
				switch m.focusedInput {
				case 0:
					m.emailInput += msg.String()
				case 1:
					m.passwordInput += msg.String()
				case 2:
					m.confirmInput += msg.String()
				}
			}
		}
	}
	return m, nil
}

func (m *SignupModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Render("SIGN UP")

	subtitle := lipgloss.NewStyle().
		Foreground(Muted).
		Render("Create an account to start tracking tasks.")

	b.WriteString(centered(title))
	b.WriteString("\n")
	b.WriteString(centered(subtitle))
	b.WriteString("\n\n")

	b.WriteString(centered(inputField("Email:", m.emailInput, m.focusedInput == 0)))
	b.WriteString("\n\n")
	b.WriteString(centered(inputField("Password:", strings.Repeat("•", len(m.passwordInput)), m.focusedInput == 1)))
	b.WriteString("\n\n")
	b.WriteString(centered(inputField("Confirm:", strings.Repeat("•", len(m.confirmInput)), m.focusedInput == 2)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(centered(InfoStyle.Render("Creating account...")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(centered(ErrorStyle.Render(m.err.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("tab switch  •  enter sign up  •  ctrl+l clear  •  ctrl+s login  •  q quit")
	b.WriteString(centered(help))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(2, 4).
		Width(76).
		Render(b.String())
}
