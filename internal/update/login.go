package update

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkr2177/taskdeck/internal/auth"
	"github.com/mkr2177/taskdeck/internal/views"
)

const (
	loginFieldUsername = 0
	loginFieldPassword = 1
)

func (m Model) handleLoginKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		if m.Login.Field == loginFieldUsername {
			m.Login.Field = loginFieldPassword
			m.usernameInput.Blur()
			m.passwordInput.Focus()
		} else {
			m.Login.Field = loginFieldUsername
			m.passwordInput.Blur()
			m.usernameInput.Focus()
		}
		return m, nil
	case "enter":
		return m.submitLogin(), nil
	}

	var cmd tea.Cmd
	if m.Login.Field == loginFieldUsername {
		m.usernameInput, cmd = m.usernameInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submitLogin() Model {
	user, err := m.Session.Login(m.ctx, m.usernameInput.Value(), m.passwordInput.Value())
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			m.Login.Err = "invalid username or password"
			m.passwordInput.SetValue("")
			return m
		}
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Login = LoginState{}
	m.usernameInput.SetValue("")
	m.passwordInput.SetValue("")
	m.Screen = ScreenDashboard
	m.Status = StatusBar{Text: fmt.Sprintf("signed in as %s", user.Name)}
	return m
}

func (m Model) logout() Model {
	if err := m.Session.Logout(m.ctx); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Screen = ScreenLogin
	m.Login = LoginState{}
	m.Filter = taskFilterNone
	m.Cursor = 0
	m.usernameInput.Focus()
	m.passwordInput.Blur()
	m.Status = StatusBar{Text: "signed out"}
	return m
}

func (m Model) renderLoginView() string {
	return views.RenderLoginPanel(views.LoginPanelData{
		UsernameView: m.usernameInput.View(),
		PasswordView: m.passwordInput.View(),
		ErrorText:    m.Login.Err,
	})
}
