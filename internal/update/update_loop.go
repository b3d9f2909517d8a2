package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkr2177/taskdeck/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}

		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if m.Completion.Active {
			return m.handleCompletionKey(typed), nil
		}
		if m.ConfirmDeleteID != 0 {
			return m.handleDeleteConfirmKey(typed), nil
		}

		switch m.Screen {
		case ScreenLogin:
			return m.handleLoginKey(typed)
		case ScreenForm:
			return m.handleFormKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Dashboard:
			m.Screen = ScreenDashboard
			return m, nil
		case m.Keys.Tasks:
			m.Screen = ScreenTasks
			return m, nil
		case m.Keys.NewTask:
			return m.openForm(0), nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		if m.Screen == ScreenTasks {
			return m.handleTasksKey(typed), nil
		}
		return m, nil
	case SwitchScreenMsg:
		if isKnownScreen(typed.Screen) {
			m = m.switchScreen(typed.Screen)
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) switchScreen(s Screen) Model {
	if s == ScreenForm {
		return m.openForm(0)
	}
	m.Screen = s
	return m
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	body := ""
	switch m.Screen {
	case ScreenLogin:
		body = m.renderLoginView()
	case ScreenDashboard:
		body = m.renderDashboardView()
	case ScreenTasks:
		body = m.renderTasksView()
	case ScreenForm:
		body = m.renderFormView()
	}
	if m.Completion.Active {
		body = body + "\n\n" + m.renderCompletionView()
	}

	notification := strings.TrimSpace(strings.Join([]string{
		views.RenderCommandPalette(m.Palette.Active, m.commandInput.Value()),
		m.renderHelpIfVisible(),
	}, "\n"))

	user := ""
	if u, ok := m.Session.Current(); ok {
		user = u.Name
	}
	footer := ""
	if m.Screen != ScreenLogin {
		footer = fmt.Sprintf("keys: %s dashboard | %s tasks | %s new | / cmd | %s help | %s quit",
			m.Keys.Dashboard, m.Keys.Tasks, m.Keys.NewTask, m.Keys.Help, m.Keys.Quit)
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("taskdeck | %s | %s", m.Screen, user),
		Body:         body,
		StatusLine:   status,
		Notification: notification,
		Footer:       footer,
		Color:        m.Cfg.Color,
	})
}

func isKnownScreen(s Screen) bool {
	switch s {
	case ScreenLogin, ScreenDashboard, ScreenTasks, ScreenForm:
		return true
	default:
		return false
	}
}
