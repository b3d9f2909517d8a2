package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkr2177/taskdeck/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		m.commandInput, _ = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Filter: func(a commands.FilterArgs) (commands.Result, error) {
			next, err := m.applyFilterField(a.Field, a.Value)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m = next
			m.Screen = ScreenTasks
			return commands.Result{Message: fmt.Sprintf("filter applied: %s=%s", a.Field, a.Value)}, nil
		},
		Search: func(a commands.SearchArgs) (commands.Result, error) {
			m.Filter.Search = a.Term
			m.pager.Page = 0
			m.Cursor = 0
			m.Screen = ScreenTasks
			return commands.Result{Message: fmt.Sprintf("searching for %q", a.Term)}, nil
		},
		Urgent: func(a commands.UrgentArgs) (commands.Result, error) {
			switch a.Mode {
			case "on":
				v := true
				m.Filter.IsUrgent = &v
			case "off":
				v := false
				m.Filter.IsUrgent = &v
			default:
				m.Filter.IsUrgent = nil
			}
			m.pager.Page = 0
			m.Cursor = 0
			m.Screen = ScreenTasks
			return commands.Result{Message: "urgency filter: " + a.Mode}, nil
		},
		Clear: func() (commands.Result, error) {
			m.Filter = taskFilterNone
			m.pager.Page = 0
			m.Cursor = 0
			return commands.Result{Message: "filters cleared"}, nil
		},
		Goto: func(a commands.GotoArgs) (commands.Result, error) {
			switch a.Screen {
			case "dashboard":
				m.Screen = ScreenDashboard
			case "tasks":
				m.Screen = ScreenTasks
			case "form", "new":
				m = m.openForm(0)
			default:
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown screen: %s", a.Screen)}
			}
			return commands.Result{Message: "switched to " + a.Screen}, nil
		},
		Logout: func() (commands.Result, error) {
			m = m.logout()
			if m.Status.IsError {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: m.Status.Text}
			}
			return commands.Result{Message: "signed out"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}
