// Package update holds the bubbletea model and the key handling for every
// screen. State is exported where tests poke at it; bubble components stay
// unexported and are kept in sync with that state after each update.
package update

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mkr2177/taskdeck/internal/auth"
	"github.com/mkr2177/taskdeck/internal/config"
	"github.com/mkr2177/taskdeck/internal/model"
	"github.com/mkr2177/taskdeck/internal/task"
)

type Screen string

const (
	ScreenLogin     Screen = "Login"
	ScreenDashboard Screen = "Dashboard"
	ScreenTasks     Screen = "Tasks"
	ScreenForm      Screen = "Form"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Tasks     string
	NewTask   string
	Help      string
	Quit      string
}

// Form field indexes, in tab order.
const (
	fieldTitle = iota
	fieldDescription
	fieldCategory
	fieldPriority
	fieldStatus
	fieldUrgent
	fieldDueDate
	fieldCount
)

type LoginState struct {
	Field int
	Err   string
}

// FormState is the create/edit form. EditID zero means a new task.
type FormState struct {
	Draft  model.Draft
	EditID int64
	Field  int
	Err    string
}

type CompletionState struct {
	Active bool
	TaskID int64
	Title  string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Screen          Screen
	Session         *auth.SessionManager
	Tasks           *task.Store
	Cfg             config.Config
	Filter          task.Filter
	Cursor          int
	Login           LoginState
	Form            FormState
	Completion      CompletionState
	Palette         CommandPaletteState
	HelpVisible     bool
	Status          StatusBar
	Keys            GlobalKeyMap
	ConfirmDeleteID int64
	Quitting        bool
	LastError       error

	ctx context.Context

	// Bubble components used for rich TUI controls
	usernameInput textinput.Model
	passwordInput textinput.Model
	titleInput    textinput.Model
	descArea      textarea.Model
	dueDateInput  textinput.Model
	noteInput     textinput.Model
	commandInput  textinput.Model
	pager         paginator.Model
	helpModel     help.Model
}

type SwitchScreenMsg struct {
	Screen Screen
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func New(ctx context.Context, session *auth.SessionManager, tasks *task.Store, cfg config.Config) Model {
	m := Model{
		Screen:  ScreenLogin,
		Session: session,
		Tasks:   tasks,
		Cfg:     cfg,
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Tasks:     "2",
			NewTask:   "n",
			Help:      "?",
			Quit:      "q",
		},
		ctx: ctx,
	}
	if session.IsAuthenticated() {
		m.Screen = ScreenDashboard
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	m.usernameInput = textinput.New()
	m.usernameInput.Prompt = "username> "
	m.usernameInput.CharLimit = 64
	m.usernameInput.Width = 32
	m.usernameInput.Focus()

	m.passwordInput = textinput.New()
	m.passwordInput.Prompt = "password> "
	m.passwordInput.CharLimit = 64
	m.passwordInput.Width = 32
	m.passwordInput.EchoMode = textinput.EchoPassword
	m.passwordInput.EchoCharacter = '*'

	m.titleInput = textinput.New()
	m.titleInput.Prompt = ""
	m.titleInput.CharLimit = 256
	m.titleInput.Width = 48

	m.descArea = textarea.New()
	m.descArea.SetWidth(54)
	m.descArea.SetHeight(4)
	m.descArea.ShowLineNumbers = false
	m.descArea.Placeholder = "What needs doing, and why"

	m.dueDateInput = textinput.New()
	m.dueDateInput.Prompt = ""
	m.dueDateInput.Placeholder = "YYYY-MM-DD"
	m.dueDateInput.CharLimit = 10
	m.dueDateInput.Width = 12

	m.noteInput = textinput.New()
	m.noteInput.Prompt = ""
	m.noteInput.CharLimit = 256
	m.noteInput.Width = 48

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.pager = paginator.New()
	m.pager.Type = paginator.Dots
	m.pager.PerPage = m.Cfg.PageSize
	if m.pager.PerPage < 1 {
		m.pager.PerPage = 1
	}

	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	matches := m.Tasks.List(m.Filter)
	m.pager.SetTotalPages(len(matches))
	if m.pager.Page >= m.pager.TotalPages {
		m.pager.Page = m.pager.TotalPages - 1
	}
	if m.pager.Page < 0 {
		m.pager.Page = 0
	}
	start, end := m.pager.GetSliceBounds(len(matches))
	pageLen := end - start
	if pageLen == 0 {
		m.Cursor = 0
	} else if m.Cursor >= pageLen {
		m.Cursor = pageLen - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}

	if m.Palette.Active {
		m.commandInput.Focus()
	}
	if m.Completion.Active {
		m.noteInput.Focus()
	}
}

// pageTasks returns the current page of the filtered collection plus the
// 1-based display bounds and the match count.
func (m Model) pageTasks() ([]model.Task, int, int, int) {
	matches := m.Tasks.List(m.Filter)
	if len(matches) == 0 {
		return nil, 0, 0, 0
	}
	start, end := m.pager.GetSliceBounds(len(matches))
	return matches[start:end], start + 1, end, len(matches)
}

// selectedTask resolves the cursor to a task on the visible page.
func (m Model) selectedTask() (model.Task, bool) {
	page, _, _, _ := m.pageTasks()
	if m.Cursor < 0 || m.Cursor >= len(page) {
		return model.Task{}, false
	}
	return page[m.Cursor], true
}
