package update

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkr2177/taskdeck/internal/model"
	"github.com/mkr2177/taskdeck/internal/task"
	"github.com/mkr2177/taskdeck/internal/views"
)

// openForm prepares the create form, or the edit form when id is nonzero.
func (m Model) openForm(id int64) Model {
	if id == 0 {
		m.Form = FormState{Draft: model.NewDraft()}
	} else {
		t, err := m.Tasks.Get(id)
		if err != nil {
			m.Status = StatusBar{Text: "task already gone", IsError: true}
			return m
		}
		m.Form = FormState{
			Draft: model.Draft{
				Title:       t.Title,
				Description: t.Description,
				Category:    t.Category,
				Priority:    t.Priority,
				Status:      t.Status,
				IsUrgent:    t.IsUrgent,
				DueDate:     t.DueDate,
			},
			EditID: id,
		}
	}
	m.titleInput.SetValue(m.Form.Draft.Title)
	m.descArea.SetValue(m.Form.Draft.Description)
	m.dueDateInput.SetValue(m.Form.Draft.DueDate)
	m.focusFormField(fieldTitle)
	m.Screen = ScreenForm
	return m
}

func (m *Model) focusFormField(field int) {
	m.Form.Field = field
	m.titleInput.Blur()
	m.descArea.Blur()
	m.dueDateInput.Blur()
	switch field {
	case fieldTitle:
		m.titleInput.Focus()
	case fieldDescription:
		m.descArea.Focus()
	case fieldDueDate:
		m.dueDateInput.Focus()
	}
}

func (m Model) handleFormKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Form = FormState{}
		m.Screen = ScreenTasks
		m.Status = StatusBar{Text: "form cancelled"}
		return m
	case "tab", "down":
		m.focusFormField((m.Form.Field + 1) % fieldCount)
		return m
	case "shift+tab", "up":
		m.focusFormField((m.Form.Field + fieldCount - 1) % fieldCount)
		return m
	case "left":
		return m.cycleFormField(-1)
	case "right":
		return m.cycleFormField(1)
	case "enter":
		if m.Form.Field != fieldDescription {
			return m.submitForm()
		}
	case " ":
		if m.Form.Field == fieldUrgent {
			m.Form.Draft.IsUrgent = !m.Form.Draft.IsUrgent
			return m
		}
	}

	switch m.Form.Field {
	case fieldTitle:
		m.titleInput, _ = m.titleInput.Update(msg)
	case fieldDescription:
		m.descArea, _ = m.descArea.Update(msg)
	case fieldDueDate:
		m.dueDateInput, _ = m.dueDateInput.Update(msg)
	}
	return m
}

func (m Model) cycleFormField(delta int) Model {
	switch m.Form.Field {
	case fieldCategory:
		m.Form.Draft.Category = cycleChoice(model.Categories(), m.Form.Draft.Category, delta)
	case fieldPriority:
		m.Form.Draft.Priority = cycleChoice(model.Priorities(), m.Form.Draft.Priority, delta)
	case fieldStatus:
		m.Form.Draft.Status = cycleChoice(model.Statuses(), m.Form.Draft.Status, delta)
	case fieldUrgent:
		m.Form.Draft.IsUrgent = !m.Form.Draft.IsUrgent
	}
	return m
}

func cycleChoice[T ~string](values []T, current T, delta int) T {
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(values)) % len(values)
	return values[idx]
}

func (m Model) submitForm() Model {
	draft := m.Form.Draft
	draft.Title = m.titleInput.Value()
	draft.Description = m.descArea.Value()
	draft.DueDate = strings.TrimSpace(m.dueDateInput.Value())

	if err := draft.Validate(time.Now()); err != nil {
		m.Form.Err = strings.TrimPrefix(err.Error(), "model: ")
		return m
	}

	if m.Form.EditID == 0 {
		created, err := m.Tasks.Create(m.ctx, draft)
		if err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m
		}
		m.Status = StatusBar{Text: fmt.Sprintf("created task #%d", created.ID)}
	} else {
		updated, err := m.Tasks.Update(m.ctx, m.Form.EditID, task.PatchFromDraft(draft))
		if err != nil {
			if errors.Is(err, task.ErrNotFound) {
				m.Status = StatusBar{Text: "task already gone", IsError: true}
			} else {
				m.LastError = err
				m.Status = StatusBar{Text: err.Error(), IsError: true}
			}
			m.Form = FormState{}
			m.Screen = ScreenTasks
			return m
		}
		m.Status = StatusBar{Text: fmt.Sprintf("updated task #%d", updated.ID)}
	}
	m.Form = FormState{}
	m.Screen = ScreenTasks
	return m
}

func (m Model) renderFormView() string {
	title := "new task"
	if m.Form.EditID != 0 {
		title = fmt.Sprintf("edit task #%d", m.Form.EditID)
	}

	urgent := "no"
	if m.Form.Draft.IsUrgent {
		urgent = "yes"
	}

	fields := []views.FormFieldData{
		{Label: "Title", View: m.titleInput.View()},
		{Label: "Description", View: m.descArea.View()},
		{Label: "Category", View: choiceView(string(m.Form.Draft.Category))},
		{Label: "Priority", View: choiceView(string(m.Form.Draft.Priority))},
		{Label: "Status", View: choiceView(string(m.Form.Draft.Status))},
		{Label: "Urgent", View: choiceView(urgent)},
		{Label: "Due date", View: m.dueDateInput.View()},
	}
	for i := range fields {
		fields[i].Selected = i == m.Form.Field
	}

	return views.RenderFormPanel(views.FormPanelData{
		Title:     title,
		Fields:    fields,
		ErrorText: m.Form.Err,
	})
}

func choiceView(v string) string {
	return "< " + v + " >"
}
