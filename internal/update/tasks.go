package update

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkr2177/taskdeck/internal/model"
	"github.com/mkr2177/taskdeck/internal/task"
	"github.com/mkr2177/taskdeck/internal/views"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) Model {
	page, _, _, _ := m.pageTasks()

	switch msg.String() {
	case "j", "down":
		if m.Cursor < len(page)-1 {
			m.Cursor++
		}
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "h", "left":
		m.pager.PrevPage()
		m.Cursor = 0
	case "l", "right":
		m.pager.NextPage()
		m.Cursor = 0
	case "e":
		if t, ok := m.selectedTask(); ok {
			return m.openForm(t.ID)
		}
	case "c":
		if t, ok := m.selectedTask(); ok {
			m.Completion = CompletionState{Active: true, TaskID: t.ID, Title: t.Title}
			m.noteInput.SetValue("")
			m.noteInput.Focus()
		}
	case "d":
		if t, ok := m.selectedTask(); ok {
			m.ConfirmDeleteID = t.ID
		}
	}
	return m
}

func (m Model) handleDeleteConfirmKey(msg tea.KeyMsg) Model {
	id := m.ConfirmDeleteID
	m.ConfirmDeleteID = 0
	if msg.String() != "y" {
		m.Status = StatusBar{Text: "delete cancelled"}
		return m
	}
	if err := m.Tasks.Delete(m.ctx, id); err != nil {
		if errors.Is(err, task.ErrNotFound) {
			m.Status = StatusBar{Text: "task already gone", IsError: true}
			return m
		}
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: fmt.Sprintf("deleted task #%d", id)}
	return m
}

func (m Model) renderTasksView() string {
	page, start, end, matches := m.pageTasks()

	rows := make([]views.TaskRowData, 0, len(page))
	for _, t := range page {
		completed := ""
		if t.CompletedAt != nil {
			completed = t.CompletedAt.Format(m.Cfg.DateFormat)
		}
		rows = append(rows, views.TaskRowData{
			ID:        t.ID,
			Title:     t.Title,
			Category:  string(t.Category),
			Priority:  string(t.Priority),
			Status:    string(t.Status),
			DueDate:   t.DueDate,
			IsUrgent:  t.IsUrgent,
			Completed: completed,
		})
	}

	confirm := ""
	if m.ConfirmDeleteID != 0 {
		if t, err := m.Tasks.Get(m.ConfirmDeleteID); err == nil {
			confirm = t.Title
		}
	}

	return views.RenderTaskListPanel(views.TaskListPanelData{
		Rows:          rows,
		Cursor:        m.Cursor,
		FilterSummary: m.filterSummary(),
		SearchTerm:    m.Filter.Search,
		PaginatorView: m.pager.View(),
		PageStart:     start,
		PageEnd:       end,
		MatchCount:    matches,
		TotalCount:    m.Tasks.Stats().Total,
		ConfirmDelete: confirm,
	})
}

func (m Model) filterSummary() string {
	parts := []string{
		"category=" + orAll(string(m.Filter.Category)),
		"status=" + orAll(string(m.Filter.Status)),
		"priority=" + orAll(string(m.Filter.Priority)),
	}
	if m.Filter.IsUrgent != nil {
		if *m.Filter.IsUrgent {
			parts = append(parts, "urgent=on")
		} else {
			parts = append(parts, "urgent=off")
		}
	}
	return strings.Join(parts, " ")
}

func orAll(v string) string {
	if v == "" {
		return "All"
	}
	return v
}

// applyFilterField maps a palette filter argument onto the typed filter
// field, accepting "all" (any case) as the clear sentinel.
func (m Model) applyFilterField(field, value string) (Model, error) {
	clearField := strings.EqualFold(value, "all")
	switch field {
	case "category":
		c := model.Category(value)
		if !clearField && !c.IsValid() {
			return m, fmt.Errorf("unknown category: %s", value)
		}
		m.Filter.Category = c
		if clearField {
			m.Filter.Category = ""
		}
	case "status":
		st := model.Status(value)
		if !clearField && !st.IsValid() {
			return m, fmt.Errorf("unknown status: %s", value)
		}
		m.Filter.Status = st
		if clearField {
			m.Filter.Status = ""
		}
	case "priority":
		p := model.Priority(value)
		if !clearField && !p.IsValid() {
			return m, fmt.Errorf("unknown priority: %s", value)
		}
		m.Filter.Priority = p
		if clearField {
			m.Filter.Priority = ""
		}
	}
	m.pager.Page = 0
	m.Cursor = 0
	return m, nil
}
