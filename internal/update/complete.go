package update

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkr2177/taskdeck/internal/task"
	"github.com/mkr2177/taskdeck/internal/views"
)

func (m Model) handleCompletionKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Completion = CompletionState{}
		m.noteInput.SetValue("")
		m.noteInput.Blur()
		m.Status = StatusBar{Text: "completion cancelled"}
		return m
	case "enter":
		id := m.Completion.TaskID
		note := m.noteInput.Value()
		m.Completion = CompletionState{}
		m.noteInput.SetValue("")
		m.noteInput.Blur()
		done, err := m.Tasks.Complete(m.ctx, id, note)
		if err != nil {
			if errors.Is(err, task.ErrNotFound) {
				m.Status = StatusBar{Text: "task already gone", IsError: true}
				return m
			}
			m.LastError = err
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m
		}
		m.Status = StatusBar{Text: fmt.Sprintf("completed task #%d", done.ID)}
		return m
	}

	m.noteInput, _ = m.noteInput.Update(msg)
	return m
}

func (m Model) renderCompletionView() string {
	return views.RenderCompletionModal(views.CompletionModalData{
		TaskTitle: m.Completion.Title,
		NoteView:  m.noteInput.View(),
	})
}
