package views

import (
	"fmt"
	"strings"
)

type LoginPanelData struct {
	UsernameView string
	PasswordView string
	ErrorText    string
}

type StatCardData struct {
	Label string
	Count int
}

type DashboardItemData struct {
	Title    string
	Category string
	Priority string
	Status   string
	DueDate  string
	IsUrgent bool
}

type DashboardPanelData struct {
	WelcomeName    string
	ActiveCount    int
	CompletionRate int
	Cards          []StatCardData
	Recent         []DashboardItemData
	Urgent         []DashboardItemData
}

type TaskRowData struct {
	ID        int64
	Title     string
	Category  string
	Priority  string
	Status    string
	DueDate   string
	IsUrgent  bool
	Completed string
}

type TaskListPanelData struct {
	Rows          []TaskRowData
	Cursor        int
	FilterSummary string
	SearchTerm    string
	PaginatorView string
	PageStart     int
	PageEnd       int
	MatchCount    int
	TotalCount    int
	ConfirmDelete string
}

type FormFieldData struct {
	Label    string
	View     string
	Selected bool
}

type FormPanelData struct {
	Title     string
	Fields    []FormFieldData
	ErrorText string
}

type CompletionModalData struct {
	TaskTitle string
	NoteView  string
}

type HelpPanelData struct {
	Screen   string
	Bindings []string
	HelpView string
	Markdown string
}

func RenderLoginPanel(data LoginPanelData) string {
	var b strings.Builder
	b.WriteString("login:\n")
	b.WriteString(data.UsernameView + "\n")
	b.WriteString(data.PasswordView + "\n")
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	b.WriteString("actions: [tab]switch field [enter]sign in\n")
	b.WriteString("demo accounts: admin/admin123 user/user123 demo/demo123")
	return b.String()
}

func RenderDashboardPanel(data DashboardPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("dashboard: welcome, %s (%d active)\n\n", data.WelcomeName, data.ActiveCount))

	cards := make([]string, 0, len(data.Cards))
	for _, card := range data.Cards {
		cards = append(cards, fmt.Sprintf("[%s: %d]", card.Label, card.Count))
	}
	b.WriteString(strings.Join(cards, " ") + "\n")
	b.WriteString(fmt.Sprintf("completion rate: %d%%\n", data.CompletionRate))

	b.WriteString("\nrecent:\n")
	if len(data.Recent) == 0 {
		b.WriteString("  (no tasks yet)\n")
	}
	for _, item := range data.Recent {
		b.WriteString("  " + renderDashboardItem(item) + "\n")
	}

	b.WriteString("\nurgent:\n")
	if len(data.Urgent) == 0 {
		b.WriteString("  (nothing urgent)\n")
	}
	for _, item := range data.Urgent {
		b.WriteString("  " + renderDashboardItem(item) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderDashboardItem(item DashboardItemData) string {
	badge := " "
	if item.IsUrgent {
		badge = "!"
	}
	line := fmt.Sprintf("%s %s (%s, %s, %s)", badge, item.Title, item.Category, item.Priority, item.Status)
	if item.DueDate != "" {
		line += " due:" + item.DueDate
	}
	return line
}

func RenderTaskListPanel(data TaskListPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString(fmt.Sprintf("filters: %s", data.FilterSummary))
	if data.SearchTerm != "" {
		b.WriteString(fmt.Sprintf(" | search: %q", data.SearchTerm))
	}
	b.WriteString("\n\n")

	if len(data.Rows) == 0 {
		b.WriteString("(no tasks match)\n")
	}
	for i, row := range data.Rows {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		badge := " "
		if row.IsUrgent {
			badge = "!"
		}
		b.WriteString(fmt.Sprintf("%s %s #%d %s [%s/%s/%s]", cursor, badge, row.ID, row.Title, row.Category, row.Priority, row.Status))
		if row.DueDate != "" {
			b.WriteString(" due:" + row.DueDate)
		}
		if row.Completed != "" {
			b.WriteString(" done:" + row.Completed)
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\nshowing %d-%d of %d (total %d)  %s\n", data.PageStart, data.PageEnd, data.MatchCount, data.TotalCount, data.PaginatorView))
	if data.ConfirmDelete != "" {
		b.WriteString(fmt.Sprintf("delete %q? [y]es [any other key]no\n", data.ConfirmDelete))
	}
	b.WriteString("actions: [j/k]move [h/l]page [n]new [e]edit [c]complete [d]delete [/]command")
	return b.String()
}

func RenderFormPanel(data FormPanelData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n\n")
	for _, field := range data.Fields {
		cursor := " "
		if field.Selected {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, field.Label, field.View))
	}
	if data.ErrorText != "" {
		b.WriteString("\nerror: " + data.ErrorText + "\n")
	}
	b.WriteString("\nactions: [tab/shift+tab]field [left/right]cycle value [enter]save [esc]cancel")
	return b.String()
}

func RenderCompletionModal(data CompletionModalData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("complete %q\n", data.TaskTitle))
	b.WriteString("note (optional): " + data.NoteView + "\n")
	b.WriteString("actions: [enter]confirm [esc]cancel")
	return b.String()
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	b.WriteString(fmt.Sprintf("%s screen:\n", strings.ToLower(data.Screen)))
	b.WriteString(strings.Join(data.Bindings, "\n") + "\n")
	b.WriteString(data.HelpView)
	if data.Markdown != "" {
		b.WriteString("\n" + data.Markdown)
	}
	return strings.TrimSpace(b.String())
}
