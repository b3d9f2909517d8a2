package update

import (
	"github.com/mkr2177/taskdeck/internal/model"
	"github.com/mkr2177/taskdeck/internal/task"
	"github.com/mkr2177/taskdeck/internal/views"
)

const dashboardSectionLimit = 5

var taskFilterNone task.Filter

func (m Model) renderDashboardView() string {
	stats := m.Tasks.Stats()
	all := m.Tasks.List(taskFilterNone)

	// Most recently added first.
	recent := make([]views.DashboardItemData, 0, dashboardSectionLimit)
	for i := len(all) - 1; i >= 0 && len(recent) < dashboardSectionLimit; i-- {
		recent = append(recent, dashboardItem(all[i]))
	}

	urgent := make([]views.DashboardItemData, 0, dashboardSectionLimit)
	for _, t := range all {
		if !t.IsUrgent || t.Status == model.StatusCompleted {
			continue
		}
		urgent = append(urgent, dashboardItem(t))
		if len(urgent) == dashboardSectionLimit {
			break
		}
	}

	name := ""
	if u, ok := m.Session.Current(); ok {
		name = u.Name
	}

	rate := 0
	if stats.Total > 0 {
		rate = stats.Completed * 100 / stats.Total
	}

	return views.RenderDashboardPanel(views.DashboardPanelData{
		WelcomeName:    name,
		ActiveCount:    stats.Pending + stats.InProgress,
		CompletionRate: rate,
		Cards: []views.StatCardData{
			{Label: "Total", Count: stats.Total},
			{Label: "Completed", Count: stats.Completed},
			{Label: "Pending", Count: stats.Pending},
			{Label: "In Progress", Count: stats.InProgress},
			{Label: "Urgent", Count: stats.Urgent},
		},
		Recent: recent,
		Urgent: urgent,
	})
}

func dashboardItem(t model.Task) views.DashboardItemData {
	return views.DashboardItemData{
		Title:    t.Title,
		Category: string(t.Category),
		Priority: string(t.Priority),
		Status:   string(t.Status),
		DueDate:  t.DueDate,
		IsUrgent: t.IsUrgent,
	}
}
