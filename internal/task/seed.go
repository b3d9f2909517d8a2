package task

import (
	"time"

	"github.com/mkr2177/taskdeck/internal/model"
)

// seedTasks builds the two example tasks written on first run, so a new
// data directory is never an empty screen.
func seedTasks(now time.Time) []model.Task {
	return []model.Task{
		{
			ID:          1,
			Title:       "Finish project proposal",
			Description: "Draft the scope, milestones, and budget sections",
			Category:    model.CategoryWork,
			Priority:    model.PriorityHigh,
			Status:      model.StatusInProgress,
			IsUrgent:    true,
			DueDate:     "2025-08-10",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          2,
			Title:       "Buy groceries",
			Description: "Get milk, bread, eggs, and vegetables",
			Category:    model.CategoryShopping,
			Priority:    model.PriorityMedium,
			Status:      model.StatusPending,
			IsUrgent:    false,
			DueDate:     "2025-08-06",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}
