package model

import (
	"errors"
	"strings"
	"time"
)

const (
	minTitleLen       = 3
	minDescriptionLen = 10
)

var (
	ErrTitleRequired       = errors.New("model: title is required")
	ErrTitleTooShort       = errors.New("model: title must be at least 3 characters long")
	ErrDescriptionRequired = errors.New("model: description is required")
	ErrDescriptionTooShort = errors.New("model: description must be at least 10 characters long")
	ErrDueDateMalformed    = errors.New("model: due date must be a YYYY-MM-DD date")
	ErrDueDateInPast       = errors.New("model: due date cannot be in the past")
)

// Draft is an unsaved set of task fields submitted for creation or update.
// Validation lives here, on the presentation side of the store boundary: the
// task store accepts any well-typed draft without checking it.
type Draft struct {
	Title       string
	Description string
	Category    Category
	Priority    Priority
	Status      Status
	IsUrgent    bool
	DueDate     string
}

// NewDraft returns a draft with the form's default selections.
func NewDraft() Draft {
	return Draft{
		Category: CategoryWork,
		Priority: PriorityMedium,
		Status:   StatusPending,
	}
}

// Validate applies the form rules: title and description length after
// trimming, and the due date, when present, not before today.
func (d Draft) Validate(today time.Time) error {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return ErrTitleRequired
	}
	if len([]rune(title)) < minTitleLen {
		return ErrTitleTooShort
	}
	desc := strings.TrimSpace(d.Description)
	if desc == "" {
		return ErrDescriptionRequired
	}
	if len([]rune(desc)) < minDescriptionLen {
		return ErrDescriptionTooShort
	}
	if d.DueDate != "" {
		due, err := time.Parse(DueDateLayout, d.DueDate)
		if err != nil {
			return ErrDueDateMalformed
		}
		midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
		if due.Before(midnight) {
			return ErrDueDateInPast
		}
	}
	return nil
}

// Trimmed returns a copy with title and description trimmed, matching what
// the form submits to the store.
func (d Draft) Trimmed() Draft {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	return d
}
