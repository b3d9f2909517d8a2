// Package task owns the mutable task collection. The whole collection is
// the unit of persistence: every mutating call re-serializes it to the
// tasks storage slot before returning.
package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mkr2177/taskdeck/internal/model"
	"github.com/mkr2177/taskdeck/internal/storage"
)

var ErrNotFound = errors.New("task: not found")

// Store holds the in-memory collection and mirrors it to the tasks slot.
// Single actor, fully synchronous; no locking by design.
type Store struct {
	slots  storage.SlotStore
	tasks  []model.Task
	lastID int64
	now    func() time.Time
}

// Open loads the collection from the tasks slot. An absent slot seeds two
// example tasks and persists them immediately.
func Open(ctx context.Context, slots storage.SlotStore) (*Store, error) {
	s := &Store{slots: slots, now: time.Now}
	raw, err := slots.GetSlot(ctx, storage.SlotTasks)
	if err != nil {
		if !errors.Is(err, storage.ErrNoSlot) {
			return nil, fmt.Errorf("task: read tasks slot: %w", err)
		}
		s.tasks = seedTasks(s.now())
		if err := s.persist(ctx, s.tasks); err != nil {
			return nil, err
		}
	} else {
		var tasks []model.Task
		if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
			return nil, fmt.Errorf("task: decode tasks slot: %w", err)
		}
		s.tasks = tasks
	}
	for _, t := range s.tasks {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	return s, nil
}

// Patch carries the fields a generic update may change. Nil fields are left
// untouched. Status may be set directly here, but CompletedAt is owned by
// Complete alone.
type Patch struct {
	Title       *string
	Description *string
	Category    *model.Category
	Priority    *model.Priority
	Status      *model.Status
	IsUrgent    *bool
	DueDate     *string
}

// PatchFromDraft converts a full form submission into a patch setting every
// editable field.
func PatchFromDraft(d model.Draft) Patch {
	d = d.Trimmed()
	return Patch{
		Title:       &d.Title,
		Description: &d.Description,
		Category:    &d.Category,
		Priority:    &d.Priority,
		Status:      &d.Status,
		IsUrgent:    &d.IsUrgent,
		DueDate:     &d.DueDate,
	}
}

// Filter selects tasks for List. Zero-valued fields are unfiltered (the
// UI's "All"); all set fields must match.
type Filter struct {
	Category model.Category
	Status   model.Status
	Priority model.Priority
	Search   string
	IsUrgent *bool
}

type Stats struct {
	Total      int
	Completed  int
	Pending    int
	InProgress int
	Urgent     int
}

// Create assigns a fresh id and timestamps, appends, persists, and returns
// the stored task. The draft is trusted as-is; validation happens in the
// form before it gets here.
func (s *Store) Create(ctx context.Context, draft model.Draft) (model.Task, error) {
	draft = draft.Trimmed()
	now := s.now()
	id := now.UnixMilli()
	// Millisecond ids can collide when tasks are created back to back;
	// never reuse or regress within a process run.
	if id <= s.lastID {
		id = s.lastID + 1
	}
	t := model.Task{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		Priority:    draft.Priority,
		Status:      draft.Status,
		IsUrgent:    draft.IsUrgent,
		DueDate:     draft.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	next := append(append([]model.Task(nil), s.tasks...), t)
	if err := s.persist(ctx, next); err != nil {
		return model.Task{}, err
	}
	s.tasks = next
	s.lastID = id
	return t, nil
}

// Update merges the set fields of patch onto the task with the given id and
// bumps UpdatedAt. A missing id is reported, not swallowed.
func (s *Store) Update(ctx context.Context, id int64, patch Patch) (model.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Task{}, ErrNotFound
	}
	t := s.tasks[idx]
	if patch.Title != nil {
		t.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		t.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.IsUrgent != nil {
		t.IsUrgent = *patch.IsUrgent
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	t.UpdatedAt = s.now()

	next := append([]model.Task(nil), s.tasks...)
	next[idx] = t
	if err := s.persist(ctx, next); err != nil {
		return model.Task{}, err
	}
	s.tasks = next
	return t, nil
}

// Delete removes the task with the given id. A missing id is reported.
func (s *Store) Delete(ctx context.Context, id int64) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	next := append([]model.Task(nil), s.tasks[:idx]...)
	next = append(next, s.tasks[idx+1:]...)
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.tasks = next
	return nil
}

// Complete forces the task into Completed with a trimmed note and a fresh
// CompletedAt, regardless of its prior status. Re-completing overwrites the
// earlier completion timestamp.
func (s *Store) Complete(ctx context.Context, id int64, note string) (model.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Task{}, ErrNotFound
	}
	now := s.now()
	t := s.tasks[idx]
	t.Status = model.StatusCompleted
	t.CompletionNote = strings.TrimSpace(note)
	t.CompletedAt = &now
	t.UpdatedAt = now

	next := append([]model.Task(nil), s.tasks...)
	next[idx] = t
	if err := s.persist(ctx, next); err != nil {
		return model.Task{}, err
	}
	s.tasks = next
	return t, nil
}

func (s *Store) Get(id int64) (model.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Task{}, ErrNotFound
	}
	return s.tasks[idx], nil
}

// List applies the filter conjunctively and returns matches in insertion
// order. Callers wanting recency reverse the result themselves.
func (s *Store) List(filter Filter) []model.Task {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if filter.IsUrgent != nil && t.IsUrgent != *filter.IsUrgent {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Stats counts over the full unfiltered collection. Cancelled tasks appear
// in Total but in no other bucket.
func (s *Store) Stats() Stats {
	var out Stats
	out.Total = len(s.tasks)
	for _, t := range s.tasks {
		switch t.Status {
		case model.StatusCompleted:
			out.Completed++
		case model.StatusPending:
			out.Pending++
		case model.StatusInProgress:
			out.InProgress++
		}
		if t.IsUrgent {
			out.Urgent++
		}
	}
	return out
}

func (s *Store) indexOf(id int64) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context, tasks []model.Task) error {
	payload, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("task: encode tasks: %w", err)
	}
	if err := s.slots.SetSlot(ctx, storage.SlotTasks, string(payload)); err != nil {
		return fmt.Errorf("task: persist tasks: %w", err)
	}
	return nil
}
