package task

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mkr2177/taskdeck/internal/model"
	"github.com/mkr2177/taskdeck/internal/storage"
)

func setupSlots(t *testing.T) *storage.SQLiteSlotStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "taskdeck-test.db")
	slots, err := storage.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = slots.Close() })
	return slots
}

func setupStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), setupSlots(t))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

func draft(title, description string) model.Draft {
	d := model.NewDraft()
	d.Title = title
	d.Description = description
	return d
}

func TestOpenSeedsOnFirstRun(t *testing.T) {
	slots := setupSlots(t)
	ctx := context.Background()

	store, err := Open(ctx, slots)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	all := store.List(Filter{})
	if len(all) != 2 {
		t.Fatalf("expected 2 seed tasks, got %d", len(all))
	}
	for _, seeded := range all {
		if seeded.CompletionNote != "" || seeded.CompletedAt != nil {
			t.Fatalf("seed task must be uncompleted: %+v", seeded)
		}
		if !seeded.CreatedAt.Equal(seeded.UpdatedAt) {
			t.Fatalf("seed task timestamps must match: %+v", seeded)
		}
	}

	// The seed is persisted immediately: a second open sees it without
	// reseeding.
	again, err := Open(ctx, slots)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	if got := len(again.List(Filter{})); got != 2 {
		t.Fatalf("expected 2 tasks after reopen, got %d", got)
	}
}

func TestCreateAndGet(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, draft("  Write report  ", " Quarterly numbers for the board \n"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Title != "Write report" || created.Description != "Quarterly numbers for the board" {
		t.Fatalf("expected trimmed fields, got: %+v", created)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("fresh task timestamps must match: %+v", created)
	}

	got, err := store.Get(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != created {
		t.Fatalf("get mismatch: %+v vs %+v", got, created)
	}
}

func TestCreateIDsNeverCollide(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	fixed := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	a, err := store.Create(ctx, draft("First task", "created at a frozen clock"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := store.Create(ctx, draft("Second task", "created at the same instant"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("ids collided: %d", a.ID)
	}
	if b.ID <= a.ID {
		t.Fatalf("ids must increase: %d then %d", a.ID, b.ID)
	}
}

func TestUpdateMergesPatch(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	created, err := store.Create(ctx, draft("Original title", "original description text"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	store.now = func() time.Time { return base.Add(time.Minute) }
	title := "Renamed title"
	urgent := true
	updated, err := store.Update(ctx, created.ID, Patch{Title: &title, IsUrgent: &urgent})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Renamed title" || !updated.IsUrgent {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Description != created.Description || updated.Category != created.Category {
		t.Fatalf("unset fields must not change: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updated_at must advance: %v vs %v", updated.UpdatedAt, created.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("created_at is immutable")
	}
}

func TestEmptyUpdateOnlyBumpsUpdatedAt(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	created, err := store.Create(ctx, draft("Steady task", "nothing here should change"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	store.now = func() time.Time { return base.Add(time.Second) }
	updated, err := store.Update(ctx, created.ID, Patch{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	want := created
	want.UpdatedAt = base.Add(time.Second)
	if updated != want {
		t.Fatalf("empty patch changed fields: %+v vs %+v", updated, want)
	}
}

func TestUpdateMissingIDReported(t *testing.T) {
	store := setupStore(t)
	if _, err := store.Update(context.Background(), 99999, Patch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, draft("Disposable task", "will be deleted right away"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}
	if err := store.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got: %v", err)
	}
}

func TestCompleteForcesStatus(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	created, err := store.Create(ctx, draft("Completable task", "will be completed with a note"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	store.now = func() time.Time { return base.Add(time.Minute) }
	done, err := store.Complete(ctx, created.ID, "  done  ")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != model.StatusCompleted || done.CompletionNote != "done" {
		t.Fatalf("unexpected completion: %+v", done)
	}
	if done.CompletedAt == nil || !done.CompletedAt.Equal(base.Add(time.Minute)) {
		t.Fatalf("unexpected completed_at: %v", done.CompletedAt)
	}

	// Completing again is permitted and overwrites the timestamp.
	store.now = func() time.Time { return base.Add(2 * time.Minute) }
	redone, err := store.Complete(ctx, created.ID, "again")
	if err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	if !redone.CompletedAt.Equal(base.Add(2 * time.Minute)) || redone.CompletionNote != "again" {
		t.Fatalf("re-complete must overwrite: %+v", redone)
	}
}

func TestCompleteCancelledTask(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	d := draft("Cancelled task", "cancelled before completion")
	d.Status = model.StatusCancelled
	created, err := store.Create(ctx, d)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	done, err := store.Complete(ctx, created.ID, "")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != model.StatusCompleted {
		t.Fatalf("complete must not check prior status: %+v", done)
	}
}

func TestGenericUpdateNeverSetsCompletedAt(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, draft("Status shortcut", "status set directly via update"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	completed := model.StatusCompleted
	updated, err := store.Update(ctx, created.ID, Patch{Status: &completed})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != model.StatusCompleted {
		t.Fatalf("status patch not applied: %+v", updated)
	}
	if updated.CompletedAt != nil {
		t.Fatal("generic update must not set completed_at")
	}
}

func TestListFilters(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	work := draft("Prepare slides", "deck for the architecture review")
	work.Category = model.CategoryWork
	work.Priority = model.PriorityHigh
	work.IsUrgent = true
	if _, err := store.Create(ctx, work); err != nil {
		t.Fatalf("create: %v", err)
	}
	health := draft("Book dentist", "routine checkup appointment")
	health.Category = model.CategoryHealth
	if _, err := store.Create(ctx, health); err != nil {
		t.Fatalf("create: %v", err)
	}

	workOnly := store.List(Filter{Category: model.CategoryWork})
	for _, item := range workOnly {
		if item.Category != model.CategoryWork {
			t.Fatalf("category filter leaked: %+v", item)
		}
	}
	if len(workOnly) != 2 { // seed has one Work task too
		t.Fatalf("expected 2 work tasks, got %d", len(workOnly))
	}

	// Filters are conjunctive.
	both := store.List(Filter{Category: model.CategoryWork, Priority: model.PriorityHigh})
	if len(both) != 2 {
		t.Fatalf("expected 2 high-priority work tasks, got %d", len(both))
	}
	none := store.List(Filter{Category: model.CategoryHealth, Priority: model.PriorityCritical})
	if len(none) != 0 {
		t.Fatalf("expected empty intersection, got %d", len(none))
	}

	// Search is case-insensitive over title or description.
	bySearch := store.List(Filter{Search: "DENTIST"})
	if len(bySearch) != 1 || bySearch[0].Title != "Book dentist" {
		t.Fatalf("unexpected search result: %+v", bySearch)
	}
	byDescription := store.List(Filter{Search: "architecture"})
	if len(byDescription) != 1 || byDescription[0].Title != "Prepare slides" {
		t.Fatalf("unexpected description search result: %+v", byDescription)
	}

	urgent := true
	urgentOnly := store.List(Filter{IsUrgent: &urgent})
	for _, item := range urgentOnly {
		if !item.IsUrgent {
			t.Fatalf("urgent filter leaked: %+v", item)
		}
	}

	// Insertion order is preserved.
	all := store.List(Filter{})
	for i := 1; i < len(all); i++ {
		if all[i].ID <= all[i-1].ID {
			t.Fatalf("list order not insertion order: %v", all)
		}
	}
}

func TestStatsCounts(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	// Seed: one In Progress (urgent), one Pending.
	created, err := store.Create(ctx, draft("Third task", "created to be completed"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.Complete(ctx, created.ID, "done"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	stats := store.Stats()
	want := Stats{Total: 3, Completed: 1, Pending: 1, InProgress: 1, Urgent: 1}
	if stats != want {
		t.Fatalf("unexpected stats: %+v, want %+v", stats, want)
	}
}

func TestStatsSkipCancelled(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	d := draft("Cancelled task", "cancelled tasks stay out of the breakdown")
	d.Status = model.StatusCancelled
	if _, err := store.Create(ctx, d); err != nil {
		t.Fatalf("create: %v", err)
	}
	stats := store.Stats()
	if stats.Total != 3 {
		t.Fatalf("cancelled tasks count toward total: %+v", stats)
	}
	if stats.Completed+stats.Pending+stats.InProgress != 2 {
		t.Fatalf("cancelled tasks must stay out of the status buckets: %+v", stats)
	}
}

func TestMutationsSurviveReopen(t *testing.T) {
	slots := setupSlots(t)
	ctx := context.Background()

	store, err := Open(ctx, slots)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	created, err := store.Create(ctx, draft("Persistent task", "survives a store reopen"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.Complete(ctx, created.ID, "checked"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	reopened, err := Open(ctx, slots)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	got, err := reopened.Get(created.ID)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got.Status != model.StatusCompleted || got.CompletionNote != "checked" {
		t.Fatalf("mutation lost across reopen: %+v", got)
	}

	// Ids never regress after a reload either.
	next, err := reopened.Create(ctx, draft("Another task", "id must exceed the reloaded max"))
	if err != nil {
		t.Fatalf("create after reopen: %v", err)
	}
	if next.ID <= created.ID {
		t.Fatalf("id regressed after reopen: %d <= %d", next.ID, created.ID)
	}
}

func TestCorruptTasksSlotReported(t *testing.T) {
	slots := setupSlots(t)
	ctx := context.Background()
	if err := slots.SetSlot(ctx, storage.SlotTasks, "[{broken"); err != nil {
		t.Fatalf("set slot: %v", err)
	}
	if _, err := Open(ctx, slots); err == nil {
		t.Fatal("expected error for corrupt tasks slot")
	}
}
