package model

import (
	"errors"
	"testing"
	"time"
)

func validDraft() Draft {
	d := NewDraft()
	d.Title = "Buy groceries"
	d.Description = "Get milk, bread, eggs, and vegetables"
	return d
}

func TestDraftValidateSuccess(t *testing.T) {
	today := time.Date(2026, 8, 20, 15, 30, 0, 0, time.UTC)
	d := validDraft()
	d.DueDate = "2026-08-20"
	if err := d.Validate(today); err != nil {
		t.Fatalf("expected valid draft, got error: %v", err)
	}
}

func TestDraftValidateRules(t *testing.T) {
	today := time.Date(2026, 8, 20, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name   string
		mutate func(*Draft)
		want   error
	}{
		{"empty title", func(d *Draft) { d.Title = "   " }, ErrTitleRequired},
		{"short title", func(d *Draft) { d.Title = "ab" }, ErrTitleTooShort},
		{"empty description", func(d *Draft) { d.Description = "" }, ErrDescriptionRequired},
		{"short description", func(d *Draft) { d.Description = "too short" }, ErrDescriptionTooShort},
		{"malformed due date", func(d *Draft) { d.DueDate = "tomorrow" }, ErrDueDateMalformed},
		{"past due date", func(d *Draft) { d.DueDate = "2026-08-19" }, ErrDueDateInPast},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			if err := d.Validate(today); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got: %v", tc.want, err)
			}
		})
	}
}

func TestDraftTrimmed(t *testing.T) {
	d := validDraft()
	d.Title = "  Buy groceries  "
	d.Description = "\tGet milk, bread, eggs, and vegetables\n"
	out := d.Trimmed()
	if out.Title != "Buy groceries" {
		t.Fatalf("unexpected trimmed title: %q", out.Title)
	}
	if out.Description != "Get milk, bread, eggs, and vegetables" {
		t.Fatalf("unexpected trimmed description: %q", out.Description)
	}
}
