package storage

import (
	"context"
	"errors"
)

var ErrNoSlot = errors.New("storage: slot not set")

// Slot keys. Session state and the task collection live in independent
// slots; there is no cross-slot transaction.
const (
	SlotSession = "session"
	SlotTasks   = "tasks"
)

// SlotStore is a key-value facade over persistent storage: one serialized
// value per key, every write replaces the whole value, last writer wins.
type SlotStore interface {
	GetSlot(ctx context.Context, key string) (string, error)
	SetSlot(ctx context.Context, key, value string) error
	DeleteSlot(ctx context.Context, key string) error
}
