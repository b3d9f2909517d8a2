// Package auth implements the credential store and session manager. Login
// compares plaintext credentials against a static user list; the resulting
// identity (never the password) is persisted to its own storage slot so a
// restart resumes the session without re-prompting.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkr2177/taskdeck/internal/model"
	"github.com/mkr2177/taskdeck/internal/storage"
)

// ErrInvalidCredentials is deliberately generic: it does not reveal whether
// the username or the password was wrong.
var ErrInvalidCredentials = errors.New("auth: invalid username or password")

// SessionManager tracks the currently authenticated user and mirrors it to
// the session storage slot. The persisted record is trusted as-is on
// restore; there is no expiry and no signature.
type SessionManager struct {
	slots       storage.SlotStore
	credentials []model.Credential
	current     *model.User
}

func NewSessionManager(slots storage.SlotStore, credentials []model.Credential) *SessionManager {
	return &SessionManager{slots: slots, credentials: credentials}
}

// Login matches username and password exactly (case-sensitive) against the
// credential list. On success the session becomes authenticated and the
// user record is persisted before Login returns.
func (m *SessionManager) Login(ctx context.Context, username, password string) (model.User, error) {
	for _, cred := range m.credentials {
		if cred.Username != username || cred.Password != password {
			continue
		}
		user := cred.User()
		payload, err := json.Marshal(user)
		if err != nil {
			return model.User{}, fmt.Errorf("auth: encode session: %w", err)
		}
		if err := m.slots.SetSlot(ctx, storage.SlotSession, string(payload)); err != nil {
			return model.User{}, fmt.Errorf("auth: persist session: %w", err)
		}
		m.current = &user
		return user, nil
	}
	return model.User{}, ErrInvalidCredentials
}

// Logout clears the in-memory session and removes the persisted slot.
// Idempotent: logging out twice is fine.
func (m *SessionManager) Logout(ctx context.Context) error {
	m.current = nil
	if err := m.slots.DeleteSlot(ctx, storage.SlotSession); err != nil {
		return fmt.Errorf("auth: clear session slot: %w", err)
	}
	return nil
}

// Restore reads the persisted session. An absent slot means "not
// authenticated" and is not an error; a malformed record is an error and the
// caller should treat the session as unauthenticated.
func (m *SessionManager) Restore(ctx context.Context) (model.User, bool, error) {
	raw, err := m.slots.GetSlot(ctx, storage.SlotSession)
	if err != nil {
		if errors.Is(err, storage.ErrNoSlot) {
			return model.User{}, false, nil
		}
		return model.User{}, false, fmt.Errorf("auth: read session slot: %w", err)
	}
	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return model.User{}, false, fmt.Errorf("auth: decode session: %w", err)
	}
	m.current = &user
	return user, true, nil
}

// IsAuthenticated reflects in-memory state only.
func (m *SessionManager) IsAuthenticated() bool {
	return m.current != nil
}

// Current returns the authenticated user, or false when logged out.
func (m *SessionManager) Current() (model.User, bool) {
	if m.current == nil {
		return model.User{}, false
	}
	return *m.current, true
}
