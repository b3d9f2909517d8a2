package auth

import "github.com/mkr2177/taskdeck/internal/model"

// DefaultCredentials is the fixed demo user list. It is not mutable at
// runtime and exists purely so the app is usable out of the box.
func DefaultCredentials() []model.Credential {
	return []model.Credential{
		{ID: 1, Username: "admin", Password: "admin123", Name: "Administrator"},
		{ID: 2, Username: "user", Password: "user123", Name: "Regular User"},
		{ID: 3, Username: "demo", Password: "demo123", Name: "Demo User"},
	}
}
