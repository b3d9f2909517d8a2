package model

// User is the session identity handed out at login. It never carries a
// password; it is built by copying the matching credential record.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Credential is a static username/password record. Passwords are plaintext:
// this is illustrative authentication, not production-grade.
type Credential struct {
	ID       int64
	Username string
	Password string
	Name     string
}

func (c Credential) User() User {
	return User{ID: c.ID, Username: c.Username, Name: c.Name}
}
