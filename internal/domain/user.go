package domain

import "time"

// User represents an account created by the external auth collaborator.
type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity is the authenticated caller attached to a request. The zero value
// means an anonymous caller.
type Identity struct {
	Subject string
	Email   string
}

// Anonymous reports whether no caller identity is present.
func (i Identity) Anonymous() bool {
	return i.Subject == "" && i.Email == ""
}
