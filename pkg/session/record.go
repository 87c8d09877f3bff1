package session

import "time"

// User is the profile returned by the authentication endpoint.
type User struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"fName"`
	LastName    string    `json:"lName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Role        string    `json:"role"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Record is the in-memory session state. It is never persisted.
type Record struct {
	IsAuthenticated bool
	User            *User
	Loading         bool
	LastError       string
}

func (r Record) clone() Record {
	if r.User != nil {
		u := *r.User
		r.User = &u
	}
	return r
}

// Credentials are what the login form collects.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Result is the outcome of Login. Error and Cause are set only when Success
// is false; Error is the display text of Cause.
type Result struct {
	Success bool
	User    *User
	Error   string
	Cause   error
}
