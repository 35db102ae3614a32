// Package session manages the persisted login session: who is signed in,
// in which role, and the backend auth cookies that keep them signed in
// across restarts. Sessions are stored as a single JSON file with atomic
// writes so a crash never leaves a half-written session behind.
package session

import (
	"net/http"
	"time"
)

// Role distinguishes the two sides of the marketplace. Join windows and
// dashboard contents depend on it.
type Role string

const (
	// RoleUser is a mentee booking sessions.
	RoleUser Role = "user"
	// RoleMentor is a mentor hosting sessions.
	RoleMentor Role = "mentor"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleMentor
}

// User identifies the signed-in account.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Cookie is the persisted form of a backend auth cookie.
type Cookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Domain   string    `json:"domain,omitempty"`
	Path     string    `json:"path,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HTTPOnly bool      `json:"http_only,omitempty"`
}

// Session is the complete persisted login state.
type Session struct {
	User      User      `json:"user"`
	Cookies   []Cookie  `json:"cookies,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a session for the given user, stamped with the current time.
func New(user User) *Session {
	now := time.Now().UTC()
	return &Session{
		User:      user,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsMentor reports whether the session belongs to a mentor account.
func (s *Session) IsMentor() bool {
	return s.User.Role == RoleMentor
}

// SetCookies replaces the persisted cookies from live http.Cookie values,
// dropping any that have already expired.
func (s *Session) SetCookies(cookies []*http.Cookie) {
	now := time.Now()
	s.Cookies = s.Cookies[:0]
	for _, c := range cookies {
		if !c.Expires.IsZero() && c.Expires.Before(now) {
			continue
		}
		s.Cookies = append(s.Cookies, Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HTTPOnly: c.HttpOnly,
		})
	}
	s.UpdatedAt = now.UTC()
}

// HTTPCookies converts the persisted cookies back to http.Cookie values
// for seeding a cookie jar.
func (s *Session) HTTPCookies() []*http.Cookie {
	out := make([]*http.Cookie, 0, len(s.Cookies))
	for _, c := range s.Cookies {
		out = append(out, &http.Cookie{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HTTPOnly,
		})
	}
	return out
}
