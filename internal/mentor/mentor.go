// Package mentor defines the mentor profile model consumed by the directory
// and booking views: identity, pricing, weekly availability, and aggregate
// stats. All of it is backend-owned data; this package only models and
// filters it client-side.
package mentor

import (
	"time"
)

// SessionType is the communication channel for a booked session.
type SessionType string

const (
	SessionChat  SessionType = "chat"
	SessionVideo SessionType = "video"
)

// Valid reports whether the session type is one of the known values.
func (s SessionType) Valid() bool {
	return s == SessionChat || s == SessionVideo
}

// SessionTypes returns all known session types in display order.
func SessionTypes() []SessionType {
	return []SessionType{SessionChat, SessionVideo}
}

// PricingTable maps a session type to the price of one 15-minute unit,
// in whole currency units. A missing entry means the mentor does not
// offer that session type.
type PricingTable map[SessionType]int64

// PerUnit returns the per-unit price for the given session type.
// The second return value is false when the mentor has no price for it.
func (p PricingTable) PerUnit(mode SessionType) (int64, bool) {
	price, ok := p[mode]
	return price, ok
}

// Offers reports whether the mentor has a price for the given session type.
func (p PricingTable) Offers(mode SessionType) bool {
	_, ok := p[mode]
	return ok
}

// TimeRange is a recurring availability window within a weekday,
// in "HH:MM" local wall-clock form.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Stats are aggregate numbers the backend computes per mentor.
type Stats struct {
	SessionsCompleted int `json:"sessions_completed"`
	TotalMinutes      int `json:"total_minutes"`
}

// Mentor is one mentor profile as returned by the directory endpoints.
type Mentor struct {
	ID           string                       `json:"id"`
	Name         string                       `json:"name"`
	Title        string                       `json:"title"`
	AvatarURL    string                       `json:"avatar_url"`
	Skills       []string                     `json:"skills"`
	Pricing      PricingTable                 `json:"pricing"`
	Availability map[time.Weekday][]TimeRange `json:"availability"`
	Stats        Stats                        `json:"stats"`
	Active       bool                         `json:"active"`
}

// CheapestUnit returns the lowest per-unit price across all offered session
// types, for directory sorting. The second return value is false when the
// mentor offers nothing.
func (m *Mentor) CheapestUnit() (int64, bool) {
	var best int64
	found := false
	for _, price := range m.Pricing {
		if !found || price < best {
			best = price
			found = true
		}
	}
	return best, found
}
