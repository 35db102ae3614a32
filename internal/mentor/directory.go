package mentor

import (
	"sort"
	"strings"
)

// SortOrder controls directory sorting.
type SortOrder string

const (
	// SortByName orders alphabetically by display name.
	SortByName SortOrder = "name"
	// SortByPrice orders by cheapest offered unit price, unpriced mentors last.
	SortByPrice SortOrder = "price"
	// SortBySessions orders by completed session count, most experienced first.
	SortBySessions SortOrder = "sessions"
)

// Query describes a client-side directory search. The backend returns the
// full active-mentor list; filtering happens locally, matching how the
// directory view behaves.
type Query struct {
	// Search matches case-insensitively against name, title, and skills.
	Search string
	// Mode keeps only mentors who price the given session type.
	// Empty means no session-type filter.
	Mode SessionType
	// MaxUnitPrice keeps only mentors whose cheapest unit is at or below
	// this amount. Zero means no price filter.
	MaxUnitPrice int64
	// Sort controls result ordering. Empty defaults to SortByName.
	Sort SortOrder
}

// Filter applies the query to the mentor list and returns matches in the
// requested order. Inactive mentors are always excluded. The input slice
// is not modified.
func Filter(mentors []Mentor, q Query) []Mentor {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	var out []Mentor
	for _, m := range mentors {
		if !m.Active {
			continue
		}
		if q.Mode != "" && !m.Pricing.Offers(q.Mode) {
			continue
		}
		if q.MaxUnitPrice > 0 {
			cheapest, ok := m.CheapestUnit()
			if !ok || cheapest > q.MaxUnitPrice {
				continue
			}
		}
		if needle != "" && !matches(&m, needle) {
			continue
		}
		out = append(out, m)
	}

	sortMentors(out, q.Sort)
	return out
}

// matches reports whether the mentor's name, title, or any skill contains
// the lowercased needle.
func matches(m *Mentor, needle string) bool {
	if strings.Contains(strings.ToLower(m.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(m.Title), needle) {
		return true
	}
	for _, skill := range m.Skills {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}

func sortMentors(mentors []Mentor, order SortOrder) {
	switch order {
	case SortByPrice:
		sort.SliceStable(mentors, func(i, j int) bool {
			pi, oki := mentors[i].CheapestUnit()
			pj, okj := mentors[j].CheapestUnit()
			if oki != okj {
				return oki // priced mentors come first
			}
			if !oki {
				return false
			}
			return pi < pj
		})
	case SortBySessions:
		sort.SliceStable(mentors, func(i, j int) bool {
			return mentors[i].Stats.SessionsCompleted > mentors[j].Stats.SessionsCompleted
		})
	default:
		sort.SliceStable(mentors, func(i, j int) bool {
			return strings.ToLower(mentors[i].Name) < strings.ToLower(mentors[j].Name)
		})
	}
}
