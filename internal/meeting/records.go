package meeting

import (
	"sort"
	"time"
)

// RangeFilter selects which slice of booking history a dashboard shows.
type RangeFilter string

const (
	// RangeAll shows the full history.
	RangeAll RangeFilter = "all"
	// RangeUpcoming shows meetings that have not yet ended.
	RangeUpcoming RangeFilter = "upcoming"
	// RangePast shows meetings that have ended.
	RangePast RangeFilter = "past"
)

// Valid reports whether the filter is one of the known values.
func (f RangeFilter) Valid() bool {
	return f == RangeAll || f == RangeUpcoming || f == RangePast
}

// FilterRecords applies the range and optional status filter to a history
// page. Upcoming results sort soonest-first; past and all sort most recent
// first. The input slice is not modified.
func FilterRecords(records []Meeting, rng RangeFilter, status Status, now time.Time) []Meeting {
	var out []Meeting
	for _, m := range records {
		switch rng {
		case RangeUpcoming:
			if !m.Upcoming(now) {
				continue
			}
		case RangePast:
			if m.Upcoming(now) {
				continue
			}
		}
		if status != "" && m.Status != status {
			continue
		}
		out = append(out, m)
	}

	if rng == RangeUpcoming {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ScheduledAt.Before(out[j].ScheduledAt)
		})
	} else {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ScheduledAt.After(out[j].ScheduledAt)
		})
	}
	return out
}
