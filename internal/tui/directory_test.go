package tui

import (
	"strings"
	"testing"

	"mentorlane/internal/mentor"
)

func loadedDirectory(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t)
	second := sampleMentor()
	second.ID = "m-2"
	second.Name = "Ben Ochoa"
	second.Skills = []string{"kubernetes"}
	next, _ := m.Update(mentorsLoadedMsg{mentors: []mentor.Mentor{sampleMentor(), second}})
	return next.(Model)
}

func TestDirectoryNavigation(t *testing.T) {
	m := loadedDirectory(t)

	if m.directory.loading {
		t.Fatal("load message should clear loading")
	}
	if len(m.directory.filtered) != 2 {
		t.Fatalf("filtered = %d mentors", len(m.directory.filtered))
	}

	m = press(t, m, "down")
	if got := m.directory.selected(); got == nil || got.Name != "Ben Ochoa" {
		t.Errorf("selected = %+v", got)
	}
	m = press(t, m, "down")
	if m.directory.cursor != 1 {
		t.Error("cursor should clamp at the last row")
	}
	m = press(t, m, "up")
	if got := m.directory.selected(); got == nil || got.Name != "Asha Rao" {
		t.Errorf("selected = %+v", got)
	}
}

func TestDirectorySearch(t *testing.T) {
	m := loadedDirectory(t)

	m = press(t, m, "/")
	if !m.directory.search.Focused() {
		t.Fatal("/ should focus the search input")
	}

	for _, r := range "kube" {
		m = press(t, m, string(r))
	}
	if len(m.directory.filtered) != 1 || m.directory.filtered[0].Name != "Ben Ochoa" {
		t.Errorf("filtered = %+v", m.directory.filtered)
	}

	// q must type into the input, not quit.
	m = press(t, m, "q")
	if m.quitting {
		t.Error("typing q in search should not quit")
	}

	m = press(t, m, "esc")
	if m.directory.search.Focused() {
		t.Error("esc should blur the search input")
	}
	if len(m.directory.filtered) != 2 {
		t.Error("esc should clear the search")
	}
}

func TestDirectoryCycles(t *testing.T) {
	t.Run("sort", func(t *testing.T) {
		orders := []mentor.SortOrder{mentor.SortByName, mentor.SortByPrice, mentor.SortBySessions, mentor.SortByName}
		for i := 0; i < len(orders)-1; i++ {
			if got := nextSort(orders[i]); got != orders[i+1] {
				t.Errorf("nextSort(%s) = %s, want %s", orders[i], got, orders[i+1])
			}
		}
	})

	t.Run("mode filter", func(t *testing.T) {
		if got := nextModeFilter(""); got != mentor.SessionChat {
			t.Errorf("nextModeFilter(any) = %s", got)
		}
		if got := nextModeFilter(mentor.SessionChat); got != mentor.SessionVideo {
			t.Errorf("nextModeFilter(chat) = %s", got)
		}
		if got := nextModeFilter(mentor.SessionVideo); got != "" {
			t.Errorf("nextModeFilter(video) = %s", got)
		}
	})
}

func TestRenderMentorRow(t *testing.T) {
	row := renderMentorRow(sampleMentor(), true)
	for _, want := range []string{"Asha Rao", "Staff Engineer", "₹50/15m", "12 sessions"} {
		if !strings.Contains(row, want) {
			t.Errorf("row missing %q: %s", want, row)
		}
	}

	unpriced := sampleMentor()
	unpriced.Pricing = nil
	if row := renderMentorRow(unpriced, false); !strings.Contains(row, "unpriced") {
		t.Errorf("row should mark unpriced mentors: %s", row)
	}
}
