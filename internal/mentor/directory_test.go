package mentor

import (
	"testing"
)

func sampleMentors() []Mentor {
	return []Mentor{
		{
			ID: "m-1", Name: "Asha Rao", Title: "Staff Engineer",
			Skills:  []string{"Go", "Distributed Systems"},
			Pricing: PricingTable{SessionVideo: 100, SessionChat: 40},
			Stats:   Stats{SessionsCompleted: 120},
			Active:  true,
		},
		{
			ID: "m-2", Name: "Ben Okafor", Title: "Product Designer",
			Skills:  []string{"Figma", "UX Research"},
			Pricing: PricingTable{SessionChat: 30},
			Stats:   Stats{SessionsCompleted: 45},
			Active:  true,
		},
		{
			ID: "m-3", Name: "Carmen Díaz", Title: "Engineering Manager",
			Skills:  []string{"Leadership", "Go"},
			Pricing: PricingTable{SessionVideo: 250},
			Stats:   Stats{SessionsCompleted: 300},
			Active:  true,
		},
		{
			ID: "m-4", Name: "Dormant Mentor", Title: "Retired",
			Pricing: PricingTable{SessionVideo: 10},
			Active:  false,
		},
	}
}

func ids(mentors []Mentor) []string {
	out := make([]string, len(mentors))
	for i, m := range mentors {
		out[i] = m.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	t.Run("excludes inactive mentors", func(t *testing.T) {
		got := Filter(sampleMentors(), Query{})
		for _, m := range got {
			if m.ID == "m-4" {
				t.Error("inactive mentor should be excluded")
			}
		}
		if len(got) != 3 {
			t.Errorf("got %d mentors, want 3", len(got))
		}
	})

	t.Run("search matches skills case-insensitively", func(t *testing.T) {
		got := Filter(sampleMentors(), Query{Search: "go"})
		if len(got) != 2 {
			t.Fatalf("got %v, want m-1 and m-3", ids(got))
		}
	})

	t.Run("search matches title", func(t *testing.T) {
		got := Filter(sampleMentors(), Query{Search: "designer"})
		if len(got) != 1 || got[0].ID != "m-2" {
			t.Errorf("got %v, want [m-2]", ids(got))
		}
	})

	t.Run("mode filter drops mentors without pricing", func(t *testing.T) {
		got := Filter(sampleMentors(), Query{Mode: SessionVideo})
		if len(got) != 2 {
			t.Fatalf("got %v, want two video mentors", ids(got))
		}
		for _, m := range got {
			if !m.Pricing.Offers(SessionVideo) {
				t.Errorf("mentor %s does not offer video", m.ID)
			}
		}
	})

	t.Run("max price filter uses cheapest unit", func(t *testing.T) {
		got := Filter(sampleMentors(), Query{MaxUnitPrice: 35})
		// m-1's cheapest is chat at 40 > 35; m-2's chat is 30.
		if len(got) != 1 || got[0].ID != "m-2" {
			t.Errorf("got %v, want [m-2]", ids(got))
		}
	})

	t.Run("default sort is by name", func(t *testing.T) {
		got := Filter(sampleMentors(), Query{})
		want := []string{"m-1", "m-2", "m-3"}
		for i, id := range want {
			if got[i].ID != id {
				t.Fatalf("order = %v, want %v", ids(got), want)
			}
		}
	})

	t.Run("sort by price puts cheapest first", func(t *testing.T) {
		got := Filter(sampleMentors(), Query{Sort: SortByPrice})
		if got[0].ID != "m-2" {
			t.Errorf("order = %v, want m-2 first", ids(got))
		}
	})

	t.Run("sort by sessions puts most experienced first", func(t *testing.T) {
		got := Filter(sampleMentors(), Query{Sort: SortBySessions})
		if got[0].ID != "m-3" {
			t.Errorf("order = %v, want m-3 first", ids(got))
		}
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		in := sampleMentors()
		Filter(in, Query{Sort: SortByPrice})
		if in[0].ID != "m-1" {
			t.Error("Filter should not mutate its input")
		}
	})
}

func TestPricingTable(t *testing.T) {
	table := PricingTable{SessionVideo: 100}

	t.Run("per unit lookup", func(t *testing.T) {
		price, ok := table.PerUnit(SessionVideo)
		if !ok || price != 100 {
			t.Errorf("PerUnit(video) = %d, %v", price, ok)
		}
		if _, ok := table.PerUnit(SessionChat); ok {
			t.Error("PerUnit(chat) should be unavailable")
		}
	})

	t.Run("cheapest unit", func(t *testing.T) {
		m := Mentor{Pricing: PricingTable{SessionVideo: 100, SessionChat: 40}}
		price, ok := m.CheapestUnit()
		if !ok || price != 40 {
			t.Errorf("CheapestUnit() = %d, %v, want 40", price, ok)
		}

		empty := Mentor{}
		if _, ok := empty.CheapestUnit(); ok {
			t.Error("CheapestUnit() on empty table should report false")
		}
	})
}

func TestSessionType(t *testing.T) {
	if !SessionChat.Valid() || !SessionVideo.Valid() {
		t.Error("known session types should be valid")
	}
	if SessionType("voice").Valid() {
		t.Error("unknown session type should be invalid")
	}
}
