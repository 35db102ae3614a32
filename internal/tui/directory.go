package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mentorlane/internal/mentor"
	"mentorlane/internal/tui/styles"
	"mentorlane/internal/util"
)

// directoryState is the mentor directory screen: the fetched list plus
// the client-side query applied to it.
type directoryState struct {
	loading  bool
	mentors  []mentor.Mentor
	filtered []mentor.Mentor
	query    mentor.Query
	search   textinput.Model
	cursor   int
}

func newDirectoryState() directoryState {
	search := textinput.New()
	search.Placeholder = "name, title or skill"
	search.CharLimit = 64
	search.Width = 32
	return directoryState{
		loading: true,
		query:   mentor.Query{Sort: mentor.SortByName},
		search:  search,
	}
}

// refilter reapplies the query and clamps the cursor.
func (d *directoryState) refilter() {
	d.query.Search = d.search.Value()
	d.filtered = mentor.Filter(d.mentors, d.query)
	if d.cursor >= len(d.filtered) {
		d.cursor = len(d.filtered) - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
}

// selected returns the mentor under the cursor.
func (d directoryState) selected() *mentor.Mentor {
	if d.cursor < 0 || d.cursor >= len(d.filtered) {
		return nil
	}
	return &d.filtered[d.cursor]
}

func (m Model) updateMentorsLoaded(msg mentorsLoadedMsg) Model {
	m.directory.loading = false
	m.directory.mentors = msg.mentors
	m.directory.refilter()
	return m
}

func (m Model) updateDirectory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.directory

	if d.search.Focused() {
		switch msg.String() {
		case "enter", "esc":
			if msg.String() == "esc" {
				d.search.SetValue("")
			}
			d.search.Blur()
			d.refilter()
			return m, nil
		default:
			var cmd tea.Cmd
			d.search, cmd = d.search.Update(msg)
			d.refilter()
			return m, cmd
		}
	}

	switch msg.String() {
	case "/":
		d.search.Focus()
		return m, textinput.Blink
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.filtered)-1 {
			d.cursor++
		}
	case "s":
		d.query.Sort = nextSort(d.query.Sort)
		d.refilter()
	case "m":
		d.query.Mode = nextModeFilter(d.query.Mode)
		d.refilter()
	case "r":
		d.loading = true
		return m, loadMentors(m.deps.Client)
	case "enter":
		if sel := d.selected(); sel != nil {
			return m.openBooking(*sel)
		}
	}
	return m, nil
}

func nextSort(s mentor.SortOrder) mentor.SortOrder {
	switch s {
	case mentor.SortByName:
		return mentor.SortByPrice
	case mentor.SortByPrice:
		return mentor.SortBySessions
	default:
		return mentor.SortByName
	}
}

// nextModeFilter cycles any -> chat -> video -> any.
func nextModeFilter(mode mentor.SessionType) mentor.SessionType {
	switch mode {
	case "":
		return mentor.SessionChat
	case mentor.SessionChat:
		return mentor.SessionVideo
	default:
		return ""
	}
}

func (m Model) viewDirectory() string {
	d := m.directory
	var b strings.Builder

	b.WriteString(styles.Title.Render("Find a mentor"))
	b.WriteString("\n")

	searchLabel := styles.Muted.Render("Search: ")
	b.WriteString(searchLabel + d.search.View())
	b.WriteString("  " + styles.Muted.Render(fmt.Sprintf("sort:%s", d.query.Sort)))
	if d.query.Mode != "" {
		b.WriteString("  " + styles.Muted.Render(fmt.Sprintf("mode:%s", d.query.Mode)))
	}
	b.WriteString("\n\n")

	if d.loading {
		b.WriteString(m.spinner.View() + " Loading mentors...")
		return styles.ContentBox.Render(b.String())
	}
	if len(d.filtered) == 0 {
		b.WriteString(styles.Muted.Render("No mentors match. Clear the search with [/] then [esc]."))
		return styles.ContentBox.Render(b.String())
	}

	for i, mt := range d.filtered {
		b.WriteString(renderMentorRow(mt, i == d.cursor))
		b.WriteString("\n")
	}
	return styles.ContentBox.Render(b.String())
}

func renderMentorRow(mt mentor.Mentor, active bool) string {
	marker := "  "
	name := styles.Text.Render(mt.Name)
	if active {
		marker = styles.Primary.Render("> ")
		name = styles.Primary.Render(mt.Name)
	}

	price := styles.Muted.Render("unpriced")
	if unit, ok := mt.CheapestUnit(); ok {
		price = styles.Secondary.Render(fmt.Sprintf("₹%d/15m", unit))
	}

	parts := []string{marker + name, styles.Subtitle.Render(mt.Title), price}
	if mt.Stats.SessionsCompleted > 0 {
		parts = append(parts, styles.Muted.Render(fmt.Sprintf("%d sessions", mt.Stats.SessionsCompleted)))
	}
	if len(mt.Skills) > 0 {
		parts = append(parts, styles.Muted.Render(util.TruncateString(strings.Join(mt.Skills, ", "), 40)))
	}
	return strings.Join(parts, "  ")
}
