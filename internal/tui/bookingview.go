package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mentorlane/internal/booking"
	"mentorlane/internal/mentor"
	"mentorlane/internal/tui/styles"
)

// bookingState is the calendar screen for one mentor: day navigation,
// slot picking, topic entry and the hand-off to the payment form.
type bookingState struct {
	mentor *mentor.Mentor

	loading bool
	days    []booking.CalendarDay
	dates   []string
	dateIdx int
	slotIdx int

	sel   *booking.Selection
	topic textinput.Model

	submitting bool
	payment    *paymentForm
	receipt    *booking.Receipt
}

// paymentForm collects the provider's completion fields after the
// hosted checkout page was opened.
type paymentForm struct {
	order     booking.Order
	paymentID textinput.Model
	signature textinput.Model
	focus     int
}

func newPaymentForm(order booking.Order) *paymentForm {
	paymentID := textinput.New()
	paymentID.Placeholder = "pay_..."
	paymentID.CharLimit = 64
	paymentID.Width = 40
	paymentID.Focus()

	signature := textinput.New()
	signature.Placeholder = "signature from the provider callback"
	signature.CharLimit = 128
	signature.Width = 40

	return &paymentForm{order: order, paymentID: paymentID, signature: signature}
}

// openBooking switches to the booking screen and loads the calendar.
func (m Model) openBooking(mt mentor.Mentor) (tea.Model, tea.Cmd) {
	topic := textinput.New()
	topic.Placeholder = "what do you want to cover?"
	topic.CharLimit = 140
	topic.Width = 48

	mode := mentor.SessionVideo
	if !mt.Pricing.Offers(mode) {
		mode = mentor.SessionChat
	}

	m.view = viewBooking
	m.errorMessage = ""
	m.booking = bookingState{
		mentor:  &mt,
		loading: true,
		sel:     booking.NewSelection(mode),
		topic:   topic,
	}

	from := m.now().Format("2006-01-02")
	to := m.now().AddDate(0, 0, 14).Format("2006-01-02")
	return m, loadCalendar(m.deps.Client, mt.ID, from, to)
}

func (m Model) updateCalendarLoaded(msg calendarLoadedMsg) Model {
	b := &m.booking
	if b.mentor == nil || b.mentor.ID != msg.mentorID {
		return m
	}
	b.loading = false
	b.days = msg.days
	b.dates = booking.AvailableDates(msg.days)
	b.dateIdx = 0
	b.slotIdx = 0
	if len(b.dates) > 0 {
		b.sel.SelectDate(b.dates[0])
	}
	return m
}

// currentDay returns the calendar day under the date cursor.
func (b bookingState) currentDay() *booking.CalendarDay {
	if b.dateIdx < 0 || b.dateIdx >= len(b.dates) {
		return nil
	}
	date := b.dates[b.dateIdx]
	for i := range b.days {
		if b.days[i].Date == date {
			return &b.days[i]
		}
	}
	return nil
}

func (m Model) updateBooking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := &m.booking

	if b.payment != nil {
		return m.updatePaymentForm(msg)
	}

	if b.topic.Focused() {
		switch msg.String() {
		case "enter", "esc":
			b.topic.Blur()
			b.sel.Topic = b.topic.Value()
			return m, nil
		default:
			var cmd tea.Cmd
			b.topic, cmd = b.topic.Update(msg)
			b.sel.Topic = b.topic.Value()
			return m, cmd
		}
	}

	if b.submitting {
		// Only the payment form interacts mid-flight.
		return m, nil
	}

	switch msg.String() {
	case "esc":
		if b.receipt != nil {
			return m.switchToOrders()
		}
		m.view = viewDirectory
		return m, nil
	case "left", "h":
		if b.dateIdx > 0 {
			b.dateIdx--
			b.slotIdx = 0
			b.sel.SelectDate(b.dates[b.dateIdx])
		}
	case "right", "l":
		if b.dateIdx < len(b.dates)-1 {
			b.dateIdx++
			b.slotIdx = 0
			b.sel.SelectDate(b.dates[b.dateIdx])
		}
	case "up", "k":
		if b.slotIdx > 0 {
			b.slotIdx--
		}
	case "down", "j":
		if day := b.currentDay(); day != nil && b.slotIdx < len(day.Slots)-1 {
			b.slotIdx++
		}
	case " ":
		if day := b.currentDay(); day != nil && b.slotIdx < len(day.Slots) {
			b.sel.ToggleSlot(day.Slots[b.slotIdx])
		}
	case "t":
		b.topic.Focus()
		return m, textinput.Blink
	case "m":
		b.sel.Mode = nextOfferedMode(b.sel.Mode, b.mentor.Pricing)
	case "enter":
		if b.receipt != nil {
			return m.switchToOrders()
		}
		ready := m.deps.Flow != nil && b.sel.CanSubmit(b.mentor.Pricing, m.providerReady())
		if !ready {
			m.setStatus("pick a date, at least one slot and a topic first")
			return m, nil
		}
		b.submitting = true
		m.errorMessage = ""
		m.statusMessage = ""
		return m, submitBooking(m.deps.Flow, b.mentor.ID, b.sel, b.mentor.Pricing)
	}
	return m, nil
}

func (m Model) providerReady() bool {
	return m.deps.Flow != nil && m.deps.Flow.CheckoutReady()
}

// nextOfferedMode cycles through the modes the mentor actually prices.
func nextOfferedMode(mode mentor.SessionType, table mentor.PricingTable) mentor.SessionType {
	all := mentor.SessionTypes()
	start := 0
	for i, s := range all {
		if s == mode {
			start = i
			break
		}
	}
	for i := 1; i <= len(all); i++ {
		next := all[(start+i)%len(all)]
		if table.Offers(next) {
			return next
		}
	}
	return mode
}

func (m Model) updatePaymentForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := &m.booking
	form := b.payment

	switch msg.String() {
	case "tab", "shift+tab":
		form.focus = (form.focus + 1) % 2
		if form.focus == 0 {
			form.paymentID.Focus()
			form.signature.Blur()
		} else {
			form.paymentID.Blur()
			form.signature.Focus()
		}
		return m, textinput.Blink
	case "enter":
		m.deps.Prompt.resolve(booking.CheckoutOutcome{
			Result:    booking.ResultCompleted,
			PaymentID: strings.TrimSpace(form.paymentID.Value()),
			Signature: strings.TrimSpace(form.signature.Value()),
		})
		b.payment = nil
		return m, nil
	case "esc":
		m.deps.Prompt.resolve(booking.CheckoutOutcome{Result: booking.ResultDismissed})
		b.payment = nil
		return m, nil
	case "ctrl+f":
		m.deps.Prompt.resolve(booking.CheckoutOutcome{
			Result: booking.ResultFailed,
			Reason: "payment failed at the provider",
		})
		b.payment = nil
		return m, nil
	}

	var cmd tea.Cmd
	if form.focus == 0 {
		form.paymentID, cmd = form.paymentID.Update(msg)
	} else {
		form.signature, cmd = form.signature.Update(msg)
	}
	return m, cmd
}

func (m Model) updateSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	b := &m.booking
	b.submitting = false
	b.payment = nil
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	b.receipt = msg.receipt
	m.setStatus("booking confirmed")
	return m, nil
}

func (m Model) viewBooking() string {
	b := m.booking
	if b.mentor == nil {
		return styles.ContentBox.Render("No mentor selected.")
	}

	var out strings.Builder
	out.WriteString(styles.Title.Render("Book " + b.mentor.Name))
	out.WriteString("\n")

	switch {
	case b.receipt != nil:
		out.WriteString(renderReceipt(b.receipt))
	case b.payment != nil:
		out.WriteString(renderPaymentForm(b.payment))
	case b.loading:
		out.WriteString(m.spinner.View() + " Loading calendar...")
	case len(b.dates) == 0:
		out.WriteString(styles.Muted.Render("No open days in the next two weeks."))
	case b.submitting:
		out.WriteString(m.spinner.View() + " Reserving your slots...")
	default:
		out.WriteString(m.renderCalendar())
	}
	return styles.ContentBox.Render(out.String())
}

func (m Model) renderCalendar() string {
	b := m.booking
	var out strings.Builder

	// Date strip.
	var dates []string
	for i, date := range b.dates {
		if i == b.dateIdx {
			dates = append(dates, styles.TabActive.Render(date))
		} else {
			dates = append(dates, styles.TabInactive.Render(date))
		}
	}
	out.WriteString(strings.Join(dates, " "))
	out.WriteString("\n\n")

	day := b.currentDay()
	if day == nil || len(day.Slots) == 0 {
		out.WriteString(styles.Muted.Render("No slots on this day."))
		out.WriteString("\n")
	} else {
		for i, slot := range day.Slots {
			out.WriteString(renderSlotRow(slot, b.sel.Selected(slot), i == b.slotIdx))
			out.WriteString("\n")
		}
	}

	out.WriteString("\n")
	out.WriteString(styles.Muted.Render("Mode: ") + styles.Text.Render(string(b.sel.Mode)))
	out.WriteString("   " + styles.Muted.Render("Topic: ") + b.topic.View())
	out.WriteString("\n")
	out.WriteString(m.renderQuote())
	return out.String()
}

func renderSlotRow(slot booking.TimeSlot, selected, active bool) string {
	label := fmt.Sprintf("%s - %s", slot.Start, slot.End)
	switch {
	case !slot.Available:
		label = styles.SlotTaken.Render(label + "  taken")
	case selected:
		label = styles.SlotSelected.Render(" " + label + " ")
	default:
		label = styles.SlotAvailable.Render(label)
	}
	marker := "  "
	if active {
		marker = styles.Primary.Render("> ")
	}
	return marker + label
}

func (m Model) renderQuote() string {
	b := m.booking
	quote, err := booking.QuoteSelection(b.sel, b.mentor.Pricing)
	if err != nil {
		return styles.Muted.Render("Select slots to see the price.")
	}
	return fmt.Sprintf("%s %s  %s",
		styles.Muted.Render("Total:"),
		styles.Secondary.Render(fmt.Sprintf("₹%d", quote.Price)),
		styles.Muted.Render(fmt.Sprintf("(%d min, %d × 15m units)", quote.TotalMinutes, quote.Units)),
	)
}

func renderPaymentForm(form *paymentForm) string {
	var out strings.Builder
	out.WriteString(styles.Subtitle.Render("Complete payment in your browser, then paste the confirmation."))
	out.WriteString("\n\n")
	out.WriteString(styles.Muted.Render(fmt.Sprintf("Order %s  %s %d", form.order.ID, form.order.Currency, form.order.Amount)))
	out.WriteString("\n\n")
	out.WriteString(styles.Muted.Render("Payment ID: ") + form.paymentID.View())
	out.WriteString("\n")
	out.WriteString(styles.Muted.Render("Signature:  ") + form.signature.View())
	return out.String()
}

func renderReceipt(r *booking.Receipt) string {
	var out strings.Builder
	out.WriteString(styles.Secondary.Render("Booking confirmed"))
	out.WriteString("\n\n")
	out.WriteString(styles.Muted.Render("Order:     ") + styles.Text.Render(r.OrderID) + "\n")
	out.WriteString(styles.Muted.Render("Payment:   ") + styles.Text.Render(r.PaymentID) + "\n")
	out.WriteString(styles.Muted.Render("Reference: ") + styles.Text.Render(r.Reference) + "\n")
	out.WriteString(styles.Muted.Render("Amount:    ") + styles.Text.Render(fmt.Sprintf("%s %d", r.Currency, r.Amount)) + "\n\n")
	out.WriteString(styles.Muted.Render("Press enter to see your sessions."))
	return out.String()
}
