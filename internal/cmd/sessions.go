package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"mentorlane/internal/api"
	"mentorlane/internal/errors"
	"mentorlane/internal/meeting"
	"mentorlane/internal/session"
	"mentorlane/internal/util"
)

var (
	sessionsRange  string
	sessionsStatus string
	sessionsPage   int
	sessionsLimit  int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List your booked sessions",
	Long: `List booked sessions without entering the interactive browser.

Examples:
  mentorlane sessions
  mentorlane sessions --range past
  mentorlane sessions --status cancelled --range all
  mentorlane sessions --page 2`,
	RunE: runSessions,
}

var cancelSessionCmd = &cobra.Command{
	Use:   "cancel <meeting-id>",
	Short: "Cancel a booked session",
	Long: `Cancel a session you organize. The reason is required and is shared
with the other party; the booker is refunded.`,
	Args: cobra.ExactArgs(1),
	RunE: runCancelSession,
}

var cancelReason string

func init() {
	sessionsCmd.Flags().StringVarP(&sessionsRange, "range", "r", "upcoming", "which sessions to show (upcoming|past|all)")
	sessionsCmd.Flags().StringVar(&sessionsStatus, "status", "", "only sessions with this status")
	sessionsCmd.Flags().IntVar(&sessionsPage, "page", 1, "page number")
	sessionsCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "sessions per page")
	rootCmd.AddCommand(sessionsCmd)

	cancelSessionCmd.Flags().StringVar(&cancelReason, "reason", "", "reason shared with the other party (required)")
	_ = cancelSessionCmd.MarkFlagRequired("reason")
	rootCmd.AddCommand(cancelSessionCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	rng := meeting.RangeFilter(sessionsRange)
	if !rng.Valid() {
		return errors.NewValidationError("range must be upcoming, past or all").
			WithField("range").WithValue(sessionsRange)
	}

	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.close()

	if err := app.requireLogin(); err != nil {
		return err
	}

	page, err := app.client.Meetings(cmd.Context(), api.MeetingQuery{
		Range:  rng,
		Status: meeting.Status(sessionsStatus),
		Page:   sessionsPage,
		Limit:  sessionsLimit,
	})
	if err != nil {
		return err
	}

	// The backend already scopes the query; the local partition keeps the
	// listing honest when records sit on the boundary.
	now := time.Now()
	items := meeting.FilterRecords(page.Items, rng, meeting.Status(sessionsStatus), now)
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No sessions in this range.")
		return nil
	}

	layout := "2006-01-02 3:04 PM"
	if app.cfg.TUI.Clock24h {
		layout = "2006-01-02 15:04"
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tSTATUS\tMODE\tWITH\tTOPIC")
	for i := range items {
		m := &items[i]
		with := m.MentorName
		if app.user() != nil && app.user().Role == session.RoleMentor {
			with = m.UserName
		}
		when := m.ScheduledAt.Local().Format(layout)
		if m.Upcoming(now) && !m.Status.Terminal() {
			when += fmt.Sprintf(" (in %s)", meeting.FormatUntil(m.ScheduledAt.Sub(now)))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID, when, m.Status.Display(), m.Mode, with, util.TruncateString(m.Topic, 40))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if page.HasMore() {
		fmt.Fprintf(cmd.OutOrStdout(), "More on page %d.\n", page.Page+1)
	}
	return nil
}

func runCancelSession(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.close()

	if err := app.requireLogin(); err != nil {
		return err
	}

	meetingID := args[0]
	if err := app.client.CancelMeeting(cmd.Context(), meetingID, cancelReason); err != nil {
		return err
	}
	app.log.Info("meeting cancelled", "meeting_id", meetingID)
	fmt.Fprintln(cmd.OutOrStdout(), "Session cancelled. The refund has been triggered.")
	return nil
}
