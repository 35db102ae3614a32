package cmd

import (
	"github.com/spf13/cobra"

	"mentorlane/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive mentor browser",
	Long: `Open the full-screen client: search the mentor directory, pick
calendar slots, pay through the hosted checkout and join booked
sessions from the dashboard.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.close()

	if err := app.requireLogin(); err != nil {
		return err
	}

	flow, prompt := app.newFlow()
	return tui.Run(tui.Deps{
		Client:        app.client,
		Flow:          flow,
		Prompt:        prompt,
		User:          app.user(),
		Windows:       app.joinWindows(),
		Log:           app.log.WithView("browse"),
		PageSize:      app.cfg.TUI.MaxListRows,
		Clock24h:      app.cfg.TUI.Clock24h,
		WarnBeforeEnd: app.cfg.Meeting.WarnBeforeEnd(),
	})
}
