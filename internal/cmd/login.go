package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mentorlane/internal/session"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your Mentorlane account",
	Long: `Sign in and persist the session for later commands.

The email is taken from --email or prompted; the password is always
read from the terminal.

Examples:
  mentorlane login
  mentorlane login --email priya@example.com`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.close()

	reader := bufio.NewReader(cmd.InOrStdin())

	email := strings.TrimSpace(loginEmail)
	if email == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading email: %w", err)
		}
		email = strings.TrimSpace(line)
	}

	fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")

	user, err := app.client.Login(cmd.Context(), email, password)
	if err != nil {
		return err
	}

	sess := session.New(*user)
	if app.cfg.Session.PersistCookies {
		sess.SetCookies(app.client.Cookies())
	}
	if err := app.store.Save(sess); err != nil {
		return err
	}

	app.log.WithUser(user.ID).Info("logged in", "role", user.Role)
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.close()

	if app.sess != nil {
		// Best effort: the local session is cleared regardless.
		if err := app.client.Logout(cmd.Context()); err != nil {
			app.log.Warn("backend logout failed", "error", err)
		}
	}
	if err := app.store.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.close()

	if err := app.requireLogin(); err != nil {
		return err
	}

	// Prefer the backend's view; fall back to the stored session offline.
	user, err := app.client.Me(cmd.Context())
	if err != nil {
		app.log.Warn("whoami fell back to stored session", "error", err)
		user = app.user()
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (%s)\n", user.Name, user.Email, user.Role)
	fmt.Fprintf(cmd.OutOrStdout(), "Session file: %s\n", app.store.Path())
	return nil
}
