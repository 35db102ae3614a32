package cmd

import (
	"fmt"
	"path/filepath"

	"mentorlane/internal/api"
	"mentorlane/internal/booking"
	"mentorlane/internal/config"
	"mentorlane/internal/errors"
	"mentorlane/internal/logging"
	"mentorlane/internal/meeting"
	"mentorlane/internal/payment"
	"mentorlane/internal/session"
	"mentorlane/internal/tui"
	"mentorlane/internal/tui/styles"
)

// appContext wires the client stack for a command invocation.
type appContext struct {
	cfg    *config.Config
	log    *logging.Logger
	client *api.Client
	store  *session.Store
	// sess is nil until requireLogin or loadSession succeeds.
	sess *session.Session
}

// newAppContext loads config, starts logging and builds the API client.
// The session is restored when one exists, silently staying logged out
// otherwise.
func newAppContext() (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logging.NopLogger()
	if cfg.Logging.Enabled {
		log, err = logging.NewLogger(cfg.Logging.ResolveLogDir(), cfg.Logging.Level, logging.RotationConfig{
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			Compress:   cfg.Logging.Compress,
		})
		if err != nil {
			return nil, fmt.Errorf("starting logger: %w", err)
		}
	}

	// Custom themes first, so a configured custom name resolves.
	styles.DiscoverCustomThemes(filepath.Join(config.ConfigDir(), "themes"))
	styles.ApplyTheme(cfg.TUI.Theme)

	client, err := api.NewClient(cfg.API, log)
	if err != nil {
		return nil, err
	}

	store, err := session.NewStore(cfg.Session.ResolveSessionDir())
	if err != nil {
		return nil, err
	}

	app := &appContext{cfg: cfg, log: log, client: client, store: store}
	app.loadSession()
	return app, nil
}

// loadSession restores the persisted session into the client cookie jar.
func (a *appContext) loadSession() {
	sess, err := a.store.Load()
	if err != nil {
		if !errors.Is(err, errors.ErrNotLoggedIn) {
			a.log.Warn("stored session unusable", "error", err)
		}
		return
	}
	a.sess = sess
	if a.cfg.Session.PersistCookies {
		a.client.SetCookies(sess.HTTPCookies())
	}
}

// requireLogin fails with a friendly hint when no session is stored.
func (a *appContext) requireLogin() error {
	if a.sess == nil {
		return errors.Wrap(errors.ErrNotLoggedIn, "run 'mentorlane login' first")
	}
	return nil
}

// user returns the signed-in user, or nil.
func (a *appContext) user() *session.User {
	if a.sess == nil {
		return nil
	}
	return &a.sess.User
}

// joinWindows maps the meeting config onto gate windows.
func (a *appContext) joinWindows() meeting.Windows {
	return meeting.Windows{
		MentorLead: a.cfg.Meeting.MentorJoinLead(),
		MentorLag:  a.cfg.Meeting.MentorJoinLag(),
		UserLead:   a.cfg.Meeting.UserJoinLead(),
		UserLag:    a.cfg.Meeting.UserJoinLag(),
	}
}

// newFlow builds the booking flow with the interactive payment prompt.
func (a *appContext) newFlow() (*booking.Flow, *tui.PaymentPrompt) {
	prompt := tui.NewPaymentPrompt()
	provider := payment.NewProvider(a.cfg.Payment, prompt, a.log)
	flow := booking.NewFlow(a.client, provider, a.log, booking.ReservationAutoRelease)
	return flow, prompt
}

// close flushes the logger.
func (a *appContext) close() {
	_ = a.log.Close()
}
