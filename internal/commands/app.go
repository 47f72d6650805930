package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/hilbertsen/teamcal/internal/api"
	"github.com/hilbertsen/teamcal/internal/config"
	"github.com/hilbertsen/teamcal/internal/guard"
	"github.com/hilbertsen/teamcal/internal/logging"
	"github.com/hilbertsen/teamcal/internal/notify"
	"github.com/hilbertsen/teamcal/internal/state"
	"github.com/hilbertsen/teamcal/internal/store"
	"github.com/spf13/cobra"
)

// app holds the client store and its API ports for one command run.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	client *api.Client
	store  *state.Store
	center *notify.Center
	out    io.Writer
	cancel context.CancelFunc
}

func newApp(cmd *cobra.Command, o *GlobalOptions) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.APIURL != "" {
		cfg.APIURL = o.APIURL
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.ViewFile != "" {
		view, err := config.LoadView(o.ViewFile)
		if err != nil {
			return nil, err
		}
		cfg.View = view
	}
	if o.NoColor {
		color.NoColor = true
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)

	client, err := api.NewClient(cfg.APIURL,
		api.WithTimeout(cfg.HTTPTimeout),
		api.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	a := &app{
		cfg:    cfg,
		logger: logger,
		client: client,
		center: notify.NewCenter(),
		out:    cmd.OutOrStdout(),
		cancel: cancel,
	}
	go a.center.Run(ctx)

	if err := loadSession(cfg.SessionFile, client); err != nil {
		logger.Warn("ignoring saved session", "error", err)
	}

	a.store = state.NewStore(state.Deps{
		Events:    api.NewEventService(client),
		Teams:     api.NewTeamService(client),
		Employees: api.NewEmployeeService(client),
		Auth:      api.NewAuthService(client),
		// A terminal has no page to reload; re-reading the session has the same effect.
		Navigator: state.NavigatorFunc(func(string) {
			a.store.Dispatch(state.CheckLoggedIn{})
		}),
		Notifier: a.center,
		Logger:   logger,
	}, store.WithContext(ctx))

	return a, nil
}

// do dispatches actions in order and waits for the effects they start.
func (a *app) do(actions ...store.Action) state.AppState {
	for _, action := range actions {
		a.store.Dispatch(action)
		a.store.Wait()
	}
	return a.store.State()
}

// close saves the session and stops background work.
func (a *app) close() {
	a.store.Close()
	if err := saveSession(a.cfg.SessionFile, a.client); err != nil {
		a.logger.Warn("failed to save session", "error", err)
	}
	a.printToasts()
	a.cancel()
}

func (a *app) printToasts() {
	for _, t := range a.center.Active() {
		printToast(a.out, t)
	}
}

// admit refreshes the auth status and asks g for a decision.
func (a *app) admit(g *guard.Gate) (guard.Decision, error) {
	a.do(state.CheckLoggedIn{})
	d, decided := g.Admit()
	if !decided {
		return d, fmt.Errorf("could not reach %s", a.cfg.APIURL)
	}
	return d, nil
}

// requireLogin fails early when the API would reject a write.
func (a *app) requireLogin() error {
	d, err := a.admit(guard.Auth(a.store, guard.Options{Disabled: !a.cfg.Auth}))
	if err != nil {
		return err
	}
	if !d.Admitted() {
		return fmt.Errorf("not logged in, run %q first", "teamcalctl login")
	}
	return nil
}

func withApp(o *GlobalOptions, fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, o)
		if err != nil {
			return err
		}
		defer a.close()
		return fn(cmd, a, args)
	}
}
