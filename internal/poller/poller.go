// Package poller keeps the calendar page fresh: it loads the visible range on
// start, refreshes it on a schedule and rolls the view over when the week ends.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hilbertsen/teamcal/internal/calendar"
	"github.com/hilbertsen/teamcal/internal/config"
	"github.com/hilbertsen/teamcal/internal/logging"
	"github.com/hilbertsen/teamcal/internal/state"
	"github.com/robfig/cron/v3"
)

type Poller struct {
	store  *state.Store
	view   config.ViewConfig
	loc    *time.Location
	now    func() time.Time
	logger *slog.Logger

	mu   sync.Mutex
	page *calendar.Page
	cron *cron.Cron
}

type Option func(*Poller)

func WithClock(now func() time.Time) Option {
	return func(p *Poller) { p.now = now }
}

func WithLocation(loc *time.Location) Option {
	return func(p *Poller) { p.loc = loc }
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Poller) { p.logger = logger }
}

func New(s *state.Store, view config.ViewConfig, opts ...Option) *Poller {
	view.Normalize()
	p := &Poller{
		store:  s,
		view:   view,
		loc:    time.Local,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.page = calendar.NewPage(
		calendar.ParseView(view.View),
		calendar.ParseWeekStart(view.WeekStart),
		view.ExcludeDays,
		p.clock(),
	)
	return p
}

func (p *Poller) clock() time.Time {
	return p.now().In(p.loc)
}

// Start loads teams, employees and the visible events, then schedules the
// refresh and rollover jobs.
func (p *Poller) Start() error {
	c := cron.New(cron.WithLocation(p.loc))
	if _, err := c.AddFunc(p.view.Refresh, p.Refresh); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", p.view.Refresh, err)
	}
	if _, err := c.AddFunc(p.view.Rollover, func() { p.Rollover() }); err != nil {
		return fmt.Errorf("invalid rollover schedule %q: %w", p.view.Rollover, err)
	}

	p.mu.Lock()
	if p.cron != nil {
		p.mu.Unlock()
		return fmt.Errorf("poller already started")
	}
	p.cron = c
	p.mu.Unlock()

	p.store.Dispatch(state.GetTeams{})
	p.store.Dispatch(state.GetEmployees{})
	p.Refresh()

	c.Start()
	logging.Component(context.Background(), p.logger, "poller", "start").Info("poller started",
		"refresh", p.view.Refresh,
		"rollover", p.view.Rollover,
	)
	return nil
}

// Stop halts the schedule. The returned context is done once running jobs finish.
func (p *Poller) Stop() context.Context {
	p.mu.Lock()
	c := p.cron
	p.cron = nil
	p.mu.Unlock()

	if c == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	return c.Stop()
}

// Refresh fetches the events of the visible range.
func (p *Poller) Refresh() {
	p.mu.Lock()
	start, end := p.page.Range()
	p.mu.Unlock()

	p.store.Dispatch(state.GetEvents{Start: &start, End: &end})
}

// Rollover advances the view when the current week has ended and refreshes.
func (p *Poller) Rollover() bool {
	p.mu.Lock()
	rolled := p.page.Rollover(p.clock())
	p.mu.Unlock()

	if rolled {
		logging.Component(context.Background(), p.logger, "poller", "rollover").Info("week rolled over")
		p.Refresh()
	}
	return rolled
}

func (p *Poller) Next() {
	p.navigate(func(page *calendar.Page) { page.Next() })
}

func (p *Poller) Previous() {
	p.navigate(func(page *calendar.Page) { page.Previous() })
}

func (p *Poller) Today() {
	now := p.clock()
	p.navigate(func(page *calendar.Page) { page.Today(now) })
}

func (p *Poller) SetView(view calendar.View) {
	p.navigate(func(page *calendar.Page) { page.View = view })
}

func (p *Poller) navigate(fn func(*calendar.Page)) {
	p.mu.Lock()
	fn(p.page)
	p.mu.Unlock()
	p.Refresh()
}

// Page returns a copy of the current page.
func (p *Poller) Page() calendar.Page {
	p.mu.Lock()
	defer p.mu.Unlock()
	return *p.page
}
