package commands

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/hilbertsen/teamcal/internal/calendar"
	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/internal/poller"
	"github.com/hilbertsen/teamcal/internal/state"
	"github.com/hilbertsen/teamcal/pkg/dto"
	"github.com/spf13/cobra"
)

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}

// parseTime reads s in one of timeLayouts. Times without a zone are in loc.
func parseTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q, use YYYY-MM-DD HH:MM", s)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

type pageOptions struct {
	View   string
	Date   string
	Offset int
}

func (p *pageOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.View, "view", "", "day, week or two_weeks (default from the view settings)")
	cmd.Flags().StringVar(&p.Date, "date", "", "a date inside the range to show (default today)")
	cmd.Flags().IntVar(&p.Offset, "offset", 0, "pages to move forward, or back when negative")
}

// newPoller builds a poller whose page reflects the page flags.
func (p *pageOptions) newPoller(a *app) (*poller.Poller, error) {
	opts := []poller.Option{
		poller.WithLocation(a.cfg.Location),
		poller.WithLogger(a.logger),
	}
	if p.Date != "" {
		date, err := parseTime(p.Date, a.cfg.Location)
		if err != nil {
			return nil, err
		}
		opts = append(opts, poller.WithClock(func() time.Time { return date }))
	}

	view := a.cfg.View
	if p.View != "" {
		view.View = p.View
	}
	pl := poller.New(a.store, view, opts...)
	for i := 0; i < p.Offset; i++ {
		pl.Next()
	}
	for i := 0; i > p.Offset; i-- {
		pl.Previous()
	}
	return pl, nil
}

func addEvents(topLevel *cobra.Command, o *GlobalOptions) {
	po := &pageOptions{}

	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"calendar", "cal"},
		Short:   "List the events of a calendar page.",
		Example: `
teamcalctl events
teamcalctl events --view day --date 2024-03-12
teamcalctl events --offset -1
`,
		Args: cobra.NoArgs,
		RunE: withApp(o, func(cmd *cobra.Command, a *app, _ []string) error {
			pl, err := po.newPoller(a)
			if err != nil {
				return err
			}
			pl.Refresh()
			a.store.Wait()
			s := a.store.State()

			page := pl.Page()
			bounds := state.NewDayBoundsSelector(a.cfg.Location)(s)
			printEvents(a.out, &page, state.SelectCalendarEvents(s), bounds, a.cfg.Location)
			return nil
		}),
	}
	po.addFlags(cmd)

	topLevel.AddCommand(cmd)
}

type eventOptions struct {
	Title     string
	Details   string
	Start     string
	End       string
	Team      int64
	Employees []int64
}

func (e *eventOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&e.Title, "title", "t", "", "event title")
	cmd.Flags().StringVarP(&e.Details, "details", "d", "", "event details")
	cmd.Flags().StringVar(&e.Start, "start", "", "start time, YYYY-MM-DD HH:MM")
	cmd.Flags().StringVar(&e.End, "end", "", "end time (default one hour after start)")
	cmd.Flags().Int64Var(&e.Team, "team", 0, "team id")
	cmd.Flags().Int64SliceVarP(&e.Employees, "employee", "e", nil, "employee id, repeatable")
}

func (e *eventOptions) build(loc *time.Location) (dto.CreateEvent, error) {
	req := dto.CreateEvent{
		Title:       e.Title,
		Details:     e.Details,
		EmployeeIDs: e.Employees,
	}
	if req.EmployeeIDs == nil {
		req.EmployeeIDs = []int64{}
	}
	if e.Start != "" {
		start, err := parseTime(e.Start, loc)
		if err != nil {
			return req, err
		}
		draft := models.NewDraftEvent(start)
		req.Start, req.End = draft.Start, draft.End
	}
	if e.End != "" {
		end, err := parseTime(e.End, loc)
		if err != nil {
			return req, err
		}
		req.End = end
	}
	if e.Team > 0 {
		team := e.Team
		req.TeamID = &team
	}
	return req, models.ValidateCreateEvent(req)
}

func addEvent(topLevel *cobra.Command, o *GlobalOptions) {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Create, move or delete a single event.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEventCreate(cmd, o)
	addEventMove(cmd, o)
	addEventDelete(cmd, o)

	topLevel.AddCommand(cmd)
}

func addEventCreate(parent *cobra.Command, o *GlobalOptions) {
	eo := &eventOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event.",
		Example: `
teamcalctl event create -t "Night shift" --start "2024-03-12 22:00" --end "2024-03-13 06:00" --team 2 -e 4 -e 7
`,
		Args: cobra.NoArgs,
		RunE: withApp(o, func(cmd *cobra.Command, a *app, _ []string) error {
			req, err := eo.build(a.cfg.Location)
			if err != nil {
				return err
			}
			if err := a.requireLogin(); err != nil {
				return err
			}

			a.do(state.GetTeams{}, state.GetEmployees{})
			before := eventIDs(a.store.State())
			s := a.do(state.CreateEvent{Event: req})

			for _, e := range s.Events.Events {
				if !e.Placeholder() && !slices.Contains(before, e.ID) {
					_, _ = success.Fprintf(a.out, "created event %d\n", e.ID)
					return nil
				}
			}
			return fmt.Errorf("event was not created")
		}),
	}
	eo.addFlags(cmd)

	parent.AddCommand(cmd)
}

func addEventMove(parent *cobra.Command, o *GlobalOptions) {
	var start, end string

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move an event to a new start, keeping its duration unless --end is set.",
		Example: `
teamcalctl event move 12 --start "2024-03-13 08:00"
`,
		Args: cobra.ExactArgs(1),
		RunE: withApp(o, func(cmd *cobra.Command, a *app, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			newStart, err := parseTime(start, a.cfg.Location)
			if err != nil {
				return err
			}
			var newEnd *time.Time
			if end != "" {
				t, err := parseTime(end, a.cfg.Location)
				if err != nil {
					return err
				}
				newEnd = &t
			}
			if err := a.requireLogin(); err != nil {
				return err
			}

			event, err := a.findEvent(id)
			if err != nil {
				return err
			}
			req := calendar.Move(calendar.FromEvent(event), newStart, newEnd)
			if err := models.ValidateUpdateEvent(req); err != nil {
				return err
			}

			s := a.do(state.UpdateEvent{Event: req})
			i := slices.IndexFunc(s.Events.Events, func(e models.Event) bool { return e.ID == id })
			if i < 0 || !s.Events.Events[i].Start.Equal(req.Start) {
				return fmt.Errorf("event %d was not moved", id)
			}
			_, _ = success.Fprintf(a.out, "moved event %d to %s\n", id, req.Start.In(a.cfg.Location).Format("Mon Jan 2 15:04"))
			return nil
		}),
	}
	cmd.Flags().StringVar(&start, "start", "", "new start time")
	cmd.Flags().StringVar(&end, "end", "", "new end time")
	_ = cmd.MarkFlagRequired("start")

	parent.AddCommand(cmd)
}

func addEventDelete(parent *cobra.Command, o *GlobalOptions) {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an event.",
		Args:    cobra.ExactArgs(1),
		RunE: withApp(o, func(cmd *cobra.Command, a *app, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.requireLogin(); err != nil {
				return err
			}

			if _, err := a.findEvent(id); err != nil {
				return err
			}
			s := a.do(state.DeleteEvent{ID: id})
			if slices.Contains(eventIDs(s), id) {
				return fmt.Errorf("event %d was not deleted", id)
			}
			_, _ = success.Fprintf(a.out, "deleted event %d\n", id)
			return nil
		}),
	}

	parent.AddCommand(cmd)
}

// findEvent loads all events and returns the one with id.
func (a *app) findEvent(id int64) (models.Event, error) {
	s := a.do(state.GetEvents{})
	for _, e := range s.Events.Events {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Event{}, fmt.Errorf("event %d not found", id)
}

func eventIDs(s state.AppState) []int64 {
	ids := make([]int64, 0, len(s.Events.Events))
	for _, e := range s.Events.Events {
		ids = append(ids, e.ID)
	}
	return ids
}
