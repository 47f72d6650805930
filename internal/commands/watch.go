package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hilbertsen/teamcal/internal/calendar"
	"github.com/hilbertsen/teamcal/internal/notify"
	"github.com/hilbertsen/teamcal/internal/state"
	"github.com/hilbertsen/teamcal/internal/store"
	"github.com/spf13/cobra"
)

func addWatch(topLevel *cobra.Command, o *GlobalOptions) {
	po := &pageOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep printing the calendar page as it changes.",
		Long: `Watch loads the current page and reprints it whenever the events change.
The page refreshes and rolls over to the next week on the schedules in the
view settings. Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: withApp(o, func(cmd *cobra.Command, a *app, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pl, err := po.newPoller(a)
			if err != nil {
				return err
			}

			sub := notify.NewSubscriber()
			a.center.Subscribe(sub)
			defer a.center.Unsubscribe(sub)

			events, cancel := store.Watch(a.store, state.SelectCalendarEvents, store.SameSlice[calendar.Event])
			defer cancel()
			bounds := state.NewDayBoundsSelector(a.cfg.Location)

			if err := pl.Start(); err != nil {
				return err
			}
			defer func() { <-pl.Stop().Done() }()

			for {
				select {
				case <-ctx.Done():
					return nil
				case list := <-events:
					page := pl.Page()
					_, _ = faint.Fprintf(a.out, "\nupdated %s\n", time.Now().In(a.cfg.Location).Format(time.Kitchen))
					printEvents(a.out, &page, list, bounds(a.store.State()), a.cfg.Location)
				case event, ok := <-sub.Send:
					if !ok {
						return nil
					}
					if event.Type == notify.ToastShown {
						printToast(a.out, event.Toast)
					}
				}
			}
		}),
	}
	po.addFlags(cmd)

	topLevel.AddCommand(cmd)
}
