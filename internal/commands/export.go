package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/hilbertsen/teamcal/internal/calendar"
	"github.com/hilbertsen/teamcal/internal/state"
	"github.com/spf13/cobra"
)

func addExport(topLevel *cobra.Command, o *GlobalOptions) {
	po := &pageOptions{}
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a calendar page as iCalendar.",
		Example: `
teamcalctl export --view two_weeks --out shifts.ics
`,
		Args: cobra.NoArgs,
		RunE: withApp(o, func(cmd *cobra.Command, a *app, _ []string) error {
			pl, err := po.newPoller(a)
			if err != nil {
				return err
			}
			pl.Refresh()
			a.store.Wait()

			ics := calendar.ExportICS(state.SelectEvents(a.store.State()), time.Now().UTC())
			if out == "" {
				_, err := fmt.Fprint(a.out, ics)
				return err
			}
			if err := os.WriteFile(out, []byte(ics), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			_, _ = success.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", out)
			return nil
		}),
	}
	po.addFlags(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "file to write, stdout when empty")

	topLevel.AddCommand(cmd)
}
