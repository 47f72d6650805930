package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/hilbertsen/teamcal/internal/calendar"
	"github.com/hilbertsen/teamcal/internal/models"
	"github.com/hilbertsen/teamcal/internal/notify"
	"github.com/hilbertsen/teamcal/internal/state"
)

const clock = "15:04"

var (
	bold    = color.New(color.Bold)
	faint   = color.New(color.Faint)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
)

// swatch renders text on the given background color.
func swatch(hex, text string) string {
	r, g, b, ok := calendar.RGB(hex)
	if !ok {
		return text
	}
	fr, fg, fb, _ := calendar.RGB(calendar.Readable(hex))
	return color.RGB(int(fr), int(fg), int(fb)).AddBgRGB(int(r), int(g), int(b)).Sprint(text)
}

func employeeNames(employees []models.Employee) string {
	names := make([]string, len(employees))
	for i, e := range employees {
		names[i] = e.Name
	}
	return strings.Join(names, ", ")
}

// printEvents lists events grouped by the visible days of page.
func printEvents(w io.Writer, page *calendar.Page, events []calendar.Event, bounds state.DayBounds, loc *time.Location) {
	start, end := page.Range()
	_, _ = bold.Fprintf(w, "%s: %s - %s\n", page.View, start.Format("Mon Jan 2"), end.Format("Mon Jan 2 2006"))
	_, _ = faint.Fprintf(w, "hours %02d:00 - %02d:59\n", bounds.Start, bounds.End)

	for _, day := range page.Days() {
		var rows []calendar.Event
		for _, e := range events {
			if calendar.StartOfDay(e.Start.In(loc)).Equal(day) {
				rows = append(rows, e)
			}
		}

		_, _ = fmt.Fprintln(w)
		_, _ = bold.Fprintln(w, day.Format("Monday, January 2"))
		if len(rows) == 0 {
			_, _ = faint.Fprintln(w, "  no events")
			continue
		}

		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.MaxColWidth = 40
		tbl.AddRow("", "ID", "TIME", "TITLE", "TEAM", "EMPLOYEES")
		for _, e := range rows {
			team := ""
			if e.Meta.Team != nil {
				team = e.Meta.Team.Name
			}
			tbl.AddRow(
				swatch(e.Color.Primary, "  "),
				e.Meta.ID,
				e.Start.In(loc).Format(clock)+"-"+e.End.In(loc).Format(clock),
				e.Title,
				team,
				employeeNames(e.Meta.Employees),
			)
		}
		tbl.RightAlign(1)
		_, _ = fmt.Fprintln(w, tbl)
	}
}

func printTeams(w io.Writer, teams []models.Team) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "NAME", "COLORS", "DISABLED")
	for _, t := range teams {
		c := calendar.TeamColors(&t)
		tbl.AddRow(t.ID, t.Name, swatch(c.Primary, c.Primary)+" "+swatch(c.Secondary, c.Secondary), t.Disabled)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(w, tbl)
}

func printEmployees(w io.Writer, employees []models.Employee) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "NAME", "COLOR", "DISABLED")
	for _, e := range employees {
		tbl.AddRow(e.ID, e.Name, swatch(e.Color, e.Color), e.Disabled)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(w, tbl)
}

func printToast(w io.Writer, t notify.Toast) {
	switch t.Level {
	case notify.LevelError:
		_, _ = failure.Fprintln(w, t.Message)
	default:
		_, _ = success.Fprintln(w, t.Message)
	}
}
