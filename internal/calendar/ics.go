package calendar

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/hilbertsen/teamcal/internal/models"
)

const productID = "-//teamcal//calendar//EN"

// ExportICS renders events as an iCalendar document. Unsaved events are skipped.
func ExportICS(events []models.Event, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range events {
		if e.Placeholder() {
			continue
		}
		ve := cal.AddEvent(fmt.Sprintf("event-%d@teamcal", e.ID))
		ve.SetDtStampTime(stamp)
		ve.SetStartAt(e.Start)
		ve.SetEndAt(e.End)
		ve.SetSummary(e.Title)
		if e.Details != "" {
			ve.SetDescription(e.Details)
		}
		if e.Team != nil {
			ve.SetProperty(ical.ComponentPropertyCategories, e.Team.Name)
		}
		if len(e.Employees) > 0 {
			names := make([]string, len(e.Employees))
			for i, emp := range e.Employees {
				names[i] = emp.Name
			}
			ve.SetProperty(ical.ComponentPropertyComment, strings.Join(names, ", "))
		}
	}
	return cal.Serialize()
}
