package calendar

import "time"

type View string

const (
	Day      View = "day"
	Week     View = "week"
	TwoWeeks View = "two_weeks"
)

func ParseView(s string) View {
	switch View(s) {
	case Day, Week, TwoWeeks:
		return View(s)
	default:
		return Week
	}
}

func ParseWeekStart(s string) time.Weekday {
	if s == "monday" {
		return time.Monday
	}
	return time.Sunday
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	diff := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -diff)
}

func EndOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	return StartOfWeek(t, weekStart).AddDate(0, 0, 7).Add(-time.Millisecond)
}

func SameWeek(a, b time.Time, weekStart time.Weekday) bool {
	return StartOfWeek(a, weekStart).Equal(StartOfWeek(b.In(a.Location()), weekStart))
}

// Range returns the interval of events to fetch for view around date.
func Range(view View, date time.Time, weekStart time.Weekday) (time.Time, time.Time) {
	switch view {
	case Day:
		return StartOfDay(date), EndOfDay(date)
	case Week:
		return StartOfWeek(date, weekStart), EndOfWeek(date, weekStart)
	default:
		return StartOfWeek(date, weekStart), EndOfWeek(date.AddDate(0, 0, 7), weekStart)
	}
}
