package calendar

import (
	"slices"
	"time"
)

// Page is the navigation state of the calendar page.
type Page struct {
	View        View
	WeekStart   time.Weekday
	ExcludeDays []time.Weekday
	ViewDate    time.Time
	CurrentWeek time.Time
}

func NewPage(view View, weekStart time.Weekday, excludeDays []int, now time.Time) *Page {
	exclude := make([]time.Weekday, 0, len(excludeDays))
	for _, d := range excludeDays {
		if d >= 0 && d <= 6 {
			exclude = append(exclude, time.Weekday(d))
		}
	}
	return &Page{
		View:        view,
		WeekStart:   weekStart,
		ExcludeDays: exclude,
		ViewDate:    now,
		CurrentWeek: now,
	}
}

func (p *Page) Range() (time.Time, time.Time) {
	return Range(p.View, p.ViewDate, p.WeekStart)
}

func (p *Page) step() int {
	switch p.View {
	case Day:
		return 1
	case Week:
		return 7
	default:
		return 14
	}
}

func (p *Page) Next() {
	p.ViewDate = p.ViewDate.AddDate(0, 0, p.step())
}

func (p *Page) Previous() {
	p.ViewDate = p.ViewDate.AddDate(0, 0, -p.step())
}

func (p *Page) Today(now time.Time) {
	p.ViewDate = now
}

// Rollover moves the view one week ahead when now is no longer in the week
// the page was last rolled in. It reports whether anything changed.
func (p *Page) Rollover(now time.Time) bool {
	if SameWeek(now, p.CurrentWeek, p.WeekStart) {
		return false
	}
	p.CurrentWeek = now
	p.ViewDate = p.ViewDate.AddDate(0, 0, 7)
	return true
}

// Days returns the visible days of the current range, skipping excluded weekdays.
func (p *Page) Days() []time.Time {
	start, end := p.Range()
	var days []time.Time
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		if !slices.Contains(p.ExcludeDays, d.Weekday()) {
			days = append(days, d)
		}
	}
	return days
}
