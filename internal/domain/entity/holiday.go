package entity

import (
	"time"
)

// DateLayout is the calendar-date format used for holiday windows and event dates.
const DateLayout = "2006-01-02"

type HolidayMode struct {
	IsActive      bool       `json:"is_active" firestore:"isActive"`
	FromDate      string     `json:"from_date" firestore:"fromDate"`
	ToDate        string     `json:"to_date" firestore:"toDate"`
	ActivatedAt   *time.Time `json:"activated_at,omitempty" firestore:"activatedAt,omitempty"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty" firestore:"deactivatedAt,omitempty"`
}

// Covers reports whether now falls inside the closed window [FromDate, ToDate].
// Both bounds and now are reduced to calendar dates in loc; time of day is ignored.
// A window with an unparseable bound never covers anything.
func (h *HolidayMode) Covers(now time.Time, loc *time.Location) bool {
	if h == nil || !h.IsActive {
		return false
	}

	from, ok := ParseDate(h.FromDate, loc)
	if !ok {
		return false
	}
	to, ok := ParseDate(h.ToDate, loc)
	if !ok {
		return false
	}

	today := CalendarDate(now, loc)
	return !today.Before(from) && !today.After(to)
}

// ParseDate reads a YYYY-MM-DD value (or the date part of a longer timestamp) as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	if len(value) < len(DateLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, value[:len(DateLayout)], loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CalendarDate truncates t to midnight of its calendar day in loc.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
