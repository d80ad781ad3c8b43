package entity

import (
	"time"
)

type Event struct {
	ID              string    `json:"id" firestore:"id"`
	Title           string    `json:"title" firestore:"title"`
	Description     string    `json:"description" firestore:"description"`
	Date            string    `json:"date" firestore:"date"`
	Time            string    `json:"time" firestore:"time"`
	Venue           string    `json:"venue" firestore:"venue"`
	City            string    `json:"city" firestore:"city"`
	College         string    `json:"college" firestore:"college"`
	Organizer       string    `json:"organizer" firestore:"organizer"`
	Image           string    `json:"image,omitempty" firestore:"image,omitempty"`
	RegistrationURL string    `json:"registration_url" firestore:"registrationUrl"`
	CreatedAt       time.Time `json:"created_at" firestore:"createdAt"`
}

// StartsAt combines Date and Time in loc. A missing time means midnight.
func (e *Event) StartsAt(loc *time.Location) (time.Time, bool) {
	day, ok := ParseDate(e.Date, loc)
	if !ok {
		return time.Time{}, false
	}
	if e.Time == "" {
		return day, true
	}
	clock, err := time.ParseInLocation("15:04", e.Time, loc)
	if err != nil {
		return time.Time{}, false
	}
	return day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute), true
}

func (e *Event) IsUpcoming(now time.Time, loc *time.Location) bool {
	start, ok := e.StartsAt(loc)
	return ok && !start.Before(now)
}
