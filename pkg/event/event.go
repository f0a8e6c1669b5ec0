package event

import (
	"fmt"
	"time"
)

// DefaultTitle is the placeholder assigned to events created by the recorder
// before the user renames them.
const DefaultTitle = "Untitled event"

const layoutISO = "2006-01-02"

// UserEvent is a single recorded interval. The id is assigned by the events
// service on create; dateStart <= dateEnd is expected but never enforced.
type UserEvent struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	DateStart Timestamp `json:"dateStart"`
	DateEnd   Timestamp `json:"dateEnd"`
}

// Draft is the create-request body: a UserEvent minus its id.
type Draft struct {
	Title     string    `json:"title"`
	DateStart Timestamp `json:"dateStart"`
	DateEnd   Timestamp `json:"dateEnd"`
}

// New makes a draft for the interval that just ended.
func New(title string, start, end time.Time) Draft {
	if title == "" {
		title = DefaultTitle
	}
	return Draft{
		Title:     title,
		DateStart: Timestamp{Time: start},
		DateEnd:   Timestamp{Time: end},
	}
}

// Duration is the length of the recorded interval.
func (e UserEvent) Duration() time.Duration {
	return e.DateEnd.Sub(e.DateStart.Time)
}

func (e UserEvent) String() string {
	return fmt.Sprintf("%d %s %s", e.ID, e.DateStart, e.Title)
}

// DayKey returns the canonical YYYY-MM-DD key for the UTC calendar date of t.
func DayKey(t time.Time) string {
	return t.UTC().Format(layoutISO)
}

// ParseDayKey reverses DayKey. Keys compare as dates, not as strings.
func ParseDayKey(key string) (time.Time, error) {
	return time.Parse(layoutISO, key)
}
