// Package viewmodel derives display data from store snapshots. Everything
// here is a pure function; the store is read, never mutated.
package viewmodel

import (
	"fmt"
	"sort"
	"time"

	"tableflip.dev/tempo/pkg/event"
	"tableflip.dev/tempo/pkg/state"
)

// ToArray flattens the snapshot in store order: Order mapped through ByID.
func ToArray(snap state.Snapshot) []event.UserEvent {
	events := make([]event.UserEvent, 0, len(snap.Order))
	for _, id := range snap.Order {
		if e, ok := snap.ByID[id]; ok {
			events = append(events, e)
		}
	}
	return events
}

// GroupByDay buckets events by the UTC day keys of their boundaries. An
// event whose start and end fall on different UTC days appears in both
// buckets; days strictly between are never bucketed. Returns nil when there
// is nothing to group, so callers can tell "nothing yet" from a populated
// calendar. Whether that means "still loading" or "truly empty" is for the
// caller to track.
func GroupByDay(events []event.UserEvent) map[string][]event.UserEvent {
	if len(events) == 0 {
		return nil
	}
	groups := make(map[string][]event.UserEvent)
	for _, e := range events {
		startKey := event.DayKey(e.DateStart.Time)
		groups[startKey] = append(groups[startKey], e)
		if !e.DateStart.SameDay(e.DateEnd.Time) {
			endKey := event.DayKey(e.DateEnd.Time)
			groups[endKey] = append(groups[endKey], e)
		}
	}
	return groups
}

// SortedDayKeys orders the group keys most recent day first. Keys compare as
// parsed dates; unparsable keys sink to the end.
func SortedDayKeys(groups map[string][]event.UserEvent) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		left, lerr := event.ParseDayKey(keys[i])
		right, rerr := event.ParseDayKey(keys[j])
		if lerr != nil || rerr != nil {
			return rerr != nil && lerr == nil
		}
		return left.After(right)
	})
	return keys
}

// Clock renders a duration as zero-padded HH:MM:SS for the recorder display.
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int(d.Seconds())
	hours := seconds / 3600
	seconds -= hours * 3600
	minutes := seconds / 60
	seconds -= minutes * 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// DayLabel renders a day key as its calendar form, e.g. "2 January 2006".
func DayLabel(key string) string {
	t, err := event.ParseDayKey(key)
	if err != nil {
		return key
	}
	return t.Format("2 January 2006")
}
