package viewmodel

import (
	"testing"
	"time"

	"tableflip.dev/tempo/pkg/event"
	"tableflip.dev/tempo/pkg/state"
)

func mustTime(t *testing.T, v string) time.Time {
	t.Helper()
	parsed, err := event.ParseTime(v)
	if err != nil {
		t.Fatalf("parse %q: %v", v, err)
	}
	return parsed
}

func testEvent(t *testing.T, id int, title, start, end string) event.UserEvent {
	t.Helper()
	return event.UserEvent{
		ID:        id,
		Title:     title,
		DateStart: event.Timestamp{Time: mustTime(t, start)},
		DateEnd:   event.Timestamp{Time: mustTime(t, end)},
	}
}

func TestToArrayFollowsOrder(t *testing.T) {
	a := testEvent(t, 1, "a", "2020-01-01T09:00:00Z", "2020-01-01T10:00:00Z")
	b := testEvent(t, 2, "b", "2020-01-01T11:00:00Z", "2020-01-01T12:00:00Z")
	snap := state.Snapshot{
		ByID:  map[int]event.UserEvent{1: a, 2: b},
		Order: []int{2, 1},
	}

	events := ToArray(snap)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ID != 2 || events[1].ID != 1 {
		t.Fatalf("order not preserved: %v", events)
	}
}

func TestGroupByDaySpansBoundaries(t *testing.T) {
	overnight := testEvent(t, 1, "overnight", "2020-01-01T23:00:00Z", "2020-01-02T01:00:00Z")
	morning := testEvent(t, 2, "morning", "2020-01-01T09:00:00Z", "2020-01-01T10:00:00Z")

	groups := GroupByDay([]event.UserEvent{overnight, morning})
	if len(groups) != 2 {
		t.Fatalf("expected 2 day buckets, got %d: %v", len(groups), groups)
	}
	if got := len(groups["2020-01-01"]); got != 2 {
		t.Fatalf("expected 2 events on the first day, got %d", got)
	}
	if got := len(groups["2020-01-02"]); got != 1 {
		t.Fatalf("expected 1 event on the second day, got %d", got)
	}
	if groups["2020-01-02"][0].ID != 1 {
		t.Fatalf("wrong event crossed the boundary: %v", groups["2020-01-02"])
	}

	keys := SortedDayKeys(groups)
	if len(keys) != 2 || keys[0] != "2020-01-02" || keys[1] != "2020-01-01" {
		t.Fatalf("expected most recent day first, got %v", keys)
	}
}

func TestGroupByDaySkipsMiddleDays(t *testing.T) {
	long := testEvent(t, 1, "offsite", "2020-01-01T09:00:00Z", "2020-01-04T17:00:00Z")

	groups := GroupByDay([]event.UserEvent{long})
	if len(groups) != 2 {
		t.Fatalf("expected boundary buckets only, got %v", groups)
	}
	if _, ok := groups["2020-01-02"]; ok {
		t.Fatal("middle day should not be bucketed")
	}
	if _, ok := groups["2020-01-03"]; ok {
		t.Fatal("middle day should not be bucketed")
	}
}

func TestGroupByDayUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	local := event.UserEvent{
		ID:        1,
		Title:     "late",
		DateStart: event.Timestamp{Time: time.Date(2020, 1, 2, 1, 0, 0, 0, loc)},
		DateEnd:   event.Timestamp{Time: time.Date(2020, 1, 2, 2, 0, 0, 0, loc)},
	}

	groups := GroupByDay([]event.UserEvent{local})
	if _, ok := groups["2020-01-01"]; !ok {
		t.Fatalf("expected the UTC day, got %v", groups)
	}
}

func TestGroupByDayNilWhenEmpty(t *testing.T) {
	if groups := GroupByDay(nil); groups != nil {
		t.Fatalf("expected nil for no events, got %v", groups)
	}
	if groups := GroupByDay([]event.UserEvent{}); groups != nil {
		t.Fatalf("expected nil for empty slice, got %v", groups)
	}
}

func TestSortedDayKeysComparesDates(t *testing.T) {
	groups := map[string][]event.UserEvent{
		"2020-02-01": nil,
		"2019-12-31": nil,
		"2020-01-15": nil,
	}

	keys := SortedDayKeys(groups)
	want := []string{"2020-02-01", "2020-01-15", "2019-12-31"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("expected %v, got %v", want, keys)
		}
	}
}

func TestClock(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{-5 * time.Second, "00:00:00"},
		{61 * time.Second, "00:01:01"},
		{2*time.Hour + 3*time.Minute + 4*time.Second, "02:03:04"},
		{26 * time.Hour, "26:00:00"},
	}
	for _, c := range cases {
		if got := Clock(c.d); got != c.want {
			t.Fatalf("Clock(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestDayLabel(t *testing.T) {
	if got := DayLabel("2020-01-02"); got != "2 January 2020" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := DayLabel("not-a-date"); got != "not-a-date" {
		t.Fatalf("unparsable keys should pass through, got %q", got)
	}
}
