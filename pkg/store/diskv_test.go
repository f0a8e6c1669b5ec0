package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/tempo/pkg/event"
)

type testConfig struct {
	base string
}

func (c *testConfig) URL() string      { return "http://localhost:3001" }
func (c *testConfig) BasePath() string { return c.base }
func (c *testConfig) Listen() string   { return ":3001" }

func load(t *testing.T, base string) Persistence {
	t.Helper()
	p, err := Load(&testConfig{base: base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return p
}

func draftAt(title string, hour int) event.Draft {
	start := time.Date(2020, 1, 1, hour, 0, 0, 0, time.UTC)
	return event.New(title, start, start.Add(time.Hour))
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	p := load(t, t.TempDir())

	first, err := p.Create(draftAt("one", 9))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := p.Create(draftAt("two", 11))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("unexpected ids: %d, %d", first.ID, second.ID)
	}
}

func TestIDsSurviveReload(t *testing.T) {
	base := t.TempDir()
	p := load(t, base)

	if _, err := p.Create(draftAt("one", 9)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := p.Create(draftAt("two", 11)); err != nil {
		t.Fatalf("create: %v", err)
	}

	reopened := load(t, base)
	third, err := reopened.Create(draftAt("three", 13))
	if err != nil {
		t.Fatalf("create after reload: %v", err)
	}
	if third.ID != 3 {
		t.Fatalf("expected id 3 after reload, got %d", third.ID)
	}
}

func TestListOrdersByCreation(t *testing.T) {
	p := load(t, t.TempDir())

	for _, title := range []string{"one", "two", "three"} {
		if _, err := p.Create(draftAt(title, 9)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all := p.List(context.Background())
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	for i, e := range all {
		if e.ID != i+1 {
			t.Fatalf("unexpected order: %v", all)
		}
	}
	if all[2].Title != "three" {
		t.Fatalf("unexpected last event: %v", all[2])
	}
}

func TestCreateDefaultsEmptyTitle(t *testing.T) {
	p := load(t, t.TempDir())

	start := time.Date(2020, 1, 1, 9, 0, 0, 0, time.UTC)
	created, err := p.Create(event.Draft{
		DateStart: event.Timestamp{Time: start},
		DateEnd:   event.Timestamp{Time: start.Add(time.Hour)},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Title != event.DefaultTitle {
		t.Fatalf("expected default title, got %q", created.Title)
	}
}

func TestGetUpdateDelete(t *testing.T) {
	p := load(t, t.TempDir())
	ctx := context.Background()

	created, err := p.Create(draftAt("one", 9))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := p.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "one" || !got.DateStart.Equal(created.DateStart.Time) {
		t.Fatalf("round trip mismatch: %v vs %v", got, created)
	}

	got.Title = "renamed"
	if _, err := p.Update(got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = p.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Title != "renamed" {
		t.Fatalf("update did not stick: %q", got.Title)
	}

	if err := p.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := p.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestUnknownIDs(t *testing.T) {
	p := load(t, t.TempDir())

	if _, err := p.Get(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := p.Update(event.UserEvent{ID: 42, Title: "ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := p.Delete(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
