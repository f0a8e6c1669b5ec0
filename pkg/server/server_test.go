package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tableflip.dev/tempo/pkg/client"
	"tableflip.dev/tempo/pkg/event"
	"tableflip.dev/tempo/pkg/store"
)

type testConfig struct {
	base string
}

func (c *testConfig) URL() string      { return "http://localhost:3001" }
func (c *testConfig) BasePath() string { return c.base }
func (c *testConfig) Listen() string   { return ":3001" }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	p, err := store.Load(&testConfig{base: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	srv := httptest.NewServer((&Server{Persistence: p}).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestRoundTripThroughClient(t *testing.T) {
	srv := newTestServer(t)
	c := client.New(srv.URL)
	ctx := context.Background()

	events, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty collection, got %v", events)
	}

	start := time.Date(2020, 1, 1, 9, 0, 0, 0, time.UTC)
	created, err := c.Create(ctx, event.New("standup", start, start.Add(15*time.Minute)))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 1 || created.Title != "standup" {
		t.Fatalf("unexpected created event: %v", created)
	}
	if !created.DateStart.Equal(start) {
		t.Fatalf("start timestamp did not survive the wire: %v", created.DateStart)
	}

	created.Title = "daily standup"
	updated, err := c.Update(ctx, created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "daily standup" {
		t.Fatalf("unexpected updated event: %v", updated)
	}

	events, err = c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 1 || events[0].Title != "daily standup" {
		t.Fatalf("unexpected collection: %v", events)
	}

	if err := c.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	events, err = c.List(ctx)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty collection after delete, got %v", events)
	}
}

func TestDeleteRespondsEmptyObject(t *testing.T) {
	srv := newTestServer(t)

	start := time.Date(2020, 1, 1, 9, 0, 0, 0, time.UTC)
	if _, err := client.New(srv.URL).Create(context.Background(), event.New("x", start, start.Add(time.Hour))); err != nil {
		t.Fatalf("create: %v", err)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/events/1", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %s", resp.Status)
	}
	body, _ := io.ReadAll(resp.Body)
	if got := strings.TrimSpace(string(body)); got != "{}" {
		t.Fatalf("expected {} body, got %q", got)
	}
}

func TestUnknownIDIs404(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/events/42")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %s", resp.Status)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/events/42", nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %s", resp.Status)
	}
}

func TestPathWinsOverBodyOnPut(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	c := client.New(srv.URL)

	start := time.Date(2020, 1, 1, 9, 0, 0, 0, time.UTC)
	if _, err := c.Create(ctx, event.New("one", start, start.Add(time.Hour))); err != nil {
		t.Fatalf("create: %v", err)
	}

	body := strings.NewReader(`{"id":99,"title":"renamed","dateStart":"2020-01-01T09:00:00Z","dateEnd":"2020-01-01T10:00:00Z"}`)
	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/events/1", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %s", resp.Status)
	}

	events, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 1 || events[0].ID != 1 || events[0].Title != "renamed" {
		t.Fatalf("unexpected collection: %v", events)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodPatch, srv.URL+"/events", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %s", resp.Status)
	}
}
