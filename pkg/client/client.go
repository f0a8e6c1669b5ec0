// Package client talks to the remote events service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tableflip.dev/tempo/pkg/event"
)

// Backend defines the events service contract the state layer depends on.
type Backend interface {
	List(ctx context.Context) ([]event.UserEvent, error)
	Create(ctx context.Context, draft event.Draft) (event.UserEvent, error)
	Update(ctx context.Context, ev event.UserEvent) (event.UserEvent, error)
	Delete(ctx context.Context, id int) error
}

// New returns a Backend for the events collection at base, e.g.
// http://localhost:3001.
func New(base string) *REST {
	return &REST{Base: base, Client: http.DefaultClient}
}

// REST implements Backend over the events wire contract:
// GET/POST /events, PUT/DELETE /events/{id}.
type REST struct {
	Base   string
	Client *http.Client
}

var _ Backend = (*REST)(nil)

func (r *REST) List(ctx context.Context) ([]event.UserEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.Base+"/events", nil)
	if err != nil {
		return nil, fmt.Errorf("client: list events: %w", err)
	}
	var events []event.UserEvent
	if err := r.do(req, &events); err != nil {
		return nil, fmt.Errorf("client: list events: %w", err)
	}
	return events, nil
}

func (r *REST) Create(ctx context.Context, draft event.Draft) (event.UserEvent, error) {
	req, err := r.jsonRequest(ctx, http.MethodPost, r.Base+"/events", draft)
	if err != nil {
		return event.UserEvent{}, fmt.Errorf("client: create event: %w", err)
	}
	var created event.UserEvent
	if err := r.do(req, &created); err != nil {
		return event.UserEvent{}, fmt.Errorf("client: create event: %w", err)
	}
	return created, nil
}

func (r *REST) Update(ctx context.Context, ev event.UserEvent) (event.UserEvent, error) {
	url := fmt.Sprintf("%s/events/%d", r.Base, ev.ID)
	req, err := r.jsonRequest(ctx, http.MethodPut, url, ev)
	if err != nil {
		return event.UserEvent{}, fmt.Errorf("client: update event: %w", err)
	}
	var updated event.UserEvent
	if err := r.do(req, &updated); err != nil {
		return event.UserEvent{}, fmt.Errorf("client: update event: %w", err)
	}
	return updated, nil
}

func (r *REST) Delete(ctx context.Context, id int) error {
	url := fmt.Sprintf("%s/events/%d", r.Base, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("client: delete event: %w", err)
	}
	if err := r.do(req, nil); err != nil {
		return fmt.Errorf("client: delete event: %w", err)
	}
	return nil
}

func (r *REST) jsonRequest(ctx context.Context, method, url string, body interface{}) (*http.Request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do sends the request and decodes the response body into out when out is
// non-nil. Any non-2xx status is an error; the body is drained either way so
// connections can be reused.
func (r *REST) do(req *http.Request, out interface{}) error {
	c := r.Client
	if c == nil {
		c = http.DefaultClient
	}
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
