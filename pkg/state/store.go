// Package state holds the normalized event store and the recorder state
// machine. The store is driven exclusively by actions: effects talk to the
// backend, then feed success or failure back into a single reducer loop.
package state

import (
	"context"
	"errors"
	"sync"
	"time"

	"tableflip.dev/tempo/pkg/client"
	"tableflip.dev/tempo/pkg/event"
)

// Snapshot is a read-only copy of the normalized event collection. Every id
// in Order has exactly one entry in ByID and vice versa.
type Snapshot struct {
	ByID  map[int]event.UserEvent
	Order []int
}

// Store owns the event collection. Mutations happen only on the reducer
// goroutine, in the order actions arrive; two in-flight requests may resolve
// out of order and the last one to land wins.
type Store struct {
	backend client.Backend

	actions  chan Action
	notify   chan struct{}
	failures chan string
	done     <-chan struct{}

	mu    sync.RWMutex
	byID  map[int]event.UserEvent
	order []int
}

// New creates a store bound to the backend and starts its reducer loop. The
// loop runs until ctx is cancelled.
func New(ctx context.Context, backend client.Backend) *Store {
	s := &Store{
		backend:  backend,
		actions:  make(chan Action, 64),
		notify:   make(chan struct{}, 1),
		failures: make(chan string, 8),
		done:     ctx.Done(),
		byID:     make(map[int]event.UserEvent),
	}
	go s.loop()
	return s
}

// Notify signals after each committed mutation so view layers can re-render.
// Signals coalesce; drain and re-read Snapshot.
func (s *Store) Notify() <-chan struct{} {
	return s.notify
}

// Failures delivers the reason string of each failure action. Failures are
// transient notifications; the store keeps no error log.
func (s *Store) Failures() <-chan string {
	return s.failures
}

// Snapshot returns a copy of the current collection.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byID := make(map[int]event.UserEvent, len(s.byID))
	for id, e := range s.byID {
		byID[id] = e
	}
	order := make([]int, len(s.order))
	copy(order, s.order)
	return Snapshot{ByID: byID, Order: order}
}

// Dispatch queues an action for the reducer loop.
func (s *Store) Dispatch(a Action) {
	select {
	case s.actions <- a:
	case <-s.done:
	}
}

func (s *Store) loop() {
	for {
		select {
		case <-s.done:
			return
		case a := <-s.actions:
			s.apply(a)
		}
	}
}

func (s *Store) apply(a Action) {
	switch a := a.(type) {
	case LoadRequested, CreateRequested, UpdateRequested, DeleteRequested:
		// Nothing is applied optimistically, so requests commit nothing.

	case LoadSucceeded:
		s.mu.Lock()
		s.byID = make(map[int]event.UserEvent, len(a.Events))
		s.order = make([]int, 0, len(a.Events))
		for _, e := range a.Events {
			s.byID[e.ID] = e
			s.order = append(s.order, e.ID)
		}
		s.mu.Unlock()
		s.committed()

	case CreateSucceeded:
		s.mu.Lock()
		if _, ok := s.byID[a.Event.ID]; !ok {
			s.order = append(s.order, a.Event.ID)
		}
		s.byID[a.Event.ID] = a.Event
		s.mu.Unlock()
		s.committed()

	case UpdateSucceeded:
		s.mu.Lock()
		if _, ok := s.byID[a.Event.ID]; ok {
			s.byID[a.Event.ID] = a.Event
		}
		s.mu.Unlock()
		s.committed()

	case DeleteSucceeded:
		s.mu.Lock()
		if _, ok := s.byID[a.ID]; ok {
			delete(s.byID, a.ID)
			order := s.order[:0]
			for _, id := range s.order {
				if id != a.ID {
					order = append(order, id)
				}
			}
			s.order = order
		}
		s.mu.Unlock()
		s.committed()

	case LoadFailed:
		s.failed(a.Reason)
	case CreateFailed:
		s.failed(a.Reason)
	case UpdateFailed:
		s.failed(a.Reason)
	case DeleteFailed:
		s.failed(a.Reason)
	}
}

func (s *Store) committed() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *Store) failed(reason string) {
	select {
	case s.failures <- reason:
	default:
	}
}

// Await blocks until the next committed mutation or failure. One-shot
// callers dispatch a single effect and wait for its terminal action this way;
// a failure comes back as an error carrying the fixed reason.
func (s *Store) Await(ctx context.Context) error {
	select {
	case <-s.notify:
		return nil
	case reason := <-s.failures:
		return errors.New(reason)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Load resyncs the whole collection from the service. On success the fetched
// set replaces the store; on failure the store is untouched.
func (s *Store) Load(ctx context.Context) {
	s.Dispatch(LoadRequested{})
	go func() {
		events, err := s.backend.List(ctx)
		if err != nil {
			s.Dispatch(LoadFailed{Reason: ReasonLoadFailed})
			return
		}
		s.Dispatch(LoadSucceeded{Events: events})
	}()
}

// CreateFromRecorder persists the interval the recorder just closed. The
// service assigns the id; the event is appended in arrival order regardless
// of its date.
func (s *Store) CreateFromRecorder(ctx context.Context, start, end time.Time, title string) {
	draft := event.New(title, start, end)
	s.Dispatch(CreateRequested{Title: draft.Title, Start: start, End: end})
	go func() {
		created, err := s.backend.Create(ctx, draft)
		if err != nil {
			s.Dispatch(CreateFailed{Reason: ReasonCreateFailed})
			return
		}
		s.Dispatch(CreateSucceeded{Event: created})
	}()
}

// EditTitle pushes a title change for id. It reports whether an update was
// dispatched: an unchanged title or an unknown id never reaches the network.
func (s *Store) EditTitle(ctx context.Context, id int, title string) bool {
	s.mu.RLock()
	current, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok || current.Title == title {
		return false
	}
	next := current
	next.Title = title

	s.Dispatch(UpdateRequested{Event: next})
	go func() {
		updated, err := s.backend.Update(ctx, next)
		if err != nil {
			s.Dispatch(UpdateFailed{Reason: ReasonUpdateFailed})
			return
		}
		s.Dispatch(UpdateSucceeded{Event: updated})
	}()
	return true
}

// Delete removes the event once the service confirms.
func (s *Store) Delete(ctx context.Context, id int) {
	s.Dispatch(DeleteRequested{ID: id})
	go func() {
		if err := s.backend.Delete(ctx, id); err != nil {
			s.Dispatch(DeleteFailed{Reason: ReasonDeleteFailed})
			return
		}
		s.Dispatch(DeleteSucceeded{ID: id})
	}()
}
