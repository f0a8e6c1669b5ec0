package state

import (
	"time"

	"tableflip.dev/tempo/pkg/event"
)

// Action is the closed set of store mutations. Every backend operation runs
// through a request/success/failure triple; the reducer matches the full set.
type Action interface {
	isAction()
}

// LoadRequested marks the start of a full fetch. No state change.
type LoadRequested struct{}

// LoadSucceeded replaces the entire store with the fetched set.
type LoadSucceeded struct {
	Events []event.UserEvent
}

// LoadFailed records that the fetch was abandoned. No state change.
type LoadFailed struct {
	Reason string
}

// CreateRequested marks the start of persisting a just-ended interval.
type CreateRequested struct {
	Title string
	Start time.Time
	End   time.Time
}

// CreateSucceeded appends the event the service created, id included.
type CreateSucceeded struct {
	Event event.UserEvent
}

// CreateFailed discards the attempted create. No state change.
type CreateFailed struct {
	Reason string
}

// UpdateRequested marks the start of pushing an edited event.
type UpdateRequested struct {
	Event event.UserEvent
}

// UpdateSucceeded replaces the stored record with the authoritative version.
type UpdateSucceeded struct {
	Event event.UserEvent
}

// UpdateFailed discards the attempted update. No state change.
type UpdateFailed struct {
	Reason string
}

// DeleteRequested marks the start of removing an event.
type DeleteRequested struct {
	ID int
}

// DeleteSucceeded removes the id from the store once the service confirms.
type DeleteSucceeded struct {
	ID int
}

// DeleteFailed leaves the store as it was. No state change.
type DeleteFailed struct {
	Reason string
}

func (LoadRequested) isAction()   {}
func (LoadSucceeded) isAction()   {}
func (LoadFailed) isAction()      {}
func (CreateRequested) isAction() {}
func (CreateSucceeded) isAction() {}
func (CreateFailed) isAction()    {}
func (UpdateRequested) isAction() {}
func (UpdateSucceeded) isAction() {}
func (UpdateFailed) isAction()    {}
func (DeleteRequested) isAction() {}
func (DeleteSucceeded) isAction() {}
func (DeleteFailed) isAction()    {}

// One fixed, human-readable reason per operation family.
const (
	ReasonLoadFailed   = "failed to load events"
	ReasonCreateFailed = "failed to create event"
	ReasonUpdateFailed = "failed to update event"
	ReasonDeleteFailed = "failed to delete event"
)
