// Package store is the persistence layer behind the bundled events service.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/tempo/pkg/event"
)

// ErrNotFound is returned when the requested event id does not exist.
var ErrNotFound = errors.New("store: event not found")

// Persistence defines the persistence contract for recorded events. Ids are
// assigned here, on create, and are unique for the life of the database.
type Persistence interface {
	List(ctx context.Context) []event.UserEvent
	Get(ctx context.Context, id int) (event.UserEvent, error)
	Create(draft event.Draft) (event.UserEvent, error)
	Update(e event.UserEvent) (event.UserEvent, error)
	Delete(id int) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string

	mu     sync.Mutex
	nextID int
}

func (p *persistence) read(key string) (event.UserEvent, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return event.UserEvent{}, err
	}
	e := event.UserEvent{}
	if err := json.Unmarshal(val, &e); err != nil {
		return event.UserEvent{}, err
	}
	if e.ID == 0 {
		e.ID, _ = idFromKey(key)
	}
	return e, nil
}

func (p *persistence) List(ctx context.Context) []event.UserEvent {
	all := make([]event.UserEvent, 0)
	for key := range p.d.Keys(ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	// Ids increase monotonically, so id order is creation order.
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})
	return all
}

func (p *persistence) Get(_ context.Context, id int) (event.UserEvent, error) {
	if !p.d.Has(toKey(id)) {
		return event.UserEvent{}, ErrNotFound
	}
	return p.read(toKey(id))
}

func (p *persistence) Create(draft event.Draft) (event.UserEvent, error) {
	id, err := p.assignID()
	if err != nil {
		return event.UserEvent{}, err
	}
	e := event.UserEvent{
		ID:        id,
		Title:     draft.Title,
		DateStart: draft.DateStart,
		DateEnd:   draft.DateEnd,
	}
	if e.Title == "" {
		e.Title = event.DefaultTitle
	}
	if err := p.write(e); err != nil {
		return event.UserEvent{}, err
	}
	return e, nil
}

func (p *persistence) Update(e event.UserEvent) (event.UserEvent, error) {
	if !p.d.Has(toKey(e.ID)) {
		return event.UserEvent{}, ErrNotFound
	}
	if err := p.write(e); err != nil {
		return event.UserEvent{}, err
	}
	return e, nil
}

func (p *persistence) Delete(id int) error {
	if !p.d.Has(toKey(id)) {
		return ErrNotFound
	}
	return p.d.Erase(toKey(id))
}

func (p *persistence) write(e event.UserEvent) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(e.ID), data)
}

// assignID hands out the next id, seeding the counter from existing keys the
// first time so ids survive restarts.
func (p *persistence) assignID() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.nextID == 0 {
		max := 0
		for key := range p.d.Keys(nil) {
			if id, err := idFromKey(key); err == nil && id > max {
				max = id
			}
		}
		p.nextID = max + 1
	}
	id := p.nextID
	p.nextID++
	return id, nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `events-<id>`
func toKey(id int) string {
	return fmt.Sprintf("events-%d", id)
}

func idFromKey(key string) (int, error) {
	pk := keyToPathTransform(key)
	return strconv.Atoi(pk.FileName)
}
