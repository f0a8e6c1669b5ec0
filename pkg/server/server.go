// Package server implements the events service wire contract over a
// Persistence, so `tempo serve` can stand in for a remote deployment.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"tableflip.dev/tempo/pkg/event"
	"tableflip.dev/tempo/pkg/store"
)

// Server serves the events collection resource:
//
//	GET    /events       -> array of UserEvent
//	POST   /events       -> created UserEvent (id assigned)
//	GET    /events/{id}  -> UserEvent
//	PUT    /events/{id}  -> updated UserEvent
//	DELETE /events/{id}  -> {}
type Server struct {
	Persistence store.Persistence
}

// Handler returns the http handler for the collection resource.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/events", s.collection)
	mux.HandleFunc("/events/", s.item)
	return mux
}

func (s *Server) collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		respond(w, http.StatusOK, s.Persistence.List(r.Context()))

	case http.MethodPost:
		var draft event.Draft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			fail(w, http.StatusBadRequest, err)
			return
		}
		created, err := s.Persistence.Create(draft)
		if err != nil {
			fail(w, http.StatusInternalServerError, err)
			return
		}
		respond(w, http.StatusCreated, created)

	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (s *Server) item(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/events/"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		e, err := s.Persistence.Get(r.Context(), id)
		if err != nil {
			fail(w, statusFor(err), err)
			return
		}
		respond(w, http.StatusOK, e)

	case http.MethodPut:
		var e event.UserEvent
		if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
			fail(w, http.StatusBadRequest, err)
			return
		}
		e.ID = id // the path wins over the body
		updated, err := s.Persistence.Update(e)
		if err != nil {
			fail(w, statusFor(err), err)
			return
		}
		respond(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := s.Persistence.Delete(id); err != nil {
			fail(w, statusFor(err), err)
			return
		}
		respond(w, http.StatusOK, struct{}{})

	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func statusFor(err error) int {
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func fail(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
