// Package mettest serves a fake collection API for tests.
package mettest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/five82/artex/internal/met"
)

// Server is an in-memory collection API.
type Server struct {
	*httptest.Server

	mu       sync.RWMutex
	searches map[string][]int64
	objects  map[int64]met.Artwork
	failing  map[int64]int
	delays   map[string]time.Duration

	searchHits atomic.Int64
	detailHits atomic.Int64
}

// New starts a Server and registers its shutdown with t.Cleanup.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		searches: make(map[string][]int64),
		objects:  make(map[int64]met.Artwork),
		failing:  make(map[int64]int),
		delays:   make(map[string]time.Duration),
	}
	r := chi.NewRouter()
	r.Get("/public/collection/v1/search", s.handleSearch)
	r.Get("/public/collection/v1/objects/{id}", s.handleObject)
	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// AddSearch makes query return ids. A nil slice is encoded as JSON null.
func (s *Server) AddSearch(query string, ids []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches[query] = ids
}

// AddObjects registers detail records keyed by ObjectID.
func (s *Server) AddObjects(objects ...met.Artwork) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range objects {
		s.objects[o.ObjectID] = o
	}
}

// FailObject makes the detail endpoint answer status for id.
func (s *Server) FailObject(id int64, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing[id] = status
}

// DelaySearch holds the search response for query by d.
func (s *Server) DelaySearch(query string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[query] = d
}

// SearchRequests returns how many search calls were served.
func (s *Server) SearchRequests() int64 {
	return s.searchHits.Load()
}

// DetailRequests returns how many object calls were served.
func (s *Server) DetailRequests() int64 {
	return s.detailHits.Load()
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	s.searchHits.Add(1)
	q := r.URL.Query().Get("q")

	s.mu.RLock()
	ids, ok := s.searches[q]
	delay := s.delays[q]
	s.mu.RUnlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}
	total := len(ids)
	if !ok {
		ids = nil
	}
	writeJSON(w, met.SearchResponse{Total: total, ObjectIDs: ids})
}

func (s *Server) handleObject(w http.ResponseWriter, r *http.Request) {
	s.detailHits.Add(1)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	status, failing := s.failing[id]
	obj, ok := s.objects[id]
	s.mu.RUnlock()

	if failing {
		http.Error(w, "injected failure", status)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, obj)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
