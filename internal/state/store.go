package state

import (
	"sync"
	"time"

	"github.com/five82/artex/internal/met"
)

// Phase is the lifecycle position of the latest fetch cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// Snapshot represents the latest fetch result available to the UI.
type Snapshot struct {
	Phase       Phase
	Query       string
	Generation  uint64
	Artworks    []met.Artwork
	Err         error
	StartedAt   time.Time
	CompletedAt time.Time
}

// Loading reports whether the latest cycle is still in flight.
func (s Snapshot) Loading() bool {
	return s.Phase == PhaseLoading
}

// Store holds the single result slot written by fetch cycles. Each Begin
// bumps the generation; Complete only lands for the newest generation.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Begin starts a new cycle for query and returns its generation. The
// previous artworks stay visible until the cycle completes.
func (s *Store) Begin(query string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Generation++
	s.snapshot.Phase = PhaseLoading
	s.snapshot.Query = query
	s.snapshot.Err = nil
	s.snapshot.StartedAt = time.Now()
	return s.snapshot.Generation
}

// Complete records the outcome of cycle gen. It returns false and changes
// nothing when gen is not the latest generation. On error the previous
// artworks are dropped so no stale list is shown beside the message.
func (s *Store) Complete(gen uint64, artworks []met.Artwork, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.snapshot.Generation {
		return false
	}
	s.snapshot.CompletedAt = time.Now()
	if err != nil {
		s.snapshot.Phase = PhaseError
		s.snapshot.Err = err
		s.snapshot.Artworks = nil
		return true
	}
	s.snapshot.Phase = PhaseSuccess
	s.snapshot.Err = nil
	s.snapshot.Artworks = cloneArtworks(artworks)
	return true
}

// Generation returns the latest issued generation.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Generation
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Artworks = cloneArtworks(s.snapshot.Artworks)
	return snap
}

func cloneArtworks(items []met.Artwork) []met.Artwork {
	if items == nil {
		return nil
	}
	dup := make([]met.Artwork, len(items))
	copy(dup, items)
	return dup
}
