// Package state holds the fetch result slot shared by the UI and the fetch
// commands.
//
// # Overview
//
// Every search cycle writes into one slot. The Store tracks which cycle is
// current with a monotonically increasing generation number:
//
//	gen := store.Begin(query)       // phase = loading, generation++
//	...fetch...
//	store.Complete(gen, items, err) // lands only if gen is still the latest
//
// A slow cycle that settles after a newer one started is discarded, so the
// last query typed is always the one whose results are shown, regardless of
// network ordering.
//
// # Phases
//
//   - PhaseIdle: no search issued yet
//   - PhaseLoading: a cycle is in flight
//   - PhaseSuccess: Artworks holds the result (possibly empty)
//   - PhaseError: Err holds the failure; Artworks is cleared
//
// Loading and error are mutually exclusive. Begin clears the previous error
// but keeps the previous artworks until the new cycle completes.
//
// # Thread Safety
//
// All methods are safe for concurrent use. Snapshot returns a copy whose
// Artworks slice can be modified without affecting the store.
package state
