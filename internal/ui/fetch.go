package ui

import (
	"context"
	"errors"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/artex/internal/met"
)

// Fetcher runs one fetch cycle for a query.
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]met.Artwork, error)
}

// Messages

// debounceMsg fires after the quiet period that followed an edit. seq
// identifies the edit; only the most recent edit starts a fetch.
type debounceMsg struct {
	seq   uint64
	query string
}

// fetchResultMsg carries the outcome of the fetch cycle numbered gen.
type fetchResultMsg struct {
	gen   uint64
	query string
	items []met.Artwork
	err   error
}

// Commands

func debounceCmd(d time.Duration, seq uint64, query string) tea.Cmd {
	msg := debounceMsg{seq: seq, query: query}
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

func fetchCmd(ctx context.Context, fetcher Fetcher, gen uint64, query string) tea.Cmd {
	return func() tea.Msg {
		items, err := fetcher.Fetch(ctx, query)
		return fetchResultMsg{gen: gen, query: query, items: items, err: err}
	}
}

// queryEdited records a changed query and schedules its debounced fetch.
// An empty query never fetches and leaves the last results in place.
func (m *Model) queryEdited() tea.Cmd {
	m.editSeq++
	if m.controller.Query() == "" {
		return nil
	}
	return debounceCmd(m.debounce, m.editSeq, m.controller.Query())
}

// handleDebounce starts a fetch cycle when msg belongs to the latest edit.
func (m *Model) handleDebounce(msg debounceMsg) tea.Cmd {
	if msg.seq != m.editSeq || msg.query != m.controller.Query() || msg.query == "" {
		return nil
	}
	return m.startFetch(msg.query)
}

// startFetch cancels the cycle in flight, opens a new generation and
// returns the command that performs it.
func (m *Model) startFetch(query string) tea.Cmd {
	if m.store == nil || m.fetcher == nil {
		return nil
	}
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel

	gen := m.store.Begin(query)
	m.snapshot = m.store.Snapshot()
	return tea.Batch(m.spinner.Tick, fetchCmd(ctx, m.fetcher, gen, query))
}

// handleFetchResult completes the cycle unless a newer one has begun.
func (m *Model) handleFetchResult(msg fetchResultMsg) {
	if m.store == nil {
		return
	}
	if !m.store.Complete(msg.gen, msg.items, msg.err) {
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			log.Printf("discarded stale fetch generation %d for %q: %v", msg.gen, msg.query, msg.err)
		} else {
			log.Printf("discarded stale fetch generation %d for %q", msg.gen, msg.query)
		}
		return
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.snapshot = m.store.Snapshot()
	m.controller.Observe(m.snapshot.Artworks)
	m.refreshVisible()
}
