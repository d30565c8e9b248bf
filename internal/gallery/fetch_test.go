package gallery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/five82/artex/internal/met"
	"github.com/five82/artex/internal/met/mettest"
)

func newTestFetcher(t *testing.T, srv *mettest.Server) *Fetcher {
	t.Helper()
	client, err := met.NewClient(srv.URL, met.WithTimeout(2*time.Second))
	require.NoError(t, err)
	return NewFetcher(client)
}

func artworks(ids ...int64) []met.Artwork {
	out := make([]met.Artwork, 0, len(ids))
	for _, id := range ids {
		out = append(out, met.Artwork{ObjectID: id, Title: fmt.Sprintf("Object %d", id)})
	}
	return out
}

func objectIDs(items []met.Artwork) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ObjectID)
	}
	return out
}

func TestFetch_SunflowersExample(t *testing.T) {
	srv := mettest.New(t)
	srv.AddSearch("sunflowers", []int64{101, 202, 303})
	srv.AddObjects(
		met.Artwork{ObjectID: 101, Title: "Sunflowers", ArtistDisplayName: "Vincent van Gogh"},
		met.Artwork{ObjectID: 202, Title: "Sunflowers (study)", ArtistDisplayName: "Claude Monet"},
		met.Artwork{ObjectID: 303, Title: "Field of Sunflowers"},
	)

	data, err := newTestFetcher(t, srv).Fetch(context.Background(), "sunflowers")
	require.NoError(t, err)
	assert.Equal(t, []int64{101, 202, 303}, objectIDs(data))
	assert.EqualValues(t, 3, srv.DetailRequests())

	c := NewController(false)
	c.Observe(data)
	assert.Equal(t, []int64{101, 202, 303}, objectIDs(c.Visible(data)))

	c.ToggleFavorite(202)
	c.SetFilter(FilterFavorites)
	visible := c.Visible(data)
	require.Len(t, visible, 1)
	assert.EqualValues(t, 202, visible[0].ObjectID)
}

func TestFetch_ZeroIDsIsEmptySuccess(t *testing.T) {
	srv := mettest.New(t)
	srv.AddSearch("empty", []int64{})

	for _, query := range []string{"empty", "unknown"} {
		data, err := newTestFetcher(t, srv).Fetch(context.Background(), query)
		require.NoError(t, err, query)
		assert.NotNil(t, data, query)
		assert.Empty(t, data, query)
	}
	assert.EqualValues(t, 0, srv.DetailRequests())
}

func TestFetch_CapsDetailRequestsAtMaxResults(t *testing.T) {
	srv := mettest.New(t)
	ids := make([]int64, 0, 35)
	for i := int64(1); i <= 35; i++ {
		ids = append(ids, i)
	}
	srv.AddSearch("many", ids)
	srv.AddObjects(artworks(ids...)...)

	data, err := newTestFetcher(t, srv).Fetch(context.Background(), "many")
	require.NoError(t, err)
	assert.Len(t, data, MaxResults)
	assert.EqualValues(t, MaxResults, srv.DetailRequests())
	assert.Equal(t, ids[:MaxResults], objectIDs(data))
}

func TestFetch_OneFailingDetailFailsTheBatch(t *testing.T) {
	srv := mettest.New(t)
	srv.AddSearch("mixed", []int64{1, 2, 3, 4})
	srv.AddObjects(artworks(1, 2, 3, 4)...)
	srv.FailObject(3, http.StatusInternalServerError)

	data, err := newTestFetcher(t, srv).Fetch(context.Background(), "mixed")
	require.Error(t, err)
	assert.Nil(t, data)
	assert.Equal(t, FetchFailedMessage, err.Error())

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "mixed", fetchErr.Query)
	assert.Contains(t, fetchErr.Unwrap().Error(), "object 3")
}

func TestFetch_SearchFailureIsFetchError(t *testing.T) {
	client, err := met.NewClient("http://127.0.0.1:1", met.WithTimeout(time.Second))
	require.NoError(t, err)

	_, err = NewFetcher(client).Fetch(context.Background(), "anything")
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Err.Error(), "search")
}

func TestFetch_EmptyQueryDoesNotTouchNetwork(t *testing.T) {
	srv := mettest.New(t)
	data, err := newTestFetcher(t, srv).Fetch(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.EqualValues(t, 0, srv.SearchRequests())
}

// staggeredCollection answers detail lookups in reverse id order.
type staggeredCollection struct {
	ids     []int64
	failID  int64
	started atomic.Int32
}

func (s *staggeredCollection) Search(ctx context.Context, query string) (met.SearchResponse, error) {
	return met.SearchResponse{Total: len(s.ids), ObjectIDs: s.ids}, nil
}

func (s *staggeredCollection) Object(ctx context.Context, id int64) (met.Artwork, error) {
	s.started.Add(1)
	if id == s.failID {
		return met.Artwork{}, errors.New("boom")
	}
	delay := time.Duration(len(s.ids)-int(id)) * 50 * time.Millisecond
	select {
	case <-time.After(delay):
		return met.Artwork{ObjectID: id}, nil
	case <-ctx.Done():
		return met.Artwork{}, ctx.Err()
	}
}

func TestFetch_PreservesSearchOrderRegardlessOfCompletionOrder(t *testing.T) {
	coll := &staggeredCollection{ids: []int64{1, 2, 3, 4, 5}}
	data, err := NewFetcher(coll).Fetch(context.Background(), "order")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, objectIDs(data))
}

func TestFetch_FailureCancelsSiblings(t *testing.T) {
	coll := &staggeredCollection{ids: []int64{1, 2, 3, 4, 5}, failID: 5}

	start := time.Now()
	_, err := NewFetcher(coll).Fetch(context.Background(), "fail")
	require.Error(t, err)
	// The slowest sibling would take 200ms; cancellation returns sooner.
	assert.Less(t, time.Since(start), 150*time.Millisecond)
	assert.EqualValues(t, 5, coll.started.Load())
}

func TestFetch_RecordsSpans(t *testing.T) {
	srv := mettest.New(t)
	srv.AddSearch("lilies", []int64{1, 2})
	srv.AddObjects(artworks(1, 2)...)

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	f := newTestFetcher(t, srv)
	f.tracer = tp.Tracer("test")
	_, err := f.Fetch(context.Background(), "lilies")
	require.NoError(t, err)

	counts := map[string]int{}
	for _, s := range exporter.GetSpans() {
		counts[s.Name]++
	}
	assert.Equal(t, map[string]int{"gallery.fetch": 1, "met.search": 1, "met.object": 2}, counts)
}

func TestFetch_NilCollection(t *testing.T) {
	_, err := NewFetcher(nil).Fetch(context.Background(), "x")
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}
