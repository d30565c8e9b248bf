package gallery

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/five82/artex/internal/met"
)

// MaxResults caps how many search hits get a detail lookup.
const MaxResults = 20

// FetchFailedMessage is the only failure text shown to users.
const FetchFailedMessage = "Failed to fetch data"

// FetchError is returned for any failure in a fetch cycle. Its message is
// always FetchFailedMessage; the cause is kept for logs.
type FetchError struct {
	Query string
	Err   error
}

func (e *FetchError) Error() string {
	return FetchFailedMessage
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher runs the search → detail fan-out against a collection.
type Fetcher struct {
	collection met.Collection
	tracer     trace.Tracer
}

// NewFetcher builds a Fetcher backed by collection.
func NewFetcher(collection met.Collection) *Fetcher {
	return &Fetcher{
		collection: collection,
		tracer:     otel.Tracer("artex/gallery"),
	}
}

// Fetch searches for query and returns the details of up to MaxResults hits
// in search order. All detail lookups run concurrently and the first failure
// fails the whole cycle; no partial results are returned. An empty query
// returns nil without touching the network.
func (f *Fetcher) Fetch(ctx context.Context, query string) ([]met.Artwork, error) {
	if query == "" {
		return nil, nil
	}
	if f == nil || f.collection == nil {
		return nil, &FetchError{Query: query, Err: fmt.Errorf("fetcher has no collection")}
	}

	cycle := uuid.NewString()
	ctx, span := f.tracer.Start(ctx, "gallery.fetch",
		trace.WithAttributes(
			attribute.String("fetch.id", cycle),
			attribute.String("fetch.query", query),
		),
	)
	defer span.End()

	items, err := f.fetch(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, FetchFailedMessage)
		log.Printf("fetch %s query=%q failed: %v", cycle, query, err)
		return nil, &FetchError{Query: query, Err: err}
	}
	span.SetAttributes(attribute.Int("fetch.results", len(items)))
	log.Printf("fetch %s query=%q returned %d artworks", cycle, query, len(items))
	return items, nil
}

func (f *Fetcher) fetch(ctx context.Context, query string) ([]met.Artwork, error) {
	res, err := f.search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	ids := res.ObjectIDs
	if len(ids) > MaxResults {
		ids = ids[:MaxResults]
	}

	items := make([]met.Artwork, len(ids))
	group, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		group.Go(func() error {
			art, err := f.object(gctx, id)
			if err != nil {
				return fmt.Errorf("object %d: %w", id, err)
			}
			items[i] = art
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

func (f *Fetcher) search(ctx context.Context, query string) (met.SearchResponse, error) {
	ctx, span := f.tracer.Start(ctx, "met.search")
	defer span.End()

	res, err := f.collection.Search(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		return met.SearchResponse{}, err
	}
	span.SetAttributes(
		attribute.Int("search.total", res.Total),
		attribute.Int("search.ids", len(res.ObjectIDs)),
	)
	return res, nil
}

func (f *Fetcher) object(ctx context.Context, id int64) (met.Artwork, error) {
	ctx, span := f.tracer.Start(ctx, "met.object",
		trace.WithAttributes(attribute.Int64("object.id", id)),
	)
	defer span.End()

	art, err := f.collection.Object(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "object failed")
		return met.Artwork{}, err
	}
	return art, nil
}
