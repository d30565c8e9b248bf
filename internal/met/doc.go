// Package met provides an HTTP client for the Metropolitan Museum of Art
// collection API.
//
// # Overview
//
// artex reads two endpoints, both unauthenticated and read-only:
//
//   - GET /public/collection/v1/search?q=<term>: matching object ids
//   - GET /public/collection/v1/objects/<id>: the full record for one object
//
// The search endpoint returns {"total": N, "objectIDs": [...]}; objectIDs is
// null when nothing matches. Artwork decodes only the fields the UI shows.
//
// # Client Usage
//
//	client, err := met.NewClient("", met.WithTimeout(10*time.Second))
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	res, err := client.Search(ctx, "sunflowers")
//	art, err := client.Object(ctx, res.ObjectIDs[0])
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json and User-Agent: artex/0.1
//   - Treat any status >= 400 as an error
//   - Return wrapped errors ("execute request: ...", "decode response: ...")
//
// The client does not retry, cache, or rate limit. Callers that need a single
// user-facing failure (see package gallery) collapse these errors themselves.
//
// # URL Construction
//
// NewClient accepts a bare host ("collectionapi.metmuseum.org", scheme defaults
// to https) or a full URL; any path, query or fragment is dropped. The search
// term is URL-encoded.
//
// # Thread Safety
//
// Client is safe for concurrent use; the detail fan-out in package gallery
// shares one Client across goroutines.
package met
