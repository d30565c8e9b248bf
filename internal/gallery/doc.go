// Package gallery holds the search-and-browse logic: fetching a capped batch
// of artworks for a query, and deriving the visible list from the fetched
// data, the favourites set, and the selected filter and sort.
//
// Fetching and view derivation are independent. Changing a filter, sort or
// favourite never triggers a request; only a query change does.
package gallery
