// Package ui provides the Bubble Tea terminal interface for artex.
//
// # Layout
//
// The screen is split top to bottom into:
//
//   - Header: app name, fetch status, visible/total counts, favourites, theme
//   - Command bar: the "Search Artworks" field and the All/Favorites and
//     None/By Artist/By Title toggle groups
//   - Content: the card grid, a loading spinner, the error message, or
//     "No artworks found."
//   - Footer: short key help
//
// The grid uses 4, 3, 2 or 1 columns depending on terminal width (see
// gridColumns). Cards show title, artist, a favourite heart with the object
// date, and the image URL (or the placeholder image URL when the object has
// none). Enter opens a scrollable detail overlay for the selected card.
//
// # Fetch cycle
//
// Every edit of the search field that changes its value becomes the query.
// After a short debounce the model cancels the cycle in flight, opens a new
// generation in the state.Store and runs the Fetcher as a tea.Cmd. Results
// from any generation other than the latest are dropped. An empty query
// never fetches and leaves the previous results on screen.
//
// Filter, sort and favourite changes only re-derive the visible list from
// the stored results; they never touch the network.
//
// # Keys
//
//	/          focus search (enter submits, esc leaves the field)
//	r          home: clear the query
//	space      toggle favourite on the selected card
//	f / s      cycle filter / sort
//	d          toggle dark mode (saved to prefs)
//	enter, i   details
//	h j k l    move (arrow keys work too)
//	?          help
//	q          quit
package ui
