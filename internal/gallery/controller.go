package gallery

import "github.com/five82/artex/internal/met"

// State is a read-only copy of the controller's interactive state.
type State struct {
	Query     string
	Dark      bool
	Filter    FilterMode
	Sort      SortMode
	Favorites Favorites
}

// Controller owns the interactive gallery state. Its methods are the only
// mutators; it never calls the network.
type Controller struct {
	query     string
	dark      bool
	filter    FilterMode
	sort      SortMode
	favorites Favorites
	seen      map[int64]struct{}
}

// NewController returns a controller with an empty query.
func NewController(dark bool) *Controller {
	return &Controller{
		dark: dark,
		seen: make(map[int64]struct{}),
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return State{
		Query:     c.query,
		Dark:      c.dark,
		Filter:    c.filter,
		Sort:      c.sort,
		Favorites: c.favorites,
	}
}

// Query returns the current search term.
func (c *Controller) Query() string { return c.query }

// Dark reports whether the dark theme is selected.
func (c *Controller) Dark() bool { return c.dark }

func (c *Controller) Filter() FilterMode { return c.filter }

func (c *Controller) Sort() SortMode { return c.sort }

func (c *Controller) Favorites() Favorites { return c.favorites }

func (c *Controller) IsFavorite(id int64) bool { return c.favorites.Has(id) }

// SetQuery replaces the query and reports whether it changed. Fetches are
// driven by this change, not by Submit.
func (c *Controller) SetQuery(q string) bool {
	if q == c.query {
		return false
	}
	c.query = q
	return true
}

// Submit re-assigns the current query. It never changes state: typing has
// already set the query that a fetch was issued for.
func (c *Controller) Submit() {
	c.SetQuery(c.query)
}

// Reset clears the query. Previously fetched results are left in place.
func (c *Controller) Reset() bool {
	return c.SetQuery("")
}

// ToggleDark flips the theme flag and returns the new value.
func (c *Controller) ToggleDark() bool {
	c.dark = !c.dark
	return c.dark
}

// SetFilter selects a filter; values outside the group select FilterAll.
func (c *Controller) SetFilter(mode FilterMode) {
	switch mode {
	case FilterAll, FilterFavorites:
		c.filter = mode
	default:
		c.filter = FilterAll
	}
}

// CycleFilter steps All → Favorites → All.
func (c *Controller) CycleFilter() FilterMode {
	if c.filter == FilterAll {
		c.filter = FilterFavorites
	} else {
		c.filter = FilterAll
	}
	return c.filter
}

// SetSort selects a sort; values outside the group select SortNone.
func (c *Controller) SetSort(mode SortMode) {
	switch mode {
	case SortNone, SortArtist, SortTitle:
		c.sort = mode
	default:
		c.sort = SortNone
	}
}

// CycleSort steps None → Artist → Title → None.
func (c *Controller) CycleSort() SortMode {
	switch c.sort {
	case SortNone:
		c.sort = SortArtist
	case SortArtist:
		c.sort = SortTitle
	default:
		c.sort = SortNone
	}
	return c.sort
}

// Observe records the ids of fetched artworks so they can be favourited.
func (c *Controller) Observe(items []met.Artwork) {
	if c.seen == nil {
		c.seen = make(map[int64]struct{}, len(items))
	}
	for _, it := range items {
		c.seen[it.ObjectID] = struct{}{}
	}
}

// ToggleFavorite flips id's membership. Ids never observed are ignored so
// the favourite set stays a subset of ids seen. It reports whether id is a
// favourite afterwards.
func (c *Controller) ToggleFavorite(id int64) bool {
	if _, ok := c.seen[id]; !ok {
		return c.favorites.Has(id)
	}
	c.favorites = c.favorites.Toggle(id)
	return c.favorites.Has(id)
}

// Visible derives the rendered list from fetched data.
func (c *Controller) Visible(data []met.Artwork) []met.Artwork {
	return Visible(data, c.filter, c.sort, c.favorites)
}
