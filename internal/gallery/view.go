package gallery

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/five82/artex/internal/met"
)

// FilterMode selects which fetched artworks are visible.
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterFavorites
)

func (f FilterMode) String() string {
	if f == FilterFavorites {
		return "favorites"
	}
	return "all"
}

// Label is the toggle button caption.
func (f FilterMode) Label() string {
	if f == FilterFavorites {
		return "Favorites"
	}
	return "All"
}

// ParseFilter maps a toggle value to a FilterMode. Empty or unknown values
// fall back to FilterAll.
func ParseFilter(value string) FilterMode {
	if strings.EqualFold(strings.TrimSpace(value), "favorites") {
		return FilterFavorites
	}
	return FilterAll
}

// SortMode selects the visible ordering.
type SortMode int

const (
	SortNone SortMode = iota
	SortArtist
	SortTitle
)

func (s SortMode) String() string {
	switch s {
	case SortArtist:
		return "artist"
	case SortTitle:
		return "title"
	default:
		return "none"
	}
}

// Label is the toggle button caption.
func (s SortMode) Label() string {
	switch s {
	case SortArtist:
		return "By Artist"
	case SortTitle:
		return "By Title"
	default:
		return "None"
	}
}

// ParseSort maps a toggle value to a SortMode. Empty or unknown values fall
// back to SortNone.
func ParseSort(value string) SortMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "artist":
		return SortArtist
	case "title":
		return SortTitle
	default:
		return SortNone
	}
}

// Filter returns the artworks visible under mode. The input is not modified.
func Filter(items []met.Artwork, mode FilterMode, favorites Favorites) []met.Artwork {
	if mode != FilterFavorites {
		return slices.Clone(items)
	}
	out := make([]met.Artwork, 0, favorites.Len())
	for _, it := range items {
		if favorites.Has(it.ObjectID) {
			out = append(out, it)
		}
	}
	return out
}

// Sort returns a stably sorted copy of items. Names compare with English
// collation, which is case sensitive at tertiary strength; a missing value
// compares as the empty string and sorts first. SortNone keeps input order.
func Sort(items []met.Artwork, mode SortMode) []met.Artwork {
	out := slices.Clone(items)
	var key func(met.Artwork) string
	switch mode {
	case SortArtist:
		key = func(a met.Artwork) string { return a.ArtistDisplayName }
	case SortTitle:
		key = func(a met.Artwork) string { return a.Title }
	default:
		return out
	}
	col := collate.New(language.English)
	slices.SortStableFunc(out, func(a, b met.Artwork) int {
		return col.CompareString(key(a), key(b))
	})
	return out
}

// Visible filters then sorts.
func Visible(items []met.Artwork, filter FilterMode, sort SortMode, favorites Favorites) []met.Artwork {
	return Sort(Filter(items, filter, favorites), sort)
}
