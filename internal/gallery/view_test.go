package gallery

import (
	"slices"
	"testing"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"pgregory.net/rapid"

	"github.com/five82/artex/internal/met"
)

var names = []string{"", "Claude Monet", "claude monet", "Édouard Manet", "Vincent van Gogh", "Degas", "degas", "Mary Cassatt"}

func drawArtworks(t *rapid.T) []met.Artwork {
	n := rapid.IntRange(0, 20).Draw(t, "n")
	out := make([]met.Artwork, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, met.Artwork{
			ObjectID:          int64(i + 1),
			Title:             rapid.SampledFrom(names).Draw(t, "title"),
			ArtistDisplayName: rapid.SampledFrom(names).Draw(t, "artist"),
		})
	}
	return out
}

func keys(items []met.Artwork, key func(met.Artwork) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, key(it))
	}
	return out
}

func artist(a met.Artwork) string { return a.ArtistDisplayName }
func title(a met.Artwork) string { return a.Title }

func TestSort_ArtistIgnoresPriorTitleOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := drawArtworks(t)

		byTitle := Sort(data, SortTitle)
		byArtist := Sort(byTitle, SortArtist)
		direct := Sort(data, SortArtist)

		if !slices.Equal(keys(byArtist, artist), keys(direct, artist)) {
			t.Fatalf("artist keys differ: %q vs %q", keys(byArtist, artist), keys(direct, artist))
		}
		col := collate.New(language.English)
		for i := 1; i < len(byArtist); i++ {
			if col.CompareString(byArtist[i-1].ArtistDisplayName, byArtist[i].ArtistDisplayName) > 0 {
				t.Fatalf("not sorted at %d: %q > %q", i, byArtist[i-1].ArtistDisplayName, byArtist[i].ArtistDisplayName)
			}
		}
	})
}

func TestSort_IsStableAndDoesNotMutateInput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := drawArtworks(t)
		before := slices.Clone(data)
		mode := rapid.SampledFrom([]SortMode{SortNone, SortArtist, SortTitle}).Draw(t, "mode")

		out := Sort(data, mode)
		if !slices.Equal(data, before) {
			t.Fatalf("Sort mutated its input")
		}
		if len(out) != len(data) {
			t.Fatalf("len = %d, want %d", len(out), len(data))
		}
		if mode == SortNone && !slices.Equal(out, data) {
			t.Fatalf("SortNone reordered data")
		}
		// Equal keys keep their input order (ids are ascending in input).
		for i := 1; i < len(out); i++ {
			var a, b string
			switch mode {
			case SortArtist:
				a, b = out[i-1].ArtistDisplayName, out[i].ArtistDisplayName
			case SortTitle:
				a, b = out[i-1].Title, out[i].Title
			default:
				continue
			}
			if a == b && out[i-1].ObjectID > out[i].ObjectID {
				t.Fatalf("unstable at %d", i)
			}
		}
	})
}

func TestSort_MissingArtistSortsFirstAndCaseMatters(t *testing.T) {
	data := []met.Artwork{
		{ObjectID: 1, ArtistDisplayName: "Vincent van Gogh"},
		{ObjectID: 2, ArtistDisplayName: "Degas"},
		{ObjectID: 3},
		{ObjectID: 4, ArtistDisplayName: "Édouard Manet"},
		{ObjectID: 5, ArtistDisplayName: "degas"},
	}
	got := keys(Sort(data, SortArtist), artist)
	want := []string{"", "degas", "Degas", "Édouard Manet", "Vincent van Gogh"}
	if !slices.Equal(got, want) {
		t.Fatalf("Sort(artist) = %q, want %q", got, want)
	}
}

func TestSort_Title(t *testing.T) {
	data := []met.Artwork{
		{ObjectID: 1, Title: "Wheat Field with Cypresses"},
		{ObjectID: 2, Title: "Bouquet of Sunflowers"},
		{ObjectID: 3, Title: ""},
	}
	got := keys(Sort(data, SortTitle), title)
	want := []string{"", "Bouquet of Sunflowers", "Wheat Field with Cypresses"}
	if !slices.Equal(got, want) {
		t.Fatalf("Sort(title) = %q, want %q", got, want)
	}
}

func TestFilter_FavoritesWithEmptySetIsEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := drawArtworks(t)
		if got := Filter(data, FilterFavorites, Favorites{}); len(got) != 0 {
			t.Fatalf("Filter(favorites, empty) = %d items, want 0", len(got))
		}
		if got := Filter(data, FilterAll, Favorites{}); !slices.Equal(got, data) {
			t.Fatalf("Filter(all) changed data")
		}
	})
}

func TestFavorites_ToggleTwiceRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var fav Favorites
		for _, id := range rapid.SliceOf(rapid.Int64Range(1, 40)).Draw(t, "initial") {
			if !fav.Has(id) {
				fav = fav.Toggle(id)
			}
		}
		id := rapid.Int64Range(1, 40).Draw(t, "id")
		before := fav.IDs()

		once := fav.Toggle(id)
		if once.Has(id) == fav.Has(id) {
			t.Fatalf("Toggle did not flip membership of %d", id)
		}
		twice := once.Toggle(id)
		if !slices.Equal(twice.IDs(), before) {
			t.Fatalf("Toggle twice = %v, want %v", twice.IDs(), before)
		}
		if !slices.Equal(fav.IDs(), before) {
			t.Fatalf("Toggle mutated receiver")
		}
	})
}

func TestVisible_FiltersBeforeSorting(t *testing.T) {
	data := []met.Artwork{
		{ObjectID: 1, ArtistDisplayName: "Vincent van Gogh"},
		{ObjectID: 2, ArtistDisplayName: "Claude Monet"},
		{ObjectID: 3, ArtistDisplayName: "Auguste Renoir"},
	}
	fav := Favorites{}.Toggle(1).Toggle(2)

	got := Visible(data, FilterFavorites, SortArtist, fav)
	if len(got) != 2 || got[0].ObjectID != 2 || got[1].ObjectID != 1 {
		t.Fatalf("Visible = %#v, want [2 1]", got)
	}
}

func TestParseModes(t *testing.T) {
	filters := map[string]FilterMode{"": FilterAll, "all": FilterAll, "Favorites": FilterFavorites, "bogus": FilterAll}
	for in, want := range filters {
		if got := ParseFilter(in); got != want {
			t.Fatalf("ParseFilter(%q) = %v, want %v", in, got, want)
		}
	}
	sorts := map[string]SortMode{"": SortNone, "none": SortNone, "artist": SortArtist, " TITLE ": SortTitle, "date": SortNone}
	for in, want := range sorts {
		if got := ParseSort(in); got != want {
			t.Fatalf("ParseSort(%q) = %v, want %v", in, got, want)
		}
	}
}
