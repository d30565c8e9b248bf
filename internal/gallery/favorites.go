package gallery

import "slices"

// Favorites is a set of object ids. The zero value is an empty set.
type Favorites struct {
	ids map[int64]struct{}
}

// Has reports whether id is in the set.
func (f Favorites) Has(id int64) bool {
	_, ok := f.ids[id]
	return ok
}

// Len returns the number of favourites.
func (f Favorites) Len() int {
	return len(f.ids)
}

// IDs returns the members in ascending order.
func (f Favorites) IDs() []int64 {
	out := make([]int64, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Toggle returns a copy of the set with id's membership flipped. The
// receiver is left unchanged.
func (f Favorites) Toggle(id int64) Favorites {
	next := make(map[int64]struct{}, len(f.ids)+1)
	for k := range f.ids {
		next[k] = struct{}{}
	}
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return Favorites{ids: next}
}
