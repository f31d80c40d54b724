package wishlist

import (
	"errors"

	"trip-server/models"
)

// ErrDuplicateEntry signals an add for an identity key already present.
// The list is left unchanged.
var ErrDuplicateEntry = errors.New("facility already in wishlist")

// Wishlist is the ordered, deduplicated sequence of chosen stops.
// Entry positions are implicit in slice order. The model is the single
// source of truth: callers emit discrete add/insert/remove/reorder
// commands rather than feeding derived orderings back in.
type Wishlist struct {
	entries []models.WishlistEntry
}

// New returns an empty Wishlist.
func New() *Wishlist {
	return &Wishlist{}
}

// NewFromEntries rebuilds a Wishlist from persisted entries, dropping
// any duplicate identities beyond the first.
func NewFromEntries(entries []models.WishlistEntry) *Wishlist {
	w := New()
	for _, e := range entries {
		_ = w.Add(e.Facility, e.Location)
	}
	return w
}

// Add appends a facility at the end. Returns ErrDuplicateEntry if the
// identity key is already present.
func (w *Wishlist) Add(facility models.Facility, location models.Location) error {
	return w.InsertAt(facility, location, len(w.entries))
}

// InsertAt places a facility at the given position, clamping the index
// to [0, length]. Duplicate identities are rejected.
func (w *Wishlist) InsertAt(facility models.Facility, location models.Location, index int) error {
	if w.indexOf(facility.Key()) != -1 {
		return ErrDuplicateEntry
	}
	if index < 0 {
		index = 0
	}
	if index > len(w.entries) {
		index = len(w.entries)
	}
	entry := models.WishlistEntry{Facility: facility, Location: location}
	w.entries = append(w.entries, models.WishlistEntry{})
	copy(w.entries[index+1:], w.entries[index:])
	w.entries[index] = entry
	return nil
}

// Remove deletes the entry with the given identity key. Removing an
// absent key is a no-op; the return reports whether anything changed.
func (w *Wishlist) Remove(key string) bool {
	i := w.indexOf(key)
	if i == -1 {
		return false
	}
	w.entries = append(w.entries[:i], w.entries[i+1:]...)
	return true
}

// Reorder atomically replaces the ordering with the given identity-key
// sequence. Unknown keys are ignored and keys missing from the sequence
// are dropped, tolerating stale reorder commands.
func (w *Wishlist) Reorder(keys []string) {
	reordered := make([]models.WishlistEntry, 0, len(w.entries))
	used := make(map[string]bool, len(keys))
	for _, key := range keys {
		if used[key] {
			continue
		}
		if i := w.indexOf(key); i != -1 {
			reordered = append(reordered, w.entries[i])
			used[key] = true
		}
	}
	w.entries = reordered
}

// Clear empties the list.
func (w *Wishlist) Clear() {
	w.entries = nil
}

// Entries returns a copy of the current ordering.
func (w *Wishlist) Entries() []models.WishlistEntry {
	out := make([]models.WishlistEntry, len(w.entries))
	copy(out, w.entries)
	return out
}

// Keys returns the identity keys in display order.
func (w *Wishlist) Keys() []string {
	keys := make([]string, len(w.entries))
	for i, e := range w.entries {
		keys[i] = e.Facility.Key()
	}
	return keys
}

// Len returns the number of entries.
func (w *Wishlist) Len() int {
	return len(w.entries)
}

// LegCount returns the number of route segments the current ordering
// implies: max(0, len-1).
func (w *Wishlist) LegCount() int {
	if len(w.entries) < 2 {
		return 0
	}
	return len(w.entries) - 1
}

func (w *Wishlist) indexOf(key string) int {
	for i, e := range w.entries {
		if e.Facility.Key() == key {
			return i
		}
	}
	return -1
}
