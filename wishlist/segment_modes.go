package wishlist

import (
	"errors"
	"fmt"

	"trip-server/models"
)

// ErrSegmentIndexOutOfRange signals a mode override for a segment that
// does not exist under the current ordering.
var ErrSegmentIndexOutOfRange = errors.New("segment index out of range")

// segmentPair identifies a leg by the identity keys of its endpoints.
type segmentPair struct {
	start string
	end   string
}

// ModeStore holds the per-segment travel modes for the current wishlist
// ordering and keeps them consistent across structural changes.
//
// Reconciliation policy: a segment whose adjacent-pair identity survives
// the change keeps its mode; a segment departing the same facility as a
// previous segment adopts that segment's mode (so removing an interior
// stop keeps the mode of the earlier of the two merged segments);
// everything else defaults to DRIVING. The invariant
// len(modes) == max(0, wishlistLength-1) holds after every call.
type ModeStore struct {
	modes []models.TravelMode
	pairs []segmentPair
}

// NewModeStore returns a store for an empty wishlist.
func NewModeStore() *ModeStore {
	return &ModeStore{}
}

// NewModeStoreFromState rebuilds a store from persisted modes and the
// current ordering. Persisted arrays that are too short are padded with
// DRIVING, too long are truncated.
func NewModeStoreFromState(orderedKeys []string, modes []models.TravelMode) *ModeStore {
	legCount := legCountFor(orderedKeys)
	s := &ModeStore{
		modes: make([]models.TravelMode, legCount),
		pairs: pairsFor(orderedKeys),
	}
	for i := 0; i < legCount; i++ {
		if i < len(modes) && modes[i].Valid() {
			s.modes[i] = modes[i]
		} else {
			s.modes[i] = models.DefaultTravelMode
		}
	}
	return s
}

// Reconcile realigns the stored modes with a new wishlist ordering.
func (s *ModeStore) Reconcile(orderedKeys []string) {
	byPair := make(map[segmentPair]models.TravelMode, len(s.pairs))
	byStart := make(map[string]models.TravelMode, len(s.pairs))
	for i, p := range s.pairs {
		byPair[p] = s.modes[i]
		if _, ok := byStart[p.start]; !ok {
			byStart[p.start] = s.modes[i]
		}
	}

	newPairs := pairsFor(orderedKeys)
	newModes := make([]models.TravelMode, len(newPairs))
	for i, p := range newPairs {
		switch {
		case byPair[p] != "":
			newModes[i] = byPair[p]
		case byStart[p.start] != "":
			newModes[i] = byStart[p.start]
		default:
			newModes[i] = models.DefaultTravelMode
		}
	}
	s.modes = newModes
	s.pairs = newPairs
}

// SetMode stores the mode for one segment index.
func (s *ModeStore) SetMode(index int, mode models.TravelMode) error {
	if index < 0 || index >= len(s.modes) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrSegmentIndexOutOfRange, index, len(s.modes))
	}
	if !mode.Valid() {
		mode = models.DefaultTravelMode
	}
	s.modes[index] = mode
	return nil
}

// Modes returns a copy of the current segment modes.
func (s *ModeStore) Modes() []models.TravelMode {
	out := make([]models.TravelMode, len(s.modes))
	copy(out, s.modes)
	return out
}

// Len returns the current segment count.
func (s *ModeStore) Len() int {
	return len(s.modes)
}

func legCountFor(keys []string) int {
	if len(keys) < 2 {
		return 0
	}
	return len(keys) - 1
}

func pairsFor(keys []string) []segmentPair {
	pairs := make([]segmentPair, legCountFor(keys))
	for i := range pairs {
		pairs[i] = segmentPair{start: keys[i], end: keys[i+1]}
	}
	return pairs
}
