package gradient

import (
	"fmt"

	"github.com/alexisbeaulieu97/chromastudio/internal/domain/color"
	chromaerrors "github.com/alexisbeaulieu97/chromastudio/pkg/errors"
)

// MinStops is the smallest number of stops a gradient may hold.
const MinStops = 2

const (
	DefaultStartColor = "#6366f1"
	DefaultEndColor   = "#a855f7"
)

// Store is an ordered-by-position collection of stops with one active stop.
// It is not safe for concurrent use; a single owner mutates it.
type Store struct {
	stops    []Stop
	activeID string
	counter  int
}

// NewStore returns a store seeded with the two default stops, the first active.
func NewStore() *Store {
	s := &Store{}
	first, _ := s.AddStop(0, DefaultStartColor, 100)
	_, _ = s.AddStop(100, DefaultEndColor, 100)
	s.activeID = first
	return s
}

// NewStoreFromStops builds a store from caller-supplied stops. Ids are
// reassigned from the store counter; the first stop by position is active.
func NewStoreFromStops(stops []Stop) (*Store, error) {
	if len(stops) < MinStops {
		return nil, chromaerrors.ErrStoreUnderflow.WithContext(map[string]interface{}{"count": len(stops)})
	}

	s := &Store{}
	for i, stop := range stops {
		if _, err := s.AddStop(stop.Position, stop.Color, stop.Opacity); err != nil {
			return nil, fmt.Errorf("stop %d: %w", i+1, err)
		}
	}
	s.activeID = s.stops[0].ID
	return s, nil
}

// AddStop inserts a new stop and returns its freshly minted id. Ids are never
// reused, even after removals.
func (s *Store) AddStop(position int, hex string, opacity int) (string, error) {
	if _, err := color.HexToRGB(hex); err != nil {
		return "", err
	}

	s.counter++
	id := fmt.Sprintf("stop_%d", s.counter)
	s.stops = append(s.stops, Stop{
		ID:       id,
		Color:    hex,
		Position: color.ClampPercent(position),
		Opacity:  color.ClampPercent(opacity),
		seq:      s.counter,
	})
	s.sort()
	if s.activeID == "" {
		s.activeID = id
	}
	return id, nil
}

// RemoveStop deletes the stop with id. Removing below MinStops is rejected
// without changing state. When the active stop is removed the first stop by
// position becomes active.
func (s *Store) RemoveStop(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return unknownStop(id)
	}
	if len(s.stops) <= MinStops {
		return chromaerrors.ErrStoreUnderflow.WithContext(map[string]interface{}{"id": id, "count": len(s.stops)})
	}

	s.stops = append(s.stops[:idx], s.stops[idx+1:]...)
	if s.activeID == id {
		s.activeID = s.stops[0].ID
	}
	return nil
}

// UpdateStopPosition moves a stop, clamping to [0,100], and re-sorts.
func (s *Store) UpdateStopPosition(id string, position int) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return unknownStop(id)
	}
	s.stops[idx].Position = color.ClampPercent(position)
	s.sort()
	return nil
}

// UpdateStopColor replaces a stop colour in place.
func (s *Store) UpdateStopColor(id string, hex string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return unknownStop(id)
	}
	if _, err := color.HexToRGB(hex); err != nil {
		return err
	}
	s.stops[idx].Color = hex
	return nil
}

// UpdateStopOpacity replaces a stop opacity in place, clamped to [0,100].
func (s *Store) UpdateStopOpacity(id string, opacity int) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return unknownStop(id)
	}
	s.stops[idx].Opacity = color.ClampPercent(opacity)
	return nil
}

// Select makes id the active stop. Unknown ids leave the selection unchanged.
func (s *Store) Select(id string) error {
	if s.indexOf(id) < 0 {
		return unknownStop(id)
	}
	s.activeID = id
	return nil
}

// Active returns the active stop.
func (s *Store) Active() (Stop, bool) {
	return s.Get(s.activeID)
}

// ActiveID returns the id of the active stop.
func (s *Store) ActiveID() string {
	return s.activeID
}

// ActiveIndex returns the 1-based position of the active stop in sorted
// order, or 0 when nothing is active.
func (s *Store) ActiveIndex() int {
	return s.indexOf(s.activeID) + 1
}

// Get looks up a stop by id.
func (s *Store) Get(id string) (Stop, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Stop{}, false
	}
	return s.stops[idx], true
}

// SortedStops returns a fresh ascending-by-position copy.
func (s *Store) SortedStops() []Stop {
	return SortStops(s.stops)
}

// Clone returns a deep copy of s, id counter and selection included.
func (s *Store) Clone() *Store {
	clone := *s
	clone.stops = make([]Stop, len(s.stops))
	copy(clone.stops, s.stops)
	return &clone
}

// Len returns the number of stops.
func (s *Store) Len() int {
	return len(s.stops)
}

// CanRemove reports whether a stop may be removed without underflow.
func (s *Store) CanRemove() bool {
	return len(s.stops) > MinStops
}

// ColorAt interpolates the store's gradient at position.
func (s *Store) ColorAt(position int) (string, error) {
	return ColorAt(position, s.stops)
}

func (s *Store) sort() {
	sortInPlace(s.stops)
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, stop := range s.stops {
		if stop.ID == id {
			return i
		}
	}
	return -1
}

func unknownStop(id string) error {
	return chromaerrors.ErrUnknownStopID.WithContext(map[string]interface{}{"id": id})
}
