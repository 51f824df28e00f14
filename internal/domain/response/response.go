// Package response holds the per-assessment response state: exactly one
// tri-state value for every catalog item.
package response

import (
	"fmt"

	"github.com/vineland/vsms-api/internal/domain/catalog"
)

// Value is the clinician's answer for one scale item.
type Value string

const (
	NotTested Value = "NOT_TESTED"
	Yes       Value = "YES"
	No        Value = "NO"
)

// Valid reports whether v is one of the three response values.
func (v Value) Valid() bool {
	return v == NotTested || v == Yes || v == No
}

// ErrInvalidItemID is returned when a mutation targets an id outside the
// fixed catalog. The UI never produces such ids; this is an integration
// defect, not user input to re-prompt for.
type ErrInvalidItemID struct {
	ID int
}

func (e *ErrInvalidItemID) Error() string {
	return fmt.Sprintf("invalid item id %d", e.ID)
}

// Snapshot is an immutable copy of a response set, keyed by item id.
// It marshals to JSON with string keys, which is the wire shape of the
// stored responsesJSON column.
type Snapshot map[int]Value

// Set holds one response per catalog item for the active assessment.
type Set struct {
	catalog *catalog.Catalog
	values  map[int]Value
}

// New creates a response set covering the full catalog, every item
// starting at NotTested.
func New(c *catalog.Catalog) *Set {
	s := &Set{catalog: c, values: make(map[int]Value, c.Len())}
	for _, item := range c.AllItems() {
		s.values[item.ID] = NotTested
	}
	return s
}

// Set overwrites the stored value for an item. No history is retained.
func (s *Set) Set(itemID int, v Value) error {
	if _, ok := s.values[itemID]; !ok {
		return &ErrInvalidItemID{ID: itemID}
	}
	if !v.Valid() {
		return fmt.Errorf("invalid response value %q for item %d", v, itemID)
	}
	s.values[itemID] = v
	return nil
}

// Get returns the stored value for an item. Unknown ids report NotTested;
// mutation is where invalid ids are caught.
func (s *Set) Get(itemID int) Value {
	v, ok := s.values[itemID]
	if !ok {
		return NotTested
	}
	return v
}

// CountAttempted returns how many items hold a value other than
// NotTested. A NO counts as attempted.
func (s *Set) CountAttempted() int {
	n := 0
	for _, v := range s.values {
		if v != NotTested {
			n++
		}
	}
	return n
}

// Snapshot returns an independent copy of the current values, safe to
// embed in an immutable record while the live set keeps mutating.
func (s *Set) Snapshot() Snapshot {
	snap := make(Snapshot, len(s.values))
	for id, v := range s.values {
		snap[id] = v
	}
	return snap
}

// Reset returns every item to NotTested so the next case can be entered
// without rebuilding the set.
func (s *Set) Reset() {
	for id := range s.values {
		s.values[id] = NotTested
	}
}

// Len returns the number of items covered by the set.
func (s *Set) Len() int { return len(s.values) }
