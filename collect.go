package reaclib

import (
	"errors"
	"io"
)

// ReadAll drains an Iter into a slice, stopping at the first failure.
// Callers that want to survive malformed records drive Iter directly.
func ReadAll(r io.Reader, format Format) ([]Set, error) {
	it := NewIter(r, format)
	var sets []Set
	for {
		s, err := it.Next()
		if errors.Is(err, io.EOF) {
			return sets, nil
		}
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
}

// ReactionMap groups Sets by reaction identity, remembering the order
// reactions first appeared in and the order sets arrived within each
// reaction.
type ReactionMap struct {
	order []Reaction
	sets  map[string][]Set
}

func (m *ReactionMap) add(s Set) {
	k := s.Reaction.key()
	if _, ok := m.sets[k]; !ok {
		m.order = append(m.order, s.Reaction)
	}
	m.sets[k] = append(m.sets[k], s)
}

// Len returns the number of distinct reactions.
func (m *ReactionMap) Len() int { return len(m.order) }

// Reactions returns the distinct reactions in first-seen order.
func (m *ReactionMap) Reactions() []Reaction {
	out := make([]Reaction, len(m.order))
	copy(out, m.order)
	return out
}

// Sets returns the rate sets recorded for r, nil when r was never seen.
func (m *ReactionMap) Sets(r Reaction) []Set {
	return m.sets[r.key()]
}

// Group builds a ReactionMap from already-decoded sets.
func Group(sets []Set) *ReactionMap {
	m := &ReactionMap{sets: make(map[string][]Set)}
	for _, s := range sets {
		m.add(s)
	}
	return m
}

// ToMap decodes everything and groups it by reaction, stopping at the
// first failure.
func ToMap(r io.Reader, format Format) (*ReactionMap, error) {
	sets, err := ReadAll(r, format)
	if err != nil {
		return nil, err
	}
	return Group(sets), nil
}
