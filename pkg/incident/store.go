package incident

import "iter"

// Store is an insertion-ordered collection of incidents keyed by ID.
//
// A Store is owned by a single execution context; it does no locking.
// Incidents handed out by Find, All and OpenOnly are copies, so callers can
// never mutate the store except through its methods.
type Store struct {
	incidents []Incident
	index     map[string]int
}

func NewStore() *Store {
	return &Store{
		index: make(map[string]int),
	}
}

// Insert appends a new incident to the store. The incident always enters the
// store open and unscored, whatever the caller set on those fields.
func (s *Store) Insert(i Incident) error {
	if _, ok := s.index[i.ID]; ok {
		return &DuplicateIDError{ID: i.ID}
	}

	i.Status = StatusOpen
	i.Score, i.Scored = 0, false

	s.index[i.ID] = len(s.incidents)
	s.incidents = append(s.incidents, i)
	return nil
}

// Find returns a copy of the incident with the given ID
func (s *Store) Find(id string) (Incident, error) {
	n, ok := s.index[id]
	if !ok {
		return Incident{}, &NotFoundError{ID: id}
	}
	return s.incidents[n], nil
}

// Contains reports whether an incident with the given ID has ever been inserted
func (s *Store) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Resolve marks the incident with the given ID as resolved and drops its
// cached score. Resolving an already resolved incident is not an error.
func (s *Store) Resolve(id string) error {
	n, ok := s.index[id]
	if !ok {
		return &NotFoundError{ID: id}
	}

	s.incidents[n].Status = StatusResolved
	s.incidents[n].Score, s.incidents[n].Scored = 0, false
	return nil
}

// All returns a sequence over every incident in insertion order. Each call
// starts a fresh traversal.
func (s *Store) All() iter.Seq[Incident] {
	return func(yield func(Incident) bool) {
		for _, i := range s.incidents {
			if !yield(i) {
				return
			}
		}
	}
}

// OpenOnly is All filtered to open incidents.
func (s *Store) OpenOnly() iter.Seq[Incident] {
	return func(yield func(Incident) bool) {
		for _, i := range s.incidents {
			if !i.Open() {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

func (s *Store) Len() int {
	return len(s.incidents)
}

func (s *Store) OpenCount() int {
	var n int
	for _, i := range s.incidents {
		if i.Open() {
			n++
		}
	}
	return n
}

// setScore caches a computed score on the stored incident
func (s *Store) setScore(id string, score float64) {
	n, ok := s.index[id]
	if !ok {
		return
	}
	s.incidents[n].Score = score
	s.incidents[n].Scored = true
}
