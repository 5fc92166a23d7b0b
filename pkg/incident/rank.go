package incident

import (
	"cmp"
	"slices"
)

// Ranked is one row of a ranking: the 1-based position, a copy of the
// incident (with its freshly computed score) and the score itself.
type Ranked struct {
	Rank     int
	Incident Incident
	Score    float64
}

// Rank scores every open incident from its current attributes, caches the
// score back on the stored incident, and returns the open incidents ordered
// by descending score. Incidents with equal scores keep their insertion order.
//
// An empty result means there was nothing open to rank; it is not an error.
func (s *Store) Rank() []Ranked {
	ranked := []Ranked{}

	for i := range s.OpenOnly() {
		score := ScoreOf(i)
		s.setScore(i.ID, score)

		i.Score, i.Scored = score, true
		ranked = append(ranked, Ranked{Incident: i, Score: score})
	}

	slices.SortStableFunc(ranked, func(a, b Ranked) int {
		return cmp.Compare(b.Score, a.Score)
	})

	for n := range ranked {
		ranked[n].Rank = n + 1
	}

	return ranked
}
