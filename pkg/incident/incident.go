// Package incident holds the in-memory incident store and the priority
// scoring and ranking engine that operates over it.
//
// Nothing in this package logs, prints, or performs I/O. Callers (the TUI,
// the report writer, the CLI) are responsible for telling the user about
// failures.
package incident

// Level is the three step scale used for severity and urgency.
type Level int

const (
	LevelLow Level = iota + 1
	LevelMedium
	LevelHigh
)

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "Low"
	case LevelMedium:
		return "Medium"
	case LevelHigh:
		return "High"
	}
	return "Unknown"
}

// Valid reports whether l is one of the recognized levels
func (l Level) Valid() bool {
	return l >= LevelLow && l <= LevelHigh
}

// Frequency is how often an incident recurs.
type Frequency int

const (
	FrequencyRare Frequency = iota + 1
	FrequencyOccasional
	FrequencyFrequent
)

func (f Frequency) String() string {
	switch f {
	case FrequencyRare:
		return "Rare"
	case FrequencyOccasional:
		return "Occasional"
	case FrequencyFrequent:
		return "Frequent"
	}
	return "Unknown"
}

// Valid reports whether f is one of the recognized frequencies
func (f Frequency) Valid() bool {
	return f >= FrequencyRare && f <= FrequencyFrequent
}

// Status is the lifecycle state of an incident. The only transition is
// StatusOpen -> StatusResolved.
type Status int

const (
	StatusOpen Status = iota
	StatusResolved
)

func (s Status) String() string {
	if s == StatusResolved {
		return "RESOLVED"
	}
	return "OPEN"
}

// Incident is a single tracked IT incident.
//
// Score and Scored are owned by the ranking procedure: they are written every
// time the store is ranked and cleared when the incident is resolved. They
// are never authoritative; read them back only after a call to Store.Rank.
type Incident struct {
	ID        string
	System    string
	Severity  Level
	Urgency   Level
	Frequency Frequency
	Status    Status

	Score  float64
	Scored bool
}

// PriorityScore returns the cached score from the last ranking, if any.
func (i Incident) PriorityScore() (float64, bool) {
	if !i.Scored {
		return 0, false
	}
	return i.Score, true
}

// Open is a convenience for i.Status == StatusOpen
func (i Incident) Open() bool {
	return i.Status == StatusOpen
}
