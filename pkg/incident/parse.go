package incident

import (
	"errors"
	"fmt"
	"strings"
)

// The helpers in this file belong to the input boundary: the TUI, the CLI
// and the PagerDuty importer use them to turn free text into enum values
// before anything reaches the store.

var (
	levelNames = map[string]Level{
		"low":    LevelLow,
		"medium": LevelMedium,
		"high":   LevelHigh,
	}
	frequencyNames = map[string]Frequency{
		"rare":       FrequencyRare,
		"occasional": FrequencyOccasional,
		"frequent":   FrequencyFrequent,
	}
)

// ParseLevel accepts Low, Medium or High in any case, ignoring surrounding
// whitespace.
func ParseLevel(s string) (Level, error) {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w: %q is not one of Low, Medium, or High", ErrInvalidField, s)
}

// ParseFrequency accepts Rare, Occasional or Frequent in any case, ignoring
// surrounding whitespace.
func ParseFrequency(s string) (Frequency, error) {
	if f, ok := frequencyNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q is not one of Rare, Occasional, or Frequent", ErrInvalidField, s)
}

// ValidateID rejects an empty (or all whitespace) incident ID
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: incident ID cannot be empty", ErrInvalidField)
	}
	return nil
}

// ValidateSystem rejects an empty (or all whitespace) system name
func ValidateSystem(system string) error {
	if strings.TrimSpace(system) == "" {
		return fmt.Errorf("%w: system name cannot be empty", ErrInvalidField)
	}
	return nil
}

// New builds an open incident from raw text fields. Every invalid field is
// reported, joined into a single error.
func New(id, system, severity, urgency, frequency string) (Incident, error) {
	errs := []error{}

	if err := ValidateID(id); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateSystem(system); err != nil {
		errs = append(errs, err)
	}

	sev, err := ParseLevel(severity)
	if err != nil {
		errs = append(errs, fmt.Errorf("severity: %w", err))
	}
	urg, err := ParseLevel(urgency)
	if err != nil {
		errs = append(errs, fmt.Errorf("urgency: %w", err))
	}
	freq, err := ParseFrequency(frequency)
	if err != nil {
		errs = append(errs, fmt.Errorf("frequency: %w", err))
	}

	if len(errs) > 0 {
		return Incident{}, errors.Join(errs...)
	}

	return Incident{
		ID:        strings.TrimSpace(id),
		System:    strings.TrimSpace(system),
		Severity:  sev,
		Urgency:   urg,
		Frequency: freq,
		Status:    StatusOpen,
	}, nil
}
