package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrSessionNotFound = errors.New("session not found")
)

// Outcome define a hand result
type Outcome string

// Global enums
const (
	OutcomePlayer Outcome = "P"
	OutcomeBanker Outcome = "B"
	OutcomeTie    Outcome = "T"

	// OutcomeEmpty marks an unfilled grid cell
	OutcomeEmpty Outcome = ""
)

func (o Outcome) IsValid() bool {
	return o == OutcomePlayer || o == OutcomeBanker || o == OutcomeTie
}

func (o Outcome) Name() string {
	switch o {
	case OutcomePlayer:
		return "PLAYER"
	case OutcomeBanker:
		return "BANKER"
	case OutcomeTie:
		return "TIE"
	default:
		return "-"
	}
}

// ParseOutcome accepts P, B or T (case insensitive)
func ParseOutcome(value string) (Outcome, error) {
	outcome := Outcome(strings.ToUpper(strings.TrimSpace(value)))
	if !outcome.IsValid() {
		return OutcomeEmpty, fmt.Errorf("%w: unknown outcome %q", ErrInvalidInput, value)
	}
	return outcome, nil
}

// ParseHistory reads a compact result string such as "PBBTP". Spaces and commas are ignored.
func ParseHistory(value string) ([]Outcome, error) {
	var history []Outcome
	for i, r := range value {
		if r == ' ' || r == ',' {
			continue
		}
		outcome, err := ParseOutcome(string(r))
		if err != nil {
			return nil, fmt.Errorf("history position %d: %w", i, err)
		}
		history = append(history, outcome)
	}
	return history, nil
}

// ValidateHistory checks every entry is one of P, B or T
func ValidateHistory(history []Outcome) error {
	for i, outcome := range history {
		if !outcome.IsValid() {
			return fmt.Errorf("%w: history position %d holds %q", ErrInvalidInput, i, string(outcome))
		}
	}
	return nil
}

func HistoryString(history []Outcome) string {
	var sb strings.Builder
	for _, outcome := range history {
		sb.WriteString(string(outcome))
	}
	return sb.String()
}
