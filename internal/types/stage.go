// Package types provides type definitions for structured data used throughout the interview-prep system.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Stage identifies the interview phase that selects which content set is generated.
type Stage string

// The closed set of interview stages.
const (
	StageHR            Stage = "HR"
	StageHiringManager Stage = "Hiring Manager"
	StageLeadership    Stage = "Leadership"
)

// Stages returns every stage in display order.
func Stages() []Stage {
	return []Stage{StageHR, StageHiringManager, StageLeadership}
}

// Valid reports whether s is one of the known stages.
func (s Stage) Valid() bool {
	switch s {
	case StageHR, StageHiringManager, StageLeadership:
		return true
	default:
		return false
	}
}

func (s Stage) String() string {
	return string(s)
}

// Slug returns a lowercase, dash-separated form usable in URLs and CLI flags.
func (s Stage) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(s)), " ", "-")
}

// UnknownStageError is returned when a value does not name a known stage.
type UnknownStageError struct {
	Value string
}

func (e *UnknownStageError) Error() string {
	return fmt.Sprintf("unknown interview stage: %q", e.Value)
}

// ParseStage accepts the display name ("Hiring Manager") or the slug ("hiring-manager"),
// case-insensitively.
func ParseStage(value string) (Stage, error) {
	v := strings.TrimSpace(value)
	for _, s := range Stages() {
		if strings.EqualFold(v, string(s)) || strings.EqualFold(v, s.Slug()) {
			return s, nil
		}
	}
	return "", &UnknownStageError{Value: value}
}

// UnmarshalJSON rejects values outside the closed stage set.
func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("stage must be a string: %w", err)
	}
	parsed, err := ParseStage(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
