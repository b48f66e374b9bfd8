package session

import (
	"errors"
	"fmt"

	"github.com/eidefo/eidefo/internal/domain/evaluation"
)

var (
	// ErrNotFound is returned for unknown or expired sessions.
	ErrNotFound = errors.New("session not found")
	// ErrCapacity is returned when the configured session limit is reached.
	ErrCapacity = errors.New("session capacity reached")
)

// ValidationError carries the field-level findings that block a stage from
// committing. Handlers render it as 422 with the findings attached, so the
// client can surface each message next to its field.
type ValidationError struct {
	Stage  evaluation.StageID      `json:"stage"`
	Errors []evaluation.FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("stage %s: %d validation errors", e.Stage, len(e.Errors))
}

// RoutingError is returned when a stage is requested out of order. Earliest
// names the stage the client should recover to.
type RoutingError struct {
	Requested evaluation.StageID `json:"requested"`
	Earliest  evaluation.StageID `json:"earliest"`
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("stage %s not reachable, earliest incomplete is %s", e.Requested, e.Earliest)
}

// GateError is returned when a gate decision contradicts the recorded
// non-nutritive score.
type GateError struct {
	Reason string `json:"reason"`
}

func (e *GateError) Error() string { return e.Reason }
