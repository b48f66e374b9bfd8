package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/eidefo/eidefo/internal/domain/evaluation"
)

// Session is one evaluation in progress. It carries the committed record, the
// professional's current position in the workflow and the uncommitted drafts
// of stages under edit. Drafts never leak into the record until the stage
// commits.
type Session struct {
	ID           uuid.UUID `json:"id"`
	Professional string    `json:"professional,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	ExpiresAt    time.Time `json:"expiresAt"`

	Current evaluation.StageID `json:"current"`
	Record  evaluation.Record  `json:"record"`

	Drafts map[evaluation.StageID]evaluation.State `json:"-"`
}

// Expired reports whether the session has passed its idle deadline.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Touch pushes the idle deadline forward after activity.
func (s *Session) Touch(now time.Time, ttl time.Duration) {
	s.UpdatedAt = now
	s.ExpiresAt = now.Add(ttl)
}

// StageView is the wire shape of one stage as seen by the client: the draft
// under edit (or the committed group, or defaults), whether the record already
// holds a committed version, and the outstanding validation findings.
type StageView struct {
	Stage     evaluation.StageID      `json:"stage"`
	Title     string                  `json:"title"`
	Committed bool                    `json:"committed"`
	State     evaluation.State        `json:"state"`
	Errors    []evaluation.FieldError `json:"errors,omitempty"`
}

// GateStatus is the stage-9 result screen: the achieved percentage and
// whether the nutritive assessment is open.
type GateStatus struct {
	Score            float64 `json:"score"`
	Threshold        float64 `json:"threshold"`
	NutritiveEnabled bool    `json:"nutritiveEnabled"`
}
