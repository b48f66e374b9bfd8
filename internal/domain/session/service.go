package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eidefo/eidefo/internal/domain/evaluation"
	"github.com/eidefo/eidefo/internal/domain/summary"
)

// Service drives the evaluation workflow: it owns session lifecycle, routes
// stage access through the registry's ordering rules and applies field writes
// through each stage's declared constraints.
type Service struct {
	repo        Repository
	registry    *evaluation.Registry
	ttl         time.Duration
	maxSessions int
	log         zerolog.Logger

	now func() time.Time
}

func NewService(repo Repository, registry *evaluation.Registry, ttl time.Duration, maxSessions int, log zerolog.Logger) *Service {
	return &Service{
		repo:        repo,
		registry:    registry,
		ttl:         ttl,
		maxSessions: maxSessions,
		log:         log,
		now:         time.Now,
	}
}

// Start opens a new evaluation session positioned at the first stage.
func (s *Service) Start(ctx context.Context, professional string) (*Session, error) {
	if s.maxSessions > 0 {
		n, err := s.repo.Count(ctx)
		if err != nil {
			return nil, err
		}
		if n >= s.maxSessions {
			return nil, ErrCapacity
		}
	}
	now := s.now()
	sess := &Session{
		ID:           uuid.New(),
		Professional: professional,
		CreatedAt:    now,
		Current:      s.registry.First(),
		Drafts:       make(map[evaluation.StageID]evaluation.State),
	}
	sess.Touch(now, s.ttl)
	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, err
	}
	s.log.Info().Str("session_id", sess.ID.String()).Str("professional", professional).Msg("evaluation session started")
	return sess, nil
}

// Get returns the session, treating an expired one as gone.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Expired(s.now()) {
		_ = s.repo.Delete(ctx, id)
		return nil, ErrNotFound
	}
	return sess, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Session, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// End discards the session and everything it captured.
func (s *Service) End(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("session_id", id.String()).Msg("evaluation session ended")
	return nil
}

// stageFor resolves the stage and enforces the predecessor chain.
func (s *Service) stageFor(sess *Session, id evaluation.StageID) (evaluation.Stage, error) {
	st, ok := s.registry.Stage(id)
	if !ok {
		return nil, &RoutingError{Requested: id, Earliest: s.registry.EarliestIncomplete(sess.Record)}
	}
	if !s.registry.CanEnter(id, sess.Record) {
		return nil, &RoutingError{Requested: id, Earliest: s.registry.EarliestIncomplete(sess.Record)}
	}
	if id == evaluation.StageNutritive {
		if err := s.checkNutritiveOpen(sess); err != nil {
			return nil, err
		}
	}
	return st, nil
}

func (s *Service) checkNutritiveOpen(sess *Session) error {
	if sess.Record.NonNutritiveScore == nil {
		return &RoutingError{Requested: evaluation.StageNutritive, Earliest: evaluation.StageNonNutritive}
	}
	if !evaluation.NutritiveEnabled(*sess.Record.NonNutritiveScore) {
		return &GateError{Reason: fmt.Sprintf(
			"nutritive assessment closed: score %.1f%% is at or above %.0f%%",
			*sess.Record.NonNutritiveScore, evaluation.NutritiveGateThreshold)}
	}
	return nil
}

func (s *Service) draft(sess *Session, st evaluation.Stage) evaluation.State {
	if d, ok := sess.Drafts[st.ID()]; ok {
		return d
	}
	d := st.Hydrate(sess.Record)
	sess.Drafts[st.ID()] = d
	return d
}

// HydrateStage returns the stage view for editing: the current draft (seeded
// from the committed group when present) and its outstanding findings.
func (s *Service) HydrateStage(ctx context.Context, id uuid.UUID, stageID evaluation.StageID) (*StageView, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	st, err := s.stageFor(sess, stageID)
	if err != nil {
		return nil, err
	}
	state := s.draft(sess, st)
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return &StageView{
		Stage:     st.ID(),
		Title:     st.Title(),
		Committed: sess.Record.HasGroup(st.ID()),
		State:     state,
		Errors:    st.Validate(state),
	}, nil
}

// ApplyWrites applies a batch of field writes to the stage draft. A write that
// names an unknown field or an out-of-vocabulary value rejects the whole batch.
func (s *Service) ApplyWrites(ctx context.Context, id uuid.UUID, stageID evaluation.StageID, writes []evaluation.FieldWrite) (*StageView, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	st, err := s.stageFor(sess, stageID)
	if err != nil {
		return nil, err
	}
	state := s.draft(sess, st)
	for _, w := range writes {
		if err := st.Apply(state, w); err != nil {
			if fe, ok := err.(evaluation.FieldError); ok {
				return nil, &ValidationError{Stage: stageID, Errors: []evaluation.FieldError{fe}}
			}
			return nil, err
		}
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return &StageView{
		Stage:     st.ID(),
		Title:     st.Title(),
		Committed: sess.Record.HasGroup(st.ID()),
		State:     state,
		Errors:    st.Validate(state),
	}, nil
}

// CommitStage validates the draft and overlays it onto the record, advancing
// the session to the following stage. The record never changes when
// validation fails.
func (s *Service) CommitStage(ctx context.Context, id uuid.UUID, stageID evaluation.StageID) (*Session, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	st, err := s.stageFor(sess, stageID)
	if err != nil {
		return nil, err
	}
	state := s.draft(sess, st)
	if errs := st.Validate(state); len(errs) > 0 {
		return nil, &ValidationError{Stage: stageID, Errors: errs}
	}
	rec, err := st.Commit(sess.Record, state)
	if err != nil {
		return nil, err
	}
	sess.Record = rec
	delete(sess.Drafts, stageID)
	sess.Current = st.Next(rec)
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("session_id", sess.ID.String()).
		Str("stage", string(stageID)).
		Str("next", string(sess.Current)).
		Msg("stage committed")
	return sess, nil
}

// Back moves the session to the predecessor of its current stage, discarding
// the unsaved draft of the stage being left. Committed data stays in the
// record; re-entering the stage hydrates from it.
func (s *Service) Back(ctx context.Context, id uuid.UUID) (*Session, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	prev, ok := s.registry.Predecessor(sess.Current, sess.Record)
	if !ok {
		return nil, &RoutingError{Requested: sess.Current, Earliest: s.registry.First()}
	}
	delete(sess.Drafts, sess.Current)
	sess.Current = prev
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Gate reports the stage-9 result: the achieved percentage and whether the
// nutritive assessment is open.
func (s *Service) Gate(ctx context.Context, id uuid.UUID) (*GateStatus, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Record.NonNutritiveScore == nil {
		return nil, &RoutingError{Requested: evaluation.StageNonNutritiveResult, Earliest: s.registry.EarliestIncomplete(sess.Record)}
	}
	score := *sess.Record.NonNutritiveScore
	return &GateStatus{
		Score:            score,
		Threshold:        evaluation.NutritiveGateThreshold,
		NutritiveEnabled: evaluation.NutritiveEnabled(score),
	}, nil
}

// Decide records the professional's routing choice on the gate screen.
func (s *Service) Decide(ctx context.Context, id uuid.UUID, decision evaluation.GateDecision) (*Session, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Record.NonNutritiveScore == nil {
		return nil, &RoutingError{Requested: evaluation.StageNonNutritiveResult, Earliest: s.registry.EarliestIncomplete(sess.Record)}
	}
	switch decision {
	case evaluation.GateProceedNutritive:
		if err := s.checkNutritiveOpen(sess); err != nil {
			return nil, err
		}
		sess.Current = evaluation.StageNutritive
	case evaluation.GateSkipToConclusions:
		sess.Current = evaluation.StageConclusions
	default:
		return nil, &GateError{Reason: fmt.Sprintf("unknown gate decision %q", decision)}
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("session_id", sess.ID.String()).
		Str("decision", string(decision)).
		Msg("gate decision recorded")
	return sess, nil
}

// Summary assembles the reviewable document once the conclusions are in.
func (s *Service) Summary(ctx context.Context, id uuid.UUID) (*summary.Document, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Record.Conclusions == nil {
		return nil, &RoutingError{Requested: evaluation.StageSummary, Earliest: s.registry.EarliestIncomplete(sess.Record)}
	}
	doc := summary.Build(sess.Record)
	return &doc, nil
}

func (s *Service) save(ctx context.Context, sess *Session) error {
	sess.Touch(s.now(), s.ttl)
	return s.repo.Update(ctx, sess)
}

// RunJanitor sweeps expired sessions until the context is cancelled.
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.repo.DeleteExpired(ctx, s.now())
			if err != nil {
				s.log.Error().Err(err).Msg("session sweep failed")
				continue
			}
			if n > 0 {
				s.log.Info().Int("expired", n).Msg("expired sessions removed")
			}
		}
	}
}
