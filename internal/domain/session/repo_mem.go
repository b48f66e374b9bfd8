package session

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eidefo/eidefo/internal/domain/evaluation"
)

// MemoryRepository keeps sessions in process memory. Evaluations are
// transient by design: nothing outlives the session, so there is no database
// behind this seam.
type MemoryRepository struct {
	mu       sync.RWMutex
	registry *evaluation.Registry
	sessions map[uuid.UUID]*Session
}

func NewMemoryRepository(registry *evaluation.Registry) *MemoryRepository {
	return &MemoryRepository{
		registry: registry,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// copySession detaches the stored session from the caller's copy. Drafts
// clone through their stage so two requests never alias the same draft.
func (r *MemoryRepository) copySession(s *Session) *Session {
	out := *s
	out.Record = s.Record.Clone()
	out.Drafts = make(map[evaluation.StageID]evaluation.State, len(s.Drafts))
	for k, v := range s.Drafts {
		if st, ok := r.registry.Stage(k); ok {
			out.Drafts[k] = st.CloneState(v)
		} else {
			out.Drafts[k] = v
		}
	}
	return &out
}

func (r *MemoryRepository) Create(ctx context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID]; ok {
		return fmt.Errorf("session %s already exists", s.ID)
	}
	r.sessions[s.ID] = r.copySession(s)
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r.copySession(s), nil
}

func (r *MemoryRepository) Update(ctx context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID]; !ok {
		return ErrNotFound
	}
	r.sessions[s.ID] = r.copySession(s)
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context, limit, offset int) ([]*Session, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		all = append(all, r.copySession(s))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *MemoryRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions), nil
}
