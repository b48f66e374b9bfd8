package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*Session, error)
	Update(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Session, int, error)
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
	Count(ctx context.Context) (int, error)
}
