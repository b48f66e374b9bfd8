package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/eidefo/eidefo/internal/domain/evaluation"
)

func newStoredSession(created time.Time) *Session {
	s := &Session{
		ID:        uuid.New(),
		CreatedAt: created,
		Current:   evaluation.StageIdentification,
		Drafts:    make(map[evaluation.StageID]evaluation.State),
	}
	s.Touch(created, time.Hour)
	return s
}

func TestMemoryRepository_Roundtrip(t *testing.T) {
	repo := NewMemoryRepository(evaluation.NewRegistry())
	ctx := context.Background()
	s := newStoredSession(time.Now())
	s.Record.Identification = &evaluation.IdentificationGroup{PatientName: "Carmen Díaz"}

	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.GetByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Record.Identification.PatientName != "Carmen Díaz" {
		t.Error("stored record lost")
	}

	got.Current = evaluation.StageRespiration
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got2, _ := repo.GetByID(ctx, s.ID)
	if got2.Current != evaluation.StageRespiration {
		t.Error("update not visible")
	}

	if err := repo.Delete(ctx, s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryRepository_CreateDuplicate(t *testing.T) {
	repo := NewMemoryRepository(evaluation.NewRegistry())
	ctx := context.Background()
	s := newStoredSession(time.Now())
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, s); err == nil {
		t.Fatal("expected duplicate create to fail")
	}
}

func TestMemoryRepository_UpdateUnknown(t *testing.T) {
	repo := NewMemoryRepository(evaluation.NewRegistry())
	s := newStoredSession(time.Now())
	if err := repo.Update(context.Background(), s); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository(evaluation.NewRegistry())
	ctx := context.Background()
	s := newStoredSession(time.Now())
	s.Record.Identification = &evaluation.IdentificationGroup{PatientName: "Carmen Díaz"}
	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, _ := repo.GetByID(ctx, s.ID)
	got.Record.Identification.PatientName = "otra"
	got.Current = evaluation.StageConclusions

	fresh, _ := repo.GetByID(ctx, s.ID)
	if fresh.Record.Identification.PatientName != "Carmen Díaz" {
		t.Error("record mutation leaked into the store")
	}
	if fresh.Current != evaluation.StageIdentification {
		t.Error("position mutation leaked into the store")
	}
}

func TestMemoryRepository_DraftsAreIndependent(t *testing.T) {
	registry := evaluation.NewRegistry()
	repo := NewMemoryRepository(registry)
	ctx := context.Background()

	st, ok := registry.Stage(evaluation.StageIdentification)
	if !ok {
		t.Fatal("identification stage not registered")
	}
	s := newStoredSession(time.Now())
	draft := st.Hydrate(evaluation.Record{}).(*evaluation.IdentificationGroup)
	draft.PatientName = "Carmen Díaz"
	s.Drafts[evaluation.StageIdentification] = draft

	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Mutating one retrieved copy must not be visible through another.
	got, _ := repo.GetByID(ctx, s.ID)
	got.Drafts[evaluation.StageIdentification].(*evaluation.IdentificationGroup).PatientName = "otra"

	fresh, _ := repo.GetByID(ctx, s.ID)
	g := fresh.Drafts[evaluation.StageIdentification].(*evaluation.IdentificationGroup)
	if g.PatientName != "Carmen Díaz" {
		t.Error("draft mutation leaked into the store")
	}
}

func TestMemoryRepository_ListOrdersAndPaginates(t *testing.T) {
	repo := NewMemoryRepository(evaluation.NewRegistry())
	ctx := context.Background()
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		s := newStoredSession(base.Add(time.Duration(i) * time.Minute))
		ids = append(ids, s.ID)
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	page, total, err := repo.List(ctx, 2, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 5 {
		t.Errorf("expected total 5, got %d", total)
	}
	if len(page) != 2 || page[0].ID != ids[1] || page[1].ID != ids[2] {
		t.Error("expected the second and third sessions in creation order")
	}

	page, total, err = repo.List(ctx, 10, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 5 || len(page) != 0 {
		t.Errorf("expected empty page past the end, got %d items", len(page))
	}
}

func TestMemoryRepository_DeleteExpired(t *testing.T) {
	repo := NewMemoryRepository(evaluation.NewRegistry())
	ctx := context.Background()
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	live := newStoredSession(base)
	live.ExpiresAt = base.Add(2 * time.Hour)
	stale := newStoredSession(base)
	stale.ExpiresAt = base.Add(-time.Minute)
	for _, s := range []*Session{live, stale} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	n, err := repo.DeleteExpired(ctx, base)
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 expired session removed, got %d", n)
	}
	if _, err := repo.GetByID(ctx, live.ID); err != nil {
		t.Error("live session must survive the sweep")
	}
	if _, err := repo.GetByID(ctx, stale.ID); !errors.Is(err, ErrNotFound) {
		t.Error("stale session must be gone")
	}

	count, _ := repo.Count(ctx)
	if count != 1 {
		t.Errorf("expected count 1, got %d", count)
	}
}
