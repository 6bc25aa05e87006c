package store

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medsupply/ordering-backend/internal/models"
)

// memoryRepo is a map-backed repository guarded by a RWMutex. Records are
// copied on the way in and out so callers never share memory with the store.
type memoryRepo[T any, PT interface {
	*T
	Entity
}] struct {
	mu   sync.RWMutex
	recs map[uuid.UUID]T
}

func newMemoryRepo[T any, PT interface {
	*T
	Entity
}]() *memoryRepo[T, PT] {
	return &memoryRepo[T, PT]{recs: make(map[uuid.UUID]T)}
}

// NewMemory builds a fully in-memory store set. Each call returns an isolated
// instance, so tests can run against their own data.
func NewMemory() *Stores {
	return &Stores{
		Users:         newMemoryRepo[models.User](),
		Clinics:       newMemoryRepo[models.Clinic](),
		Products:      newMemoryRepo[models.Product](),
		Stock:         newMemoryRepo[models.ProductStock](),
		Orders:        newMemoryRepo[models.Order](),
		Templates:     newMemoryRepo[models.Template](),
		Settings:      newMemoryRepo[models.Settings](),
		RefreshTokens: newMemoryRepo[models.RefreshToken](),
	}
}

func (m *memoryRepo[T, PT]) GetByID(_ context.Context, id uuid.UUID) (PT, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.recs[id]
	if !ok {
		return nil, nil
	}
	cp := rec
	return PT(&cp), nil
}

func (m *memoryRepo[T, PT]) Create(_ context.Context, rec PT) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.GetID() == uuid.Nil {
		rec.SetID(uuid.New())
	}
	rec.Stamp(time.Now().UTC())
	m.recs[rec.GetID()] = *(*T)(rec)
	return nil
}

func (m *memoryRepo[T, PT]) Update(_ context.Context, id uuid.UUID, updates Fields) (PT, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.recs[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyFields(reflect.ValueOf(&rec).Elem(), updates)
	PT(&rec).Touch(time.Now().UTC())
	m.recs[id] = rec
	cp := rec
	return PT(&cp), nil
}

func (m *memoryRepo[T, PT]) Remove(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.recs, id)
	return nil
}

func (m *memoryRepo[T, PT]) FindBy(_ context.Context, matches ...Match) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, 0)
	for _, rec := range m.recs {
		if matchesAll(reflect.ValueOf(rec), matches) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memoryRepo[T, PT]) All(_ context.Context, limit int) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, 0, len(m.recs))
	for _, rec := range m.recs {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, rec)
	}
	return out, nil
}
