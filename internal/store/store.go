// Package store is the generic persistence layer. Every entity is reached
// through a typed Repository backed either by Postgres (GORM) or an in-memory
// map, selected at composition time.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/medsupply/ordering-backend/internal/models"
)

// ErrNotFound is returned only by Update on an absent id. Reads report a miss
// as a nil record, not an error.
var ErrNotFound = errors.New("record not found")

// Entity is what a repository needs from a persisted record.
type Entity interface {
	GetID() uuid.UUID
	SetID(uuid.UUID)
	Stamp(time.Time)
	Touch(time.Time)
}

// Fields is a partial update keyed by the record's json field names.
// The id and created_at fields are never writable.
type Fields map[string]any

// Match is an equality condition on a record field, named by json tag.
type Match struct {
	Field string
	Value any
}

// Repository is the storage contract per entity.
//
// GetByID returns (nil, nil) on a miss. Create generates a v4 id when none is
// set and stamps both timestamps. Update shallow-merges the given fields,
// refreshes the update timestamp and fails with ErrNotFound on an absent id.
// Remove is idempotent. FindBy filters on one or two fields, result unordered.
// All returns every record, capped when limit > 0.
type Repository[T any, PT interface {
	*T
	Entity
}] interface {
	GetByID(ctx context.Context, id uuid.UUID) (PT, error)
	Create(ctx context.Context, rec PT) error
	Update(ctx context.Context, id uuid.UUID, updates Fields) (PT, error)
	Remove(ctx context.Context, id uuid.UUID) error
	FindBy(ctx context.Context, matches ...Match) ([]T, error)
	All(ctx context.Context, limit int) ([]T, error)
}

type (
	UserRepo         = Repository[models.User, *models.User]
	ClinicRepo       = Repository[models.Clinic, *models.Clinic]
	ProductRepo      = Repository[models.Product, *models.Product]
	StockRepo        = Repository[models.ProductStock, *models.ProductStock]
	OrderRepo        = Repository[models.Order, *models.Order]
	TemplateRepo     = Repository[models.Template, *models.Template]
	SettingsRepo     = Repository[models.Settings, *models.Settings]
	RefreshTokenRepo = Repository[models.RefreshToken, *models.RefreshToken]
)

// Stores bundles one repository per entity.
type Stores struct {
	Users         UserRepo
	Clinics       ClinicRepo
	Products      ProductRepo
	Stock         StockRepo
	Orders        OrderRepo
	Templates     TemplateRepo
	Settings      SettingsRepo
	RefreshTokens RefreshTokenRepo
}
