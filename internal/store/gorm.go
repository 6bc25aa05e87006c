package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medsupply/ordering-backend/internal/models"
)

// gormRepo is the live-database repository. Field names in Fields and Match
// line up with GORM's snake_case column naming, so they translate directly.
type gormRepo[T any, PT interface {
	*T
	Entity
}] struct {
	db *gorm.DB
}

func newGormRepo[T any, PT interface {
	*T
	Entity
}](db *gorm.DB) *gormRepo[T, PT] {
	return &gormRepo[T, PT]{db: db}
}

// NewGorm builds the Postgres-backed store set.
func NewGorm(db *gorm.DB) *Stores {
	return &Stores{
		Users:         newGormRepo[models.User](db),
		Clinics:       newGormRepo[models.Clinic](db),
		Products:      newGormRepo[models.Product](db),
		Stock:         newGormRepo[models.ProductStock](db),
		Orders:        newGormRepo[models.Order](db),
		Templates:     newGormRepo[models.Template](db),
		Settings:      newGormRepo[models.Settings](db),
		RefreshTokens: newGormRepo[models.RefreshToken](db),
	}
}

func (r *gormRepo[T, PT]) GetByID(ctx context.Context, id uuid.UUID) (PT, error) {
	var rec T
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return PT(&rec), nil
}

func (r *gormRepo[T, PT]) Create(ctx context.Context, rec PT) error {
	if rec.GetID() == uuid.Nil {
		rec.SetID(uuid.New())
	}
	rec.Stamp(time.Now().UTC())
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *gormRepo[T, PT]) Update(ctx context.Context, id uuid.UUID, updates Fields) (PT, error) {
	cols := make(map[string]any, len(updates))
	for k, v := range updates {
		if k == "id" || k == "created_at" {
			continue
		}
		cols[k] = v
	}
	if len(cols) == 0 {
		rec, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, ErrNotFound
		}
		return rec, nil
	}

	result := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(cols)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *gormRepo[T, PT]) Remove(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error
}

func (r *gormRepo[T, PT]) FindBy(ctx context.Context, matches ...Match) ([]T, error) {
	tx := r.db.WithContext(ctx)
	for _, m := range matches {
		tx = tx.Where(m.Field+" = ?", m.Value)
	}
	out := make([]T, 0)
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gormRepo[T, PT]) All(ctx context.Context, limit int) ([]T, error) {
	tx := r.db.WithContext(ctx)
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	out := make([]T, 0)
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
