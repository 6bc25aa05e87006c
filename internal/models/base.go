package models

import (
	"time"

	"github.com/google/uuid"
)

// Base holds the identifier and timestamps shared by every persisted entity.
// The store layer generates the ID and stamps timestamps through these methods.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Base) GetID() uuid.UUID { return b.ID }

func (b *Base) SetID(id uuid.UUID) { b.ID = id }

// Stamp sets both timestamps on create.
func (b *Base) Stamp(t time.Time) {
	b.CreatedAt = t
	b.UpdatedAt = t
}

// Touch refreshes the update timestamp.
func (b *Base) Touch(t time.Time) { b.UpdatedAt = t }
