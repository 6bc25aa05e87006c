package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TemplateItem is a catalog snapshot used to pre-populate an order.
type TemplateItem struct {
	ProductID       uuid.UUID `json:"product_id"`
	Name            string    `json:"name"`
	DefaultQuantity int       `json:"default_quantity"`
	Price           float64   `json:"price"`
}

// Template is a reusable order blueprint owned by a clinic. Applying one
// produces a draft order; it never reserves stock.
type Template struct {
	Base
	ClinicID    uuid.UUID                         `gorm:"type:uuid;not null;index" json:"clinic_id"`
	Name        string                            `gorm:"not null;size:255" json:"name"`
	Description string                            `gorm:"size:1000" json:"description,omitempty"`
	Items       datatypes.JSONSlice[TemplateItem] `gorm:"type:jsonb" json:"items"`
	LastUsed    *time.Time                        `json:"last_used,omitempty"`
	Frequency   int                               `gorm:"not null;default:0" json:"frequency"`
}
