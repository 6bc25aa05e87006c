package dto

import "github.com/google/uuid"

// InventoryItem is the per-clinic composite view of a catalog product and its
// quantity on hand. Status is derived, never stored.
type InventoryItem struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	SKU          string    `json:"sku"`
	Unit         string    `json:"unit"`
	Price        float64   `json:"price"`
	Quantity     int       `json:"quantity"`
	ReorderPoint int       `json:"reorder_point"`
	Status       string    `json:"status"`
}

type SetStockRequest struct {
	ClinicID *uuid.UUID `json:"clinic_id"`
	Quantity int        `json:"quantity" validate:"gte=0"`
}
