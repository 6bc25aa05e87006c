package dto

import "github.com/google/uuid"

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	ClinicID *uuid.UUID         `json:"clinic_id"`
	Items    []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes    string             `json:"notes"`
}

// UpdateOrderRequest replaces the item list of a draft or pending order.
// The total is always recomputed from the items, never supplied.
type UpdateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"omitempty,min=1,dive"`
	Notes *string            `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
