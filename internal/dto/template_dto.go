package dto

import "github.com/google/uuid"

type TemplateItemRequest struct {
	ProductID       uuid.UUID `json:"product_id" validate:"required"`
	DefaultQuantity int       `json:"default_quantity" validate:"required,min=1"`
}

type CreateTemplateRequest struct {
	ClinicID    *uuid.UUID            `json:"clinic_id"`
	Name        string                `json:"name" validate:"required"`
	Description string                `json:"description"`
	Items       []TemplateItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateTemplateRequest struct {
	Name        *string               `json:"name" validate:"omitempty,min=1"`
	Description *string               `json:"description"`
	Items       []TemplateItemRequest `json:"items" validate:"omitempty,min=1,dive"`
}
