package dto

import "github.com/google/uuid"

type CreateSettingsRequest struct {
	Type    string         `json:"type" validate:"required,oneof=global clinic"`
	OwnerID *uuid.UUID     `json:"owner_id"`
	Config  map[string]any `json:"config" validate:"required"`
}

type UpdateSettingsRequest struct {
	Config map[string]any `json:"config" validate:"required"`
}
