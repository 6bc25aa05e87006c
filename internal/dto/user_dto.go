package dto

import "github.com/google/uuid"

type CreateUserRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	Name     string     `json:"name" validate:"required"`
	Password string     `json:"password" validate:"required,min=8"`
	Role     string     `json:"role" validate:"required,oneof=ADMIN MANAGER STAFF"`
	ClinicID *uuid.UUID `json:"clinic_id"`
}

type UpdateUserRequest struct {
	Email *string `json:"email" validate:"omitempty,email"`
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Role  *string `json:"role" validate:"omitempty,oneof=ADMIN MANAGER STAFF"`
	// ClinicID reassigns the user; RemoveClinic detaches them entirely, since
	// an absent pointer only means "leave unchanged".
	ClinicID     *uuid.UUID `json:"clinic_id"`
	RemoveClinic bool       `json:"remove_clinic"`
	Active       *bool      `json:"active"`
}
