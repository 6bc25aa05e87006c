package dto

type CreateClinicRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone"`
}

type UpdateClinicRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Address *string `json:"address" validate:"omitempty,min=1"`
	Phone   *string `json:"phone"`
	Active  *bool   `json:"active"`
}
