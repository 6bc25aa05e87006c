package dto

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required"`
	SKU         string  `json:"sku" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Unit        string  `json:"unit" validate:"required"`
	MinStock    int     `json:"min_stock" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Category    *string  `json:"category" validate:"omitempty,min=1"`
	SKU         *string  `json:"sku" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Unit        *string  `json:"unit" validate:"omitempty,min=1"`
	MinStock    *int     `json:"min_stock" validate:"omitempty,gte=0"`
	Active      *bool    `json:"active"`
}
