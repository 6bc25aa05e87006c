package models

import "github.com/google/uuid"

// Product is a catalog definition shared by all clinics. Quantity on hand is
// tracked per clinic in ProductStock, not here.
type Product struct {
	Base
	Name        string  `gorm:"not null;size:255" json:"name"`
	Description string  `gorm:"size:1000" json:"description"`
	Category    string  `gorm:"not null;size:100;index" json:"category"`
	SKU         string  `gorm:"not null;size:100;uniqueIndex" json:"sku"`
	Price       float64 `gorm:"not null;check:price >= 0" json:"price"`
	Unit        string  `gorm:"not null;size:50" json:"unit"`
	MinStock    int     `gorm:"not null;default:0" json:"min_stock"`
	Active      bool    `gorm:"not null;default:true" json:"active"`
}

// ProductStock is the per-clinic quantity ledger for a catalog product.
type ProductStock struct {
	Base
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_clinic_product" json:"product_id"`
	ClinicID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_clinic_product;index" json:"clinic_id"`
	Quantity  int       `gorm:"not null;default:0" json:"quantity"`
}

func (ProductStock) TableName() string {
	return "product_stocks"
}
