package models

// Clinic owns users, orders and templates by foreign key. Deleting a clinic
// does not cascade; callers are expected to disable instead of delete.
type Clinic struct {
	Base
	Name    string `gorm:"not null;size:255" json:"name"`
	Address string `gorm:"not null;size:500" json:"address"`
	Phone   string `gorm:"size:50" json:"phone"`
	Active  bool   `gorm:"not null;default:true" json:"active"`
}
