package models

import (
	"github.com/google/uuid"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleStaff   Role = "STAFF"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// Capability names an operation a role may be permitted to perform.
type Capability string

const (
	CapManageUsers    Capability = "manage_users"
	CapManageClinics  Capability = "manage_clinics"
	CapManageCatalog  Capability = "manage_catalog"
	CapManageSettings Capability = "manage_settings"
	CapManageStock    Capability = "manage_stock"
	CapApproveOrders  Capability = "approve_orders"
	CapPlaceOrders    Capability = "place_orders"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapManageUsers:    true,
		CapManageClinics:  true,
		CapManageCatalog:  true,
		CapManageSettings: true,
		CapManageStock:    true,
		CapApproveOrders:  true,
		CapPlaceOrders:    true,
	},
	RoleManager: {
		CapManageStock:   true,
		CapApproveOrders: true,
		CapPlaceOrders:   true,
	},
	RoleStaff: {
		CapPlaceOrders: true,
	},
}

// Can reports whether the role is permitted the given capability.
// Unknown roles have no capabilities.
func (r Role) Can(c Capability) bool {
	return roleCapabilities[r][c]
}

// User is a clinic staff member or administrator. Administrators may be
// clinic-less; everyone else belongs to exactly one clinic.
type User struct {
	Base
	Email    string     `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name     string     `gorm:"not null;size:255" json:"name"`
	Password string     `gorm:"not null" json:"-"`
	Role     Role       `gorm:"size:20;not null;default:'STAFF'" json:"role"`
	ClinicID *uuid.UUID `gorm:"type:uuid;index" json:"clinic_id,omitempty"`
	Active   bool       `gorm:"not null;default:true" json:"active"`
}

// CanAccessClinic reports whether the user may act on the given clinic.
// Admins may act on any clinic; everyone else only on their own.
func (u *User) CanAccessClinic(clinicID uuid.UUID) bool {
	if u.Role == RoleAdmin {
		return true
	}
	return u.ClinicID != nil && *u.ClinicID == clinicID
}
