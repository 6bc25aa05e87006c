package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderStatus is the closed set of order states.
type OrderStatus string

const (
	OrderStatusDraft      OrderStatus = "draft"
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusApproved   OrderStatus = "approved"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusPending, OrderStatusApproved,
		OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	}
	return false
}

// statusTransitions is the forward lifecycle; cancelled is a side-branch
// reachable from every non-terminal state except shipped.
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusDraft:      {OrderStatusPending, OrderStatusCancelled},
	OrderStatusPending:    {OrderStatusApproved, OrderStatusCancelled},
	OrderStatusApproved:   {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// CanTransitionTo reports whether moving from s to next is a legal step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	return len(statusTransitions[s]) == 0
}

// StatusBadge is the display styling for an order status.
type StatusBadge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var statusBadges = map[OrderStatus]StatusBadge{
	OrderStatusDraft:      {Label: "Draft", Color: "text-gray-600 bg-gray-100"},
	OrderStatusPending:    {Label: "Pending", Color: "text-yellow-600 bg-yellow-100"},
	OrderStatusApproved:   {Label: "Approved", Color: "text-blue-600 bg-blue-100"},
	OrderStatusProcessing: {Label: "Processing", Color: "text-orange-600 bg-orange-100"},
	OrderStatusShipped:    {Label: "Shipped", Color: "text-purple-600 bg-purple-100"},
	OrderStatusDelivered:  {Label: "Delivered", Color: "text-green-600 bg-green-100"},
	OrderStatusCancelled:  {Label: "Cancelled", Color: "text-red-600 bg-red-100"},
}

var defaultBadge = StatusBadge{Label: "Unknown", Color: "text-gray-600 bg-gray-100"}

// Badge returns the display styling for the status. Unrecognized statuses get
// the default style, never a panic.
func (s OrderStatus) Badge() StatusBadge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return defaultBadge
}

// OrderItem is a point-in-time snapshot of a catalog product on an order.
type OrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

// Order is a clinic's supply order. Total is always derived from the items.
type Order struct {
	Base
	ClinicID uuid.UUID                          `gorm:"type:uuid;not null;index" json:"clinic_id"`
	UserID   uuid.UUID                          `gorm:"type:uuid;not null;index" json:"user_id"`
	Status   OrderStatus                        `gorm:"size:20;not null;default:'draft';index" json:"status"`
	Items    datatypes.JSONSlice[OrderItem]     `gorm:"type:jsonb" json:"items"`
	Total    float64                            `gorm:"not null;default:0" json:"total"`
	Notes    string                             `gorm:"size:1000" json:"notes,omitempty"`
}

// ComputeTotal returns the sum of quantity times price over the items.
func ComputeTotal(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += float64(it.Quantity) * it.Price
	}
	return total
}
