package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/medsupply/ordering-backend/internal/dto"
	"github.com/medsupply/ordering-backend/internal/models"
	"github.com/medsupply/ordering-backend/internal/store"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrClinicRequired     = errors.New("clinic is required for this order")
	ErrClinicAccessDenied = errors.New("access denied to this clinic")
	ErrProductUnavailable = errors.New("product not found or inactive")
	ErrInvalidStatus      = errors.New("unknown order status")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrOrderLocked        = errors.New("order items can only change while draft or pending")
	ErrApprovalForbidden  = errors.New("approval requires a manager or administrator")
)

type OrderService struct {
	orders   store.OrderRepo
	products store.ProductRepo
	clinics  store.ClinicRepo
}

func NewOrderService(orders store.OrderRepo, products store.ProductRepo, clinics store.ClinicRepo) *OrderService {
	return &OrderService{orders: orders, products: products, clinics: clinics}
}

// resolveClinic picks the clinic an order belongs to: the requested one for
// admins, the actor's own otherwise.
func (s *OrderService) resolveClinic(ctx context.Context, actor *models.User, requested *uuid.UUID) (uuid.UUID, error) {
	clinicID := requested
	if clinicID == nil {
		clinicID = actor.ClinicID
	}
	if clinicID == nil {
		return uuid.Nil, ErrClinicRequired
	}
	if !actor.CanAccessClinic(*clinicID) {
		return uuid.Nil, ErrClinicAccessDenied
	}

	clinic, err := s.clinics.GetByID(ctx, *clinicID)
	if err != nil {
		return uuid.Nil, err
	}
	if clinic == nil {
		return uuid.Nil, ErrClinicNotFound
	}
	return *clinicID, nil
}

// snapshotItems resolves each requested product against the catalog and
// captures name and price at order time.
func (s *OrderService) snapshotItems(ctx context.Context, reqs []dto.OrderItemRequest) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0, len(reqs))
	for _, r := range reqs {
		product, err := s.products.GetByID(ctx, r.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.Active {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, r.ProductID)
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  r.Quantity,
			Price:     product.Price,
		})
	}
	return items, nil
}

// Create builds a draft order. The total is derived from the items here and
// on every later item change; it is never independently settable.
func (s *OrderService) Create(ctx context.Context, actor *models.User, req *dto.CreateOrderRequest) (*models.Order, error) {
	clinicID, err := s.resolveClinic(ctx, actor, req.ClinicID)
	if err != nil {
		return nil, err
	}

	items, err := s.snapshotItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ClinicID: clinicID,
		UserID:   actor.ID,
		Status:   models.OrderStatusDraft,
		Items:    datatypes.NewJSONSlice(items),
		Total:    models.ComputeTotal(items),
		Notes:    req.Notes,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !actor.CanAccessClinic(order.ClinicID) {
		return nil, ErrClinicAccessDenied
	}
	return order, nil
}

// List returns the orders visible to the actor, optionally filtered by
// status. Admins see every clinic, everyone else only their own.
func (s *OrderService) List(ctx context.Context, actor *models.User, status string) ([]models.Order, error) {
	matches := make([]store.Match, 0, 2)
	if actor.Role != models.RoleAdmin {
		if actor.ClinicID == nil {
			return []models.Order{}, nil
		}
		matches = append(matches, store.Match{Field: "clinic_id", Value: *actor.ClinicID})
	}
	if status != "" {
		if !models.OrderStatus(status).Valid() {
			return nil, ErrInvalidStatus
		}
		matches = append(matches, store.Match{Field: "status", Value: status})
	}
	if len(matches) == 0 {
		return s.orders.All(ctx, 0)
	}
	return s.orders.FindBy(ctx, matches...)
}

func (s *OrderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	return s.orders.FindBy(ctx, store.Match{Field: "user_id", Value: userID})
}

// UpdateItems replaces the item list of a draft or pending order and
// recomputes the total.
func (s *OrderService) UpdateItems(ctx context.Context, actor *models.User, id uuid.UUID, req *dto.UpdateOrderRequest) (*models.Order, error) {
	order, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	fields := store.Fields{}
	if req.Items != nil {
		if order.Status != models.OrderStatusDraft && order.Status != models.OrderStatusPending {
			return nil, ErrOrderLocked
		}
		items, err := s.snapshotItems(ctx, req.Items)
		if err != nil {
			return nil, err
		}
		fields["items"] = datatypes.NewJSONSlice(items)
		fields["total"] = models.ComputeTotal(items)
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	updated, err := s.orders.Update(ctx, id, fields)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateStatus advances the order lifecycle. Approval (pending to approved)
// is restricted to roles holding the approve capability.
func (s *OrderService) UpdateStatus(ctx context.Context, actor *models.User, id uuid.UUID, status string) (*models.Order, error) {
	next := models.OrderStatus(status)
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	order, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, order.Status, next)
	}
	if next == models.OrderStatusApproved && !actor.Role.Can(models.CapApproveOrders) {
		return nil, ErrApprovalForbidden
	}

	updated, err := s.orders.Update(ctx, id, store.Fields{"status": next})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return nil
	}
	if !actor.CanAccessClinic(order.ClinicID) {
		return ErrClinicAccessDenied
	}
	return s.orders.Remove(ctx, id)
}
