package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/medsupply/ordering-backend/internal/dto"
	"github.com/medsupply/ordering-backend/internal/models"
	"github.com/medsupply/ordering-backend/internal/store"
)

var ErrTemplateNotFound = errors.New("template not found")

type TemplateService struct {
	templates store.TemplateRepo
	products  store.ProductRepo
	orders    store.OrderRepo
	clinics   store.ClinicRepo
}

func NewTemplateService(templates store.TemplateRepo, products store.ProductRepo, orders store.OrderRepo, clinics store.ClinicRepo) *TemplateService {
	return &TemplateService{templates: templates, products: products, orders: orders, clinics: clinics}
}

func (s *TemplateService) Get(ctx context.Context, actor *models.User, id uuid.UUID) (*models.Template, error) {
	tpl, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, ErrTemplateNotFound
	}
	if !actor.CanAccessClinic(tpl.ClinicID) {
		return nil, ErrClinicAccessDenied
	}
	return tpl, nil
}

func (s *TemplateService) ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]models.Template, error) {
	return s.templates.FindBy(ctx, store.Match{Field: "clinic_id", Value: clinicID})
}

func (s *TemplateService) List(ctx context.Context, actor *models.User) ([]models.Template, error) {
	if actor.Role == models.RoleAdmin {
		return s.templates.All(ctx, 0)
	}
	if actor.ClinicID == nil {
		return []models.Template{}, nil
	}
	return s.ListByClinic(ctx, *actor.ClinicID)
}

func (s *TemplateService) snapshotItems(ctx context.Context, reqs []dto.TemplateItemRequest) ([]models.TemplateItem, error) {
	items := make([]models.TemplateItem, 0, len(reqs))
	for _, r := range reqs {
		product, err := s.products.GetByID(ctx, r.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.Active {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, r.ProductID)
		}
		items = append(items, models.TemplateItem{
			ProductID:       product.ID,
			Name:            product.Name,
			DefaultQuantity: r.DefaultQuantity,
			Price:           product.Price,
		})
	}
	return items, nil
}

func (s *TemplateService) Create(ctx context.Context, actor *models.User, req *dto.CreateTemplateRequest) (*models.Template, error) {
	clinicID := req.ClinicID
	if clinicID == nil {
		clinicID = actor.ClinicID
	}
	if clinicID == nil {
		return nil, ErrClinicRequired
	}
	if !actor.CanAccessClinic(*clinicID) {
		return nil, ErrClinicAccessDenied
	}
	clinic, err := s.clinics.GetByID(ctx, *clinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	items, err := s.snapshotItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	tpl := &models.Template{
		ClinicID:    *clinicID,
		Name:        req.Name,
		Description: req.Description,
		Items:       datatypes.NewJSONSlice(items),
	}
	if err := s.templates.Create(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *TemplateService) Update(ctx context.Context, actor *models.User, id uuid.UUID, req *dto.UpdateTemplateRequest) (*models.Template, error) {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}

	fields := store.Fields{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Items != nil {
		items, err := s.snapshotItems(ctx, req.Items)
		if err != nil {
			return nil, err
		}
		fields["items"] = datatypes.NewJSONSlice(items)
	}

	tpl, err := s.templates.Update(ctx, id, fields)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *TemplateService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	tpl, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tpl == nil {
		return nil
	}
	if !actor.CanAccessClinic(tpl.ClinicID) {
		return ErrClinicAccessDenied
	}
	return s.templates.Remove(ctx, id)
}

// Apply pre-populates a draft order from the template's item snapshots and
// stamps the usage counters. The template itself reserves no stock.
func (s *TemplateService) Apply(ctx context.Context, actor *models.User, id uuid.UUID) (*models.Order, error) {
	tpl, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(tpl.Items))
	for _, it := range tpl.Items {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.DefaultQuantity,
			Price:     it.Price,
		})
	}

	order := &models.Order{
		ClinicID: tpl.ClinicID,
		UserID:   actor.ID,
		Status:   models.OrderStatusDraft,
		Items:    datatypes.NewJSONSlice(items),
		Total:    models.ComputeTotal(items),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if _, err := s.templates.Update(ctx, id, store.Fields{
		"last_used": &now,
		"frequency": tpl.Frequency + 1,
	}); err != nil {
		return nil, err
	}

	return order, nil
}
