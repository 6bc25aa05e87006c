package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/medsupply/ordering-backend/internal/dto"
	"github.com/medsupply/ordering-backend/internal/models"
	"github.com/medsupply/ordering-backend/internal/store"
)

var ErrClinicNotFound = errors.New("clinic not found")

type ClinicService struct {
	clinics store.ClinicRepo
}

func NewClinicService(clinics store.ClinicRepo) *ClinicService {
	return &ClinicService{clinics: clinics}
}

func (s *ClinicService) Get(ctx context.Context, id uuid.UUID) (*models.Clinic, error) {
	clinic, err := s.clinics.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}
	return clinic, nil
}

func (s *ClinicService) List(ctx context.Context) ([]models.Clinic, error) {
	return s.clinics.All(ctx, 0)
}

func (s *ClinicService) Create(ctx context.Context, req *dto.CreateClinicRequest) (*models.Clinic, error) {
	clinic := &models.Clinic{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Active:  true,
	}
	if err := s.clinics.Create(ctx, clinic); err != nil {
		return nil, err
	}
	return clinic, nil
}

func (s *ClinicService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateClinicRequest) (*models.Clinic, error) {
	fields := store.Fields{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	clinic, err := s.clinics.Update(ctx, id, fields)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrClinicNotFound
	}
	if err != nil {
		return nil, err
	}
	return clinic, nil
}

// Delete removes the clinic row only. Users, orders and templates that
// reference it keep their foreign keys; there is no cascade.
func (s *ClinicService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.clinics.Remove(ctx, id)
}
