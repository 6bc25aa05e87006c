package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/medsupply/ordering-backend/internal/dto"
	"github.com/medsupply/ordering-backend/internal/models"
	"github.com/medsupply/ordering-backend/internal/store"
)

var (
	ErrSettingsNotFound = errors.New("settings not found")
	ErrOwnerRequired    = errors.New("owner_id is required for clinic settings")
)

type SettingsService struct {
	settings store.SettingsRepo
	clinics  store.ClinicRepo
}

func NewSettingsService(settings store.SettingsRepo, clinics store.ClinicRepo) *SettingsService {
	return &SettingsService{settings: settings, clinics: clinics}
}

func (s *SettingsService) Get(ctx context.Context, id uuid.UUID) (*models.Settings, error) {
	rec, err := s.settings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrSettingsNotFound
	}
	return rec, nil
}

func (s *SettingsService) ListByType(ctx context.Context, typ models.SettingsType) ([]models.Settings, error) {
	return s.settings.FindBy(ctx, store.Match{Field: "type", Value: typ})
}

func (s *SettingsService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Settings, error) {
	return s.settings.FindBy(ctx, store.Match{Field: "owner_id", Value: ownerID})
}

func (s *SettingsService) Create(ctx context.Context, req *dto.CreateSettingsRequest) (*models.Settings, error) {
	typ := models.SettingsType(req.Type)
	if typ == models.SettingsTypeClinic {
		if req.OwnerID == nil {
			return nil, ErrOwnerRequired
		}
		clinic, err := s.clinics.GetByID(ctx, *req.OwnerID)
		if err != nil {
			return nil, err
		}
		if clinic == nil {
			return nil, ErrClinicNotFound
		}
	}

	rec := &models.Settings{
		Type:    typ,
		OwnerID: req.OwnerID,
		Config:  datatypes.JSONMap(req.Config),
	}
	if err := s.settings.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *SettingsService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSettingsRequest) (*models.Settings, error) {
	rec, err := s.settings.Update(ctx, id, store.Fields{
		"config": datatypes.JSONMap(req.Config),
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *SettingsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.settings.Remove(ctx, id)
}
