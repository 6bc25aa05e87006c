package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/medsupply/ordering-backend/internal/dto"
	"github.com/medsupply/ordering-backend/internal/models"
	"github.com/medsupply/ordering-backend/internal/store"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	users   store.UserRepo
	clinics store.ClinicRepo
}

func NewUserService(users store.UserRepo, clinics store.ClinicRepo) *UserService {
	return &UserService{users: users, clinics: clinics}
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	found, err := s.users.FindBy(ctx, store.Match{Field: "email", Value: email})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, ErrUserNotFound
	}
	return &found[0], nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.All(ctx, 0)
}

func (s *UserService) ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]models.User, error) {
	return s.users.FindBy(ctx, store.Match{Field: "clinic_id", Value: clinicID})
}

func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	taken, err := s.users.FindBy(ctx, store.Match{Field: "email", Value: req.Email})
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if len(taken) > 0 {
		return nil, ErrEmailTaken
	}

	if req.ClinicID != nil {
		clinic, err := s.clinics.GetByID(ctx, *req.ClinicID)
		if err != nil {
			return nil, err
		}
		if clinic == nil {
			return nil, ErrClinicNotFound
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hash),
		Role:     models.Role(req.Role),
		ClinicID: req.ClinicID,
		Active:   true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	fields := store.Fields{}

	if req.Email != nil {
		taken, err := s.users.FindBy(ctx, store.Match{Field: "email", Value: *req.Email})
		if err != nil {
			return nil, err
		}
		if len(taken) > 0 && taken[0].ID != id {
			return nil, ErrEmailTaken
		}
		fields["email"] = *req.Email
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Role != nil {
		fields["role"] = models.Role(*req.Role)
	}
	switch {
	case req.RemoveClinic:
		fields["clinic_id"] = nil
	case req.ClinicID != nil:
		clinic, err := s.clinics.GetByID(ctx, *req.ClinicID)
		if err != nil {
			return nil, err
		}
		if clinic == nil {
			return nil, ErrClinicNotFound
		}
		fields["clinic_id"] = req.ClinicID
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	user, err := s.users.Update(ctx, id, fields)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SetActive toggles the account without touching anything else. Disabling is
// the normal alternative to deletion.
func (s *UserService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.User, error) {
	user, err := s.users.Update(ctx, id, store.Fields{"active": active})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.users.Remove(ctx, id)
}
