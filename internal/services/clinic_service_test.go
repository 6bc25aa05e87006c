package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/medsupply/ordering-backend/internal/dto"
	"github.com/medsupply/ordering-backend/internal/store"
)

func TestClinicCRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewClinicService(store.NewMemory().Clinics)

	clinic, err := svc.Create(ctx, &dto.CreateClinicRequest{
		Name:    "Downtown Clinic",
		Address: "12 Main St",
		Phone:   "555-0100",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !clinic.Active {
		t.Fatalf("new clinic should be active")
	}

	name := "Downtown Medical Clinic"
	active := false
	got, err := svc.Update(ctx, clinic.ID, &dto.UpdateClinicRequest{Name: &name, Active: &active})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != name || got.Active {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.Address != "12 Main St" {
		t.Fatalf("untouched field changed: %+v", got)
	}

	if _, err := svc.Update(ctx, uuid.New(), &dto.UpdateClinicRequest{Name: &name}); !errors.Is(err, ErrClinicNotFound) {
		t.Fatalf("expected ErrClinicNotFound, got %v", err)
	}

	all, err := svc.List(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("list: %v len=%d", err, len(all))
	}

	if err := svc.Delete(ctx, clinic.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, clinic.ID); !errors.Is(err, ErrClinicNotFound) {
		t.Fatalf("expected ErrClinicNotFound, got %v", err)
	}
}
