package services

import (
	"context"
	"errors"
	"testing"

	"github.com/medsupply/ordering-backend/internal/dto"
	"github.com/medsupply/ordering-backend/internal/models"
)

func newTemplateService(f *orderFixture) *TemplateService {
	return NewTemplateService(f.stores.Templates, f.stores.Products, f.stores.Orders, f.stores.Clinics)
}

func TestTemplateCreateAndList(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	svc := newTemplateService(f)

	tpl, err := svc.Create(ctx, f.staff, &dto.CreateTemplateRequest{
		Name:        "Weekly restock",
		Description: "Standing weekly order",
		Items: []dto.TemplateItemRequest{
			{ProductID: f.gauze.ID, DefaultQuantity: 5},
			{ProductID: f.gloves.ID, DefaultQuantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tpl.ClinicID != f.clinic.ID {
		t.Fatalf("template not scoped to actor's clinic")
	}
	if len(tpl.Items) != 2 || tpl.Items[0].Name != "Gauze" {
		t.Fatalf("item snapshots missing: %+v", tpl.Items)
	}
	if tpl.Frequency != 0 || tpl.LastUsed != nil {
		t.Fatalf("usage counters should start empty")
	}

	mine, err := svc.List(ctx, f.staff)
	if err != nil || len(mine) != 1 {
		t.Fatalf("list: %v len=%d", err, len(mine))
	}

	// other clinics see nothing
	other := &models.Clinic{Name: "Uptown Clinic", Active: true}
	if err := f.stores.Clinics.Create(ctx, other); err != nil {
		t.Fatal(err)
	}
	outsider := &models.User{Email: "o@x.test", Name: "O", Role: models.RoleStaff, ClinicID: &other.ID, Active: true}
	theirs, err := svc.List(ctx, outsider)
	if err != nil || len(theirs) != 0 {
		t.Fatalf("outsider list: %v len=%d", err, len(theirs))
	}
	if _, err := svc.Get(ctx, outsider, tpl.ID); !errors.Is(err, ErrClinicAccessDenied) {
		t.Fatalf("expected ErrClinicAccessDenied, got %v", err)
	}
}

func TestTemplateApply(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	svc := newTemplateService(f)

	tpl, err := svc.Create(ctx, f.staff, &dto.CreateTemplateRequest{
		Name: "Weekly restock",
		Items: []dto.TemplateItemRequest{
			{ProductID: f.gauze.ID, DefaultQuantity: 5},
			{ProductID: f.gloves.ID, DefaultQuantity: 2},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	order, err := svc.Apply(ctx, f.staff, tpl.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if order.Status != models.OrderStatusDraft {
		t.Fatalf("applied order should be draft, got %s", order.Status)
	}
	want := 5*4.5 + 2*12.0
	if order.Total != want {
		t.Fatalf("total %v, want %v", order.Total, want)
	}
	if order.UserID != f.staff.ID || order.ClinicID != f.clinic.ID {
		t.Fatalf("order attribution wrong")
	}

	// usage counters advance on every apply
	if _, err := svc.Apply(ctx, f.staff, tpl.ID); err != nil {
		t.Fatal(err)
	}
	got, err := svc.Get(ctx, f.staff, tpl.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Frequency != 2 {
		t.Fatalf("frequency %d, want 2", got.Frequency)
	}
	if got.LastUsed == nil {
		t.Fatalf("last_used not stamped")
	}
}

func TestTemplateUpdate_ResnapshotsItems(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	svc := newTemplateService(f)

	tpl, err := svc.Create(ctx, f.staff, &dto.CreateTemplateRequest{
		Name:  "Weekly restock",
		Items: []dto.TemplateItemRequest{{ProductID: f.gauze.ID, DefaultQuantity: 5}},
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Update(ctx, f.staff, tpl.ID, &dto.UpdateTemplateRequest{
		Items: []dto.TemplateItemRequest{{ProductID: f.gloves.ID, DefaultQuantity: 3}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].Name != "Gloves" || got.Items[0].Price != 12 {
		t.Fatalf("items not re-snapshotted: %+v", got.Items)
	}
}

func TestTemplateDelete(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	svc := newTemplateService(f)

	tpl, err := svc.Create(ctx, f.staff, &dto.CreateTemplateRequest{
		Name:  "Weekly restock",
		Items: []dto.TemplateItemRequest{{ProductID: f.gauze.ID, DefaultQuantity: 1}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(ctx, f.staff, tpl.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, f.staff, tpl.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := svc.Get(ctx, f.staff, tpl.ID); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}
