package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/medsupply/ordering-backend/internal/models"
)

func TestMemory_CreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo[models.Clinic]()

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 1000; i++ {
		c := &models.Clinic{Name: "Clinic", Active: true}
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("create: %v", err)
		}
		if c.ID == uuid.Nil {
			t.Fatalf("no id assigned")
		}
		if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
			t.Fatalf("timestamps not stamped")
		}
		if seen[c.ID] {
			t.Fatalf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestMemory_CreateKeepsProvidedID(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo[models.Clinic]()

	id := uuid.New()
	c := &models.Clinic{Name: "Clinic"}
	c.ID = id
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID != id {
		t.Fatalf("id overwritten: %s", c.ID)
	}
}

func TestMemory_GetByIDMissIsNilNil(t *testing.T) {
	repo := newMemoryRepo[models.Clinic]()

	got, err := repo.GetByID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil record, got %+v", got)
	}
}

func TestMemory_UpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo[models.Product]()

	p := &models.Product{Name: "Gauze", Category: "wound-care", SKU: "GZ-1", Price: 4.5, Unit: "box", Active: true}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	createdAt := p.CreatedAt

	got, err := repo.Update(ctx, p.ID, Fields{"price": 5.25, "name": "Sterile Gauze"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Price != 5.25 || got.Name != "Sterile Gauze" {
		t.Fatalf("fields not merged: %+v", got)
	}
	if got.SKU != "GZ-1" || got.Category != "wound-care" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Fatalf("created_at changed")
	}
	if !got.UpdatedAt.After(createdAt) && !got.UpdatedAt.Equal(createdAt) {
		t.Fatalf("updated_at not refreshed")
	}
}

func TestMemory_UpdateIgnoresProtectedFields(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo[models.Product]()

	p := &models.Product{Name: "Gauze", SKU: "GZ-1"}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Update(ctx, p.ID, Fields{"id": uuid.New(), "name": "Changed"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ID != p.ID {
		t.Fatalf("id was overwritten")
	}
	if got.Name != "Changed" {
		t.Fatalf("name not applied")
	}
}

func TestMemory_UpdateAbsentIDFails(t *testing.T) {
	repo := newMemoryRepo[models.Product]()

	_, err := repo.Update(context.Background(), uuid.New(), Fields{"name": "X"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_RemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo[models.Clinic]()

	c := &models.Clinic{Name: "Clinic"}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Remove(ctx, c.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := repo.Remove(ctx, c.ID); err != nil {
		t.Fatalf("second remove: %v", err)
	}
	if err := repo.Remove(ctx, uuid.New()); err != nil {
		t.Fatalf("remove of absent id: %v", err)
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil || got != nil {
		t.Fatalf("record still visible after remove: %+v %v", got, err)
	}
}

func TestMemory_FindBy(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo[models.Product]()

	for _, p := range []models.Product{
		{Name: "Gauze", Category: "wound-care", SKU: "GZ-1", Active: true},
		{Name: "Tape", Category: "wound-care", SKU: "TP-1", Active: true},
		{Name: "Gloves", Category: "ppe", SKU: "GL-1", Active: true},
	} {
		rec := p
		if err := repo.Create(ctx, &rec); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.FindBy(ctx, Match{Field: "category", Value: "wound-care"})
	if err != nil {
		t.Fatalf("findby: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	for _, p := range got {
		if p.Category != "wound-care" {
			t.Fatalf("stray match: %+v", p)
		}
	}

	none, err := repo.FindBy(ctx, Match{Field: "category", Value: "imaging"})
	if err != nil {
		t.Fatalf("findby: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestMemory_FindByTwoFields(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo[models.ProductStock]()

	clinicA, clinicB := uuid.New(), uuid.New()
	product := uuid.New()

	for _, s := range []models.ProductStock{
		{ProductID: product, ClinicID: clinicA, Quantity: 10},
		{ProductID: product, ClinicID: clinicB, Quantity: 20},
		{ProductID: uuid.New(), ClinicID: clinicA, Quantity: 30},
	} {
		rec := s
		if err := repo.Create(ctx, &rec); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.FindBy(ctx,
		Match{Field: "product_id", Value: product},
		Match{Field: "clinic_id", Value: clinicA},
	)
	if err != nil {
		t.Fatalf("findby: %v", err)
	}
	if len(got) != 1 || got[0].Quantity != 10 {
		t.Fatalf("expected the clinic A row, got %+v", got)
	}
}

func TestMemory_AllWithLimit(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo[models.Clinic]()

	for i := 0; i < 5; i++ {
		if err := repo.Create(ctx, &models.Clinic{Name: "Clinic"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := repo.All(ctx, 0)
	if err != nil || len(all) != 5 {
		t.Fatalf("all: %v len=%d", err, len(all))
	}

	capped, err := repo.All(ctx, 3)
	if err != nil || len(capped) != 3 {
		t.Fatalf("capped: %v len=%d", err, len(capped))
	}
}

func TestMemory_GetByIDReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo[models.Clinic]()

	c := &models.Clinic{Name: "Original"}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Name = "Mutated"

	again, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Name != "Original" {
		t.Fatalf("stored record mutated through returned copy")
	}
}

func TestMemory_FindByJSONHiddenField(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo[models.RefreshToken]()

	tok := &models.RefreshToken{UserID: uuid.New(), TokenHash: "deadbeef"}
	if err := repo.Create(ctx, tok); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindBy(ctx, Match{Field: "token_hash", Value: "deadbeef"})
	if err != nil {
		t.Fatalf("findby: %v", err)
	}
	if len(got) != 1 || got[0].ID != tok.ID {
		t.Fatalf("expected the stored token, got %d records", len(got))
	}

	if _, err := repo.Update(ctx, tok.ID, Fields{"revoked": true}); err != nil {
		t.Fatalf("update: %v", err)
	}
	stored, err := repo.GetByID(ctx, tok.ID)
	if err != nil {
		t.Fatalf("getbyid: %v", err)
	}
	if !stored.Revoked {
		t.Fatalf("revoked flag not persisted")
	}
}

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"TokenHash": "token_hash",
		"UserID":    "user_id",
		"ID":        "id",
		"Name":      "name",
		"ExpiresAt": "expires_at",
		"SKU":       "sku",
	}
	for in, want := range cases {
		if got := snakeCase(in); got != want {
			t.Fatalf("snakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
