package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/medsupply/ordering-backend/internal/dto"
	"github.com/medsupply/ordering-backend/internal/store"
)

func newProductService(t *testing.T) *ProductService {
	t.Helper()
	return NewProductService(store.NewMemory().Products)
}

func TestProductCreate_SKUUnique(t *testing.T) {
	ctx := context.Background()
	svc := newProductService(t)

	p, err := svc.Create(ctx, &dto.CreateProductRequest{
		Name: "Gauze", Category: "wound-care", SKU: "GZ-1", Price: 4.5, Unit: "box",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !p.Active {
		t.Fatalf("new product should be active")
	}

	_, err = svc.Create(ctx, &dto.CreateProductRequest{
		Name: "Other Gauze", Category: "wound-care", SKU: "GZ-1", Price: 5, Unit: "box",
	})
	if !errors.Is(err, ErrSKUTaken) {
		t.Fatalf("expected ErrSKUTaken, got %v", err)
	}
}

func TestProductUpdate_SKUConflict(t *testing.T) {
	ctx := context.Background()
	svc := newProductService(t)

	a, err := svc.Create(ctx, &dto.CreateProductRequest{Name: "A", Category: "c", SKU: "A-1", Price: 1, Unit: "ea"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := svc.Create(ctx, &dto.CreateProductRequest{Name: "B", Category: "c", SKU: "B-1", Price: 1, Unit: "ea"})
	if err != nil {
		t.Fatal(err)
	}

	sku := "A-1"
	if _, err := svc.Update(ctx, b.ID, &dto.UpdateProductRequest{SKU: &sku}); !errors.Is(err, ErrSKUTaken) {
		t.Fatalf("expected ErrSKUTaken, got %v", err)
	}

	// re-submitting your own sku is not a conflict
	own := "A-1"
	price := 2.5
	got, err := svc.Update(ctx, a.ID, &dto.UpdateProductRequest{SKU: &own, Price: &price})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Price != 2.5 {
		t.Fatalf("price not updated: %v", got.Price)
	}

	if _, err := svc.Update(ctx, uuid.New(), &dto.UpdateProductRequest{Price: &price}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductListByCategory(t *testing.T) {
	ctx := context.Background()
	svc := newProductService(t)

	seed := []dto.CreateProductRequest{
		{Name: "Gauze", Category: "wound-care", SKU: "GZ-1", Price: 4.5, Unit: "box"},
		{Name: "Tape", Category: "wound-care", SKU: "TP-1", Price: 2, Unit: "roll"},
		{Name: "Gloves", Category: "ppe", SKU: "GL-1", Price: 12, Unit: "box"},
	}
	for i := range seed {
		if _, err := svc.Create(ctx, &seed[i]); err != nil {
			t.Fatal(err)
		}
	}

	got, err := svc.ListByCategory(ctx, "wound-care")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 wound-care products, got %d", len(got))
	}
}

func TestProductGetAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newProductService(t)

	p, err := svc.Create(ctx, &dto.CreateProductRequest{Name: "A", Category: "c", SKU: "A-1", Price: 1, Unit: "ea"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Get(ctx, p.ID); err != nil {
		t.Fatalf("get: %v", err)
	}
	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, p.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
