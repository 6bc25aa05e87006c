package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/medsupply/ordering-backend/internal/dto"
	"github.com/medsupply/ordering-backend/internal/models"
	"github.com/medsupply/ordering-backend/internal/store"
)

type InventoryService struct {
	products store.ProductRepo
	stock    store.StockRepo
}

func NewInventoryService(products store.ProductRepo, stock store.StockRepo) *InventoryService {
	return &InventoryService{products: products, stock: stock}
}

// ListForClinic joins the active catalog with the clinic's stock ledger.
// Products without a ledger row count as zero on hand.
func (s *InventoryService) ListForClinic(ctx context.Context, clinicID uuid.UUID) ([]dto.InventoryItem, error) {
	products, err := s.products.All(ctx, 0)
	if err != nil {
		return nil, err
	}

	rows, err := s.stock.FindBy(ctx, store.Match{Field: "clinic_id", Value: clinicID})
	if err != nil {
		return nil, err
	}
	quantities := make(map[uuid.UUID]int, len(rows))
	for _, r := range rows {
		quantities[r.ProductID] = r.Quantity
	}

	items := make([]dto.InventoryItem, 0, len(products))
	for _, p := range products {
		if !p.Active {
			continue
		}
		qty := quantities[p.ID]
		items = append(items, dto.InventoryItem{
			ID:           p.ID,
			Name:         p.Name,
			Category:     p.Category,
			SKU:          p.SKU,
			Unit:         p.Unit,
			Price:        p.Price,
			Quantity:     qty,
			ReorderPoint: p.MinStock,
			Status:       models.StockStatus(qty, p.MinStock),
		})
	}
	return items, nil
}

// SetStock upserts the clinic's on-hand quantity for one product.
func (s *InventoryService) SetStock(ctx context.Context, clinicID, productID uuid.UUID, quantity int) (*models.ProductStock, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	existing, err := s.stock.FindBy(ctx,
		store.Match{Field: "product_id", Value: productID},
		store.Match{Field: "clinic_id", Value: clinicID},
	)
	if err != nil {
		return nil, err
	}

	if len(existing) == 0 {
		row := &models.ProductStock{
			ProductID: productID,
			ClinicID:  clinicID,
			Quantity:  quantity,
		}
		if err := s.stock.Create(ctx, row); err != nil {
			return nil, err
		}
		return row, nil
	}

	row, err := s.stock.Update(ctx, existing[0].ID, store.Fields{"quantity": quantity})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}
