package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/medsupply/ordering-backend/internal/dto"
	"github.com/medsupply/ordering-backend/internal/models"
	"github.com/medsupply/ordering-backend/internal/store"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrSKUTaken        = errors.New("sku already in use")
)

type ProductService struct {
	products store.ProductRepo
}

func NewProductService(products store.ProductRepo) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.products.All(ctx, 0)
}

func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.products.FindBy(ctx, store.Match{Field: "category", Value: category})
}

func (s *ProductService) Create(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error) {
	taken, err := s.products.FindBy(ctx, store.Match{Field: "sku", Value: req.SKU})
	if err != nil {
		return nil, err
	}
	if len(taken) > 0 {
		return nil, ErrSKUTaken
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		SKU:         req.SKU,
		Price:       req.Price,
		Unit:        req.Unit,
		MinStock:    req.MinStock,
		Active:      true,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*models.Product, error) {
	fields := store.Fields{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.SKU != nil {
		taken, err := s.products.FindBy(ctx, store.Match{Field: "sku", Value: *req.SKU})
		if err != nil {
			return nil, err
		}
		if len(taken) > 0 && taken[0].ID != id {
			return nil, ErrSKUTaken
		}
		fields["sku"] = *req.SKU
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Unit != nil {
		fields["unit"] = *req.Unit
	}
	if req.MinStock != nil {
		fields["min_stock"] = *req.MinStock
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	product, err := s.products.Update(ctx, id, fields)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.products.Remove(ctx, id)
}
