package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/Apurer/go-commerce-api-server/internal/domains/products/domain"
	"github.com/Apurer/go-commerce-api-server/internal/domains/products/ports"
)

// Service orchestrates product catalog use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := product.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, product)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundWithID(err, id)
	}
	return product, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// Update replaces all product fields; partial updates are not supported.
func (s *Service) Update(ctx context.Context, id int64, updated *domain.Product) (*domain.Product, error) {
	if updated == nil {
		return nil, errors.New("product is nil")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundWithID(err, id)
	}
	updated.ID = existing.ID
	if err := updated.Validate(); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, updated)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundWithID(err, id)
	}
	return nil
}

func notFoundWithID(err error, id int64) error {
	if errors.Is(err, ports.ErrNotFound) {
		return fmt.Errorf("%w with id: %d", ports.ErrNotFound, id)
	}
	return err
}

var _ ports.Service = (*Service)(nil)
