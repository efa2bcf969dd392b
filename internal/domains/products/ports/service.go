package ports

import (
	"context"

	"github.com/Apurer/go-commerce-api-server/internal/domains/products/domain"
)

// Service exposes product bounded context use cases to adapters.
type Service interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id int64, updated *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}
