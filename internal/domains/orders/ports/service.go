package ports

import (
	"context"

	"github.com/Apurer/go-commerce-api-server/internal/domains/orders/domain"
)

// OrderInput carries the client-supplied order references. Any
// client-submitted total is discarded; the service recomputes it.
type OrderInput struct {
	CustomerID int64
	ProductIDs []int64
}

// Service exposes order bounded context use cases to adapters.
type Service interface {
	CreateOrder(ctx context.Context, input OrderInput) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id int64, input OrderInput) (*domain.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}
