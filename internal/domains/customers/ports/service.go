package ports

import (
	"context"

	"github.com/Apurer/go-commerce-api-server/internal/domains/customers/domain"
)

// Service exposes customer bounded context use cases to adapters.
type Service interface {
	Register(ctx context.Context, name, email, password string) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, id int64, name, email, password string) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}
