package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-commerce-api-server/internal/domains/orders/domain"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrCustomerNotFound is returned when order resolution cannot find the
	// referenced customer. It takes precedence over product errors.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrProductsNotFound is returned when none of the referenced product
	// ids resolve.
	ErrProductsNotFound = errors.New("no products found with the provided IDs")
)

// Repository persists orders. Save assigns the id on first save.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}
