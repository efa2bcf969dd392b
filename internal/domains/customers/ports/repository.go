package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-commerce-api-server/internal/domains/customers/domain"
)

var (
	ErrNotFound = errors.New("customer not found")
	// ErrEmailTaken signals a registration or update that would claim an
	// email address already bound to another customer.
	ErrEmailTaken = errors.New("email already registered")
)

// Repository persists customers. Save assigns the id on first save.
type Repository interface {
	Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}
