package application

import (
	"context"
	"errors"
	"fmt"

	customerports "github.com/Apurer/go-commerce-api-server/internal/domains/customers/ports"
	"github.com/Apurer/go-commerce-api-server/internal/domains/orders/domain"
	"github.com/Apurer/go-commerce-api-server/internal/domains/orders/ports"
)

// Service orchestrates order use cases. Creation and update share the same
// resolution: validate the customer reference, resolve the product
// references, derive the total, bind and persist.
type Service struct {
	repo      ports.Repository
	customers ports.CustomerSource
	products  ports.ProductSource
}

func NewService(repo ports.Repository, customers ports.CustomerSource, products ports.ProductSource) *Service {
	return &Service{repo: repo, customers: customers, products: products}
}

func (s *Service) CreateOrder(ctx context.Context, input ports.OrderInput) (*domain.Order, error) {
	productIDs, total, err := s.resolve(ctx, input)
	if err != nil {
		return nil, err
	}
	order, err := domain.NewOrder(0, input.CustomerID, productIDs, total)
	if err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, order)
}

// UpdateOrder re-runs resolution against the new customer and product id
// set and replaces the bindings in full. The target order must pre-exist;
// that check happens before any resolution.
func (s *Service) UpdateOrder(ctx context.Context, id int64, input ports.OrderInput) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, orderNotFoundWithID(err, id)
	}
	productIDs, total, err := s.resolve(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := order.Rebind(input.CustomerID, productIDs, total); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, order)
}

func (s *Service) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, orderNotFoundWithID(err, id)
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w with id: %d", ports.ErrNotFound, id)
	}
	return s.repo.Delete(ctx, id)
}

// resolve translates the referenced customer and product ids into a bound
// product id list plus the derived total.
//
// The customer check always precedes product resolution. Product ids that
// do not resolve are dropped silently; the operation fails only when none
// resolve. Partial resolution is success. Duplicate ids contribute to the
// total once per occurrence and stay in the binding.
func (s *Service) resolve(ctx context.Context, input ports.OrderInput) ([]int64, float64, error) {
	if _, err := s.customers.GetByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, customerports.ErrNotFound) {
			return nil, 0, fmt.Errorf("%w with id: %d", ports.ErrCustomerNotFound, input.CustomerID)
		}
		return nil, 0, err
	}

	resolved, err := s.products.GetByIDs(ctx, input.ProductIDs)
	if err != nil {
		return nil, 0, err
	}
	if len(resolved) == 0 {
		return nil, 0, ports.ErrProductsNotFound
	}

	prices := make(map[int64]float64, len(resolved))
	for _, product := range resolved {
		prices[product.ID] = product.Price
	}

	bound := make([]int64, 0, len(input.ProductIDs))
	var total float64
	for _, id := range input.ProductIDs {
		price, ok := prices[id]
		if !ok {
			continue
		}
		bound = append(bound, id)
		total += price
	}
	return bound, total, nil
}

func orderNotFoundWithID(err error, id int64) error {
	if errors.Is(err, ports.ErrNotFound) {
		return fmt.Errorf("%w with id: %d", ports.ErrNotFound, id)
	}
	return err
}

var _ ports.Service = (*Service)(nil)
