package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-commerce-api-server/internal/domains/products/domain"
	"github.com/Apurer/go-commerce-api-server/internal/domains/products/ports"
)

type fakeProductRepo struct {
	products map[int64]*domain.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*domain.Product{}, nextID: 1}
}

func (f *fakeProductRepo) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID == 0 {
		product.ID = f.nextID
		f.nextID++
	}
	copy := *product
	f.products[copy.ID] = &copy
	return &copy, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	if p, ok := f.products[id]; ok {
		copy := *p
		return &copy, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeProductRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Product, error) {
	seen := make(map[int64]bool, len(ids))
	var result []*domain.Product
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := f.products[id]; ok {
			copy := *p
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	var list []*domain.Product
	for _, p := range f.products {
		copy := *p
		list = append(list, &copy)
	}
	return list, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.products[id]; !ok {
		return ports.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func TestCreate_AssignsID(t *testing.T) {
	svc := NewService(newFakeProductRepo())

	saved, err := svc.Create(context.Background(), &domain.Product{Name: "Product1", Price: 100.0, Stock: 10})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	require.Equal(t, "Product1", saved.Name)
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	svc := NewService(newFakeProductRepo())

	_, err := svc.Create(context.Background(), &domain.Product{Name: "", Price: 100.0})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &domain.Product{Name: "Product1", Price: -1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &domain.Product{Name: "Product1", Price: 100.0, Stock: -1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_ReplacesAllFields(t *testing.T) {
	svc := NewService(newFakeProductRepo())

	saved, err := svc.Create(context.Background(), &domain.Product{Name: "Product1", Description: "old", Price: 100.0, Stock: 10})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), saved.ID, &domain.Product{Name: "Product1b", Description: "new", Price: 150.0, Stock: 5})
	require.NoError(t, err)
	require.Equal(t, saved.ID, updated.ID)
	require.Equal(t, "Product1b", updated.Name)
	require.Equal(t, "new", updated.Description)
	require.Equal(t, 150.0, updated.Price)
	require.Equal(t, int32(5), updated.Stock)
}

func TestUpdate_UnknownProduct(t *testing.T) {
	svc := NewService(newFakeProductRepo())

	_, err := svc.Update(context.Background(), 404, &domain.Product{Name: "Product1", Price: 100.0})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete_ThenGetNotFound(t *testing.T) {
	svc := NewService(newFakeProductRepo())

	saved, err := svc.Create(context.Background(), &domain.Product{Name: "Product1", Price: 100.0, Stock: 10})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), saved.ID))
	_, err = svc.GetByID(context.Background(), saved.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
