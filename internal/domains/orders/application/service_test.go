package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	customerdomain "github.com/Apurer/go-commerce-api-server/internal/domains/customers/domain"
	customerports "github.com/Apurer/go-commerce-api-server/internal/domains/customers/ports"
	"github.com/Apurer/go-commerce-api-server/internal/domains/orders/domain"
	"github.com/Apurer/go-commerce-api-server/internal/domains/orders/ports"
	productdomain "github.com/Apurer/go-commerce-api-server/internal/domains/products/domain"
)

type fakeOrderRepo struct {
	orders map[int64]*domain.Order
	nextID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*domain.Order{}, nextID: 1}
}

func (f *fakeOrderRepo) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order.ID == 0 {
		order.ID = f.nextID
		f.nextID++
	}
	copy := *order
	copy.ProductIDs = append([]int64(nil), order.ProductIDs...)
	f.orders[copy.ID] = &copy
	return &copy, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	if o, ok := f.orders[id]; ok {
		copy := *o
		copy.ProductIDs = append([]int64(nil), o.ProductIDs...)
		return &copy, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeOrderRepo) List(_ context.Context) ([]*domain.Order, error) {
	var list []*domain.Order
	for _, o := range f.orders {
		copy := *o
		list = append(list, &copy)
	}
	return list, nil
}

func (f *fakeOrderRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.orders[id]
	return ok, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

type fakeCustomerSource struct {
	customers map[int64]*customerdomain.Customer
	calls     int
}

func (f *fakeCustomerSource) GetByID(_ context.Context, id int64) (*customerdomain.Customer, error) {
	f.calls++
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return nil, customerports.ErrNotFound
}

type fakeProductSource struct {
	products map[int64]*productdomain.Product
	calls    int
}

func (f *fakeProductSource) GetByIDs(_ context.Context, ids []int64) ([]*productdomain.Product, error) {
	f.calls++
	seen := make(map[int64]bool, len(ids))
	var result []*productdomain.Product
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := f.products[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func newFixture() (*Service, *fakeOrderRepo, *fakeCustomerSource, *fakeProductSource) {
	repo := newFakeOrderRepo()
	customers := &fakeCustomerSource{customers: map[int64]*customerdomain.Customer{
		1: {ID: 1, Name: "Customer1", Email: "customer1@example.com"},
	}}
	products := &fakeProductSource{products: map[int64]*productdomain.Product{
		1: {ID: 1, Name: "Product1", Price: 100.0, Stock: 10},
		2: {ID: 2, Name: "Product2", Price: 200.0, Stock: 20},
	}}
	return NewService(repo, customers, products), repo, customers, products
}

func TestCreateOrder_DerivesTotalWithDuplicates(t *testing.T) {
	svc, _, _, _ := newFixture()

	order, err := svc.CreateOrder(context.Background(), ports.OrderInput{
		CustomerID: 1,
		ProductIDs: []int64{1, 1, 2},
	})
	require.NoError(t, err)
	require.NotZero(t, order.ID)
	require.Equal(t, int64(1), order.CustomerID)
	require.Equal(t, []int64{1, 1, 2}, order.ProductIDs)
	require.Equal(t, 400.0, order.TotalAmount)
}

func TestCreateOrder_TotalIndependentOfOrder(t *testing.T) {
	svc, _, _, _ := newFixture()

	first, err := svc.CreateOrder(context.Background(), ports.OrderInput{CustomerID: 1, ProductIDs: []int64{1, 1, 2}})
	require.NoError(t, err)
	second, err := svc.CreateOrder(context.Background(), ports.OrderInput{CustomerID: 1, ProductIDs: []int64{2, 1, 1}})
	require.NoError(t, err)
	require.Equal(t, first.TotalAmount, second.TotalAmount)
}

func TestCreateOrder_DropsUnresolvableProducts(t *testing.T) {
	svc, _, _, _ := newFixture()

	order, err := svc.CreateOrder(context.Background(), ports.OrderInput{
		CustomerID: 1,
		ProductIDs: []int64{1, 99},
	})
	require.NoError(t, err)
	require.Equal(t, []int64{1}, order.ProductIDs)
	require.Equal(t, 100.0, order.TotalAmount)
}

func TestCreateOrder_NoProductsResolve(t *testing.T) {
	svc, _, _, _ := newFixture()

	_, err := svc.CreateOrder(context.Background(), ports.OrderInput{
		CustomerID: 1,
		ProductIDs: []int64{98, 99},
	})
	require.ErrorIs(t, err, ports.ErrProductsNotFound)
}

func TestCreateOrder_EmptyProductList(t *testing.T) {
	svc, _, _, _ := newFixture()

	_, err := svc.CreateOrder(context.Background(), ports.OrderInput{CustomerID: 1})
	require.ErrorIs(t, err, ports.ErrProductsNotFound)
}

func TestCreateOrder_UnknownCustomerPrecedesProducts(t *testing.T) {
	svc, _, _, products := newFixture()

	_, err := svc.CreateOrder(context.Background(), ports.OrderInput{
		CustomerID: 42,
		ProductIDs: []int64{98, 99},
	})
	require.ErrorIs(t, err, ports.ErrCustomerNotFound)
	require.Zero(t, products.calls)
}

func TestUpdateOrder_ReplacesBindingsInFull(t *testing.T) {
	svc, _, _, _ := newFixture()

	created, err := svc.CreateOrder(context.Background(), ports.OrderInput{CustomerID: 1, ProductIDs: []int64{1, 2}})
	require.NoError(t, err)
	require.Equal(t, 300.0, created.TotalAmount)

	updated, err := svc.UpdateOrder(context.Background(), created.ID, ports.OrderInput{CustomerID: 1, ProductIDs: []int64{1}})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, []int64{1}, updated.ProductIDs)
	require.Equal(t, 100.0, updated.TotalAmount)

	fetched, err := svc.GetOrderByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, 100.0, fetched.TotalAmount)
}

func TestUpdateOrder_UnknownOrderSkipsResolution(t *testing.T) {
	svc, _, customers, _ := newFixture()

	_, err := svc.UpdateOrder(context.Background(), 404, ports.OrderInput{CustomerID: 1, ProductIDs: []int64{1}})
	require.ErrorIs(t, err, ports.ErrNotFound)
	require.Zero(t, customers.calls)
}

func TestUpdateOrder_UnknownCustomer(t *testing.T) {
	svc, _, _, _ := newFixture()

	created, err := svc.CreateOrder(context.Background(), ports.OrderInput{CustomerID: 1, ProductIDs: []int64{1}})
	require.NoError(t, err)

	_, err = svc.UpdateOrder(context.Background(), created.ID, ports.OrderInput{CustomerID: 42, ProductIDs: []int64{1}})
	require.ErrorIs(t, err, ports.ErrCustomerNotFound)
}

func TestDeleteOrder_RemovesOrder(t *testing.T) {
	svc, _, _, _ := newFixture()

	created, err := svc.CreateOrder(context.Background(), ports.OrderInput{CustomerID: 1, ProductIDs: []int64{1}})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(context.Background(), created.ID))
	_, err = svc.GetOrderByID(context.Background(), created.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDeleteOrder_UnknownOrder(t *testing.T) {
	svc, _, _, _ := newFixture()

	err := svc.DeleteOrder(context.Background(), 404)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestGetOrderByID_UnknownOrder(t *testing.T) {
	svc, _, _, _ := newFixture()

	_, err := svc.GetOrderByID(context.Background(), 404)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
