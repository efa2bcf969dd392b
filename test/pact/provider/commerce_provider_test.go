//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	pacttest "github.com/Apurer/go-commerce-api-server/test/pact"

	commerceserver "github.com/Apurer/go-commerce-api-server/go"
	jwtadapter "github.com/Apurer/go-commerce-api-server/internal/domains/auth/adapters/jwt"
	authapp "github.com/Apurer/go-commerce-api-server/internal/domains/auth/application"
	customermemory "github.com/Apurer/go-commerce-api-server/internal/domains/customers/adapters/memory"
	customerobs "github.com/Apurer/go-commerce-api-server/internal/domains/customers/adapters/observability"
	customerapp "github.com/Apurer/go-commerce-api-server/internal/domains/customers/application"
	customerdomain "github.com/Apurer/go-commerce-api-server/internal/domains/customers/domain"
	ordermemory "github.com/Apurer/go-commerce-api-server/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/go-commerce-api-server/internal/domains/orders/adapters/observability"
	orderworkflows "github.com/Apurer/go-commerce-api-server/internal/domains/orders/adapters/workflows"
	orderapp "github.com/Apurer/go-commerce-api-server/internal/domains/orders/application"
	orderdomain "github.com/Apurer/go-commerce-api-server/internal/domains/orders/domain"
	productmemory "github.com/Apurer/go-commerce-api-server/internal/domains/products/adapters/memory"
	productobs "github.com/Apurer/go-commerce-api-server/internal/domains/products/adapters/observability"
	productapp "github.com/Apurer/go-commerce-api-server/internal/domains/products/application"
	productdomain "github.com/Apurer/go-commerce-api-server/internal/domains/products/domain"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestCommerceProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedCustomer(t)
				app.seedProducts(t)
			}
			return nil, nil
		},
		pacttest.StateCustomerReady: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedCustomer(t)
			}
			return nil, nil
		},
		pacttest.StateOrderExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedCustomer(t)
				app.seedProducts(t)
				app.seedOrder(t)
			}
			return nil, nil
		},
		pacttest.StateOrderMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedCustomer(t)
			}
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset(t)
			app.seedCustomer(t)
			app.seedProducts(t)
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	customers *customermemory.Repository
	products  *productmemory.Repository
	orders    *ordermemory.Repository
	server    *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	customerRepo := customermemory.NewRepository()
	productRepo := productmemory.NewRepository()
	orderRepo := ordermemory.NewRepository()

	customerService := customerobs.New(customerapp.NewService(customerRepo))
	productService := productobs.New(productapp.NewService(productRepo))
	orderService := orderobs.New(orderapp.NewService(orderRepo, customerRepo, productRepo))
	workflows := orderworkflows.NewInlineOrderWorkflows(orderService)

	tokens, err := jwtadapter.NewTokenService([]byte(pacttest.SigningSecret), 24*365*time.Hour)
	require.NoError(t, err)
	authService := authapp.NewService(customerRepo, tokens)

	handlers := commerceserver.ApiHandleFunctions{
		AuthAPI:     commerceserver.NewAuthAPI(authService, customerService),
		CustomerAPI: commerceserver.NewCustomerAPI(customerService),
		ProductAPI:  commerceserver.NewProductAPI(productService),
		OrderAPI:    commerceserver.NewOrderAPI(orderService, workflows),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = commerceserver.NewRouterWithGinEngine(router, handlers, tokens)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		customers: customerRepo,
		products:  productRepo,
		orders:    orderRepo,
		server:    server,
	}
}

func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()
	ctx := context.Background()
	orders, err := a.orders.List(ctx)
	require.NoError(t, err)
	for _, order := range orders {
		_ = a.orders.Delete(ctx, order.ID)
	}
	products, err := a.products.List(ctx)
	require.NoError(t, err)
	for _, product := range products {
		_ = a.products.Delete(ctx, product.ID)
	}
	customers, err := a.customers.List(ctx)
	require.NoError(t, err)
	for _, customer := range customers {
		_ = a.customers.Delete(ctx, customer.ID)
	}
}

func (a *contractProviderApp) seedCustomer(t testing.TB) {
	t.Helper()
	customer, err := customerdomain.NewCustomer(pacttest.ExistingCustomerID, pacttest.CustomerName, pacttest.CustomerEmail, pacttest.CustomerPassword)
	require.NoError(t, err)
	_, err = a.customers.Save(context.Background(), customer)
	require.NoError(t, err)
}

func (a *contractProviderApp) seedProducts(t testing.TB) {
	t.Helper()
	ctx := context.Background()
	for _, product := range []*productdomain.Product{
		{ID: pacttest.ExistingProductID, Name: "Product1", Price: 100.0, Stock: 10},
		{ID: pacttest.SecondProductID, Name: "Product2", Price: 200.0, Stock: 20},
	} {
		_, err := a.products.Save(ctx, product)
		require.NoError(t, err)
	}
}

func (a *contractProviderApp) seedOrder(t testing.TB) {
	t.Helper()
	order, err := orderdomain.NewOrder(pacttest.ExistingOrderID, pacttest.ExistingCustomerID, []int64{pacttest.ExistingProductID, pacttest.SecondProductID}, 300.0)
	require.NoError(t, err)
	_, err = a.orders.Save(context.Background(), order)
	require.NoError(t, err)
}
