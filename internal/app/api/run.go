package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	commerceserver "github.com/Apurer/go-commerce-api-server/go"

	authjwt "github.com/Apurer/go-commerce-api-server/internal/domains/auth/adapters/jwt"
	authapp "github.com/Apurer/go-commerce-api-server/internal/domains/auth/application"
	customermemory "github.com/Apurer/go-commerce-api-server/internal/domains/customers/adapters/memory"
	customerobs "github.com/Apurer/go-commerce-api-server/internal/domains/customers/adapters/observability"
	customerpostgres "github.com/Apurer/go-commerce-api-server/internal/domains/customers/adapters/persistence/postgres"
	customerapp "github.com/Apurer/go-commerce-api-server/internal/domains/customers/application"
	customerports "github.com/Apurer/go-commerce-api-server/internal/domains/customers/ports"
	ordermemory "github.com/Apurer/go-commerce-api-server/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/go-commerce-api-server/internal/domains/orders/adapters/observability"
	orderpostgres "github.com/Apurer/go-commerce-api-server/internal/domains/orders/adapters/persistence/postgres"
	orderworkflows "github.com/Apurer/go-commerce-api-server/internal/domains/orders/adapters/workflows"
	orderapp "github.com/Apurer/go-commerce-api-server/internal/domains/orders/application"
	orderports "github.com/Apurer/go-commerce-api-server/internal/domains/orders/ports"
	productmemory "github.com/Apurer/go-commerce-api-server/internal/domains/products/adapters/memory"
	productobs "github.com/Apurer/go-commerce-api-server/internal/domains/products/adapters/observability"
	productpostgres "github.com/Apurer/go-commerce-api-server/internal/domains/products/adapters/persistence/postgres"
	productapp "github.com/Apurer/go-commerce-api-server/internal/domains/products/application"
	productports "github.com/Apurer/go-commerce-api-server/internal/domains/products/ports"
	"github.com/Apurer/go-commerce-api-server/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-commerce-api-server/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-commerce-api-server/internal/platform/postgres"
)

// Run boots the commerce HTTP API with observability, repositories, and
// workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "commerce-api"
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	repos, cleanupRepos := buildRepositories(ctx, cfg, logger)
	defer cleanupRepos()

	customerService := customerobs.New(
		customerapp.NewService(repos.customers),
		customerobs.WithLogger(logger),
		customerobs.WithTracer(instruments.Tracer("internal.customers.application")),
		customerobs.WithMeter(instruments.Meter("internal.customers.application")),
	)
	productService := productobs.New(
		productapp.NewService(repos.products),
		productobs.WithLogger(logger),
		productobs.WithTracer(instruments.Tracer("internal.products.application")),
		productobs.WithMeter(instruments.Meter("internal.products.application")),
	)
	orderService := orderobs.New(
		orderapp.NewService(repos.orders, repos.customers, repos.products),
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	tokenService, err := authjwt.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to build token service: %w", err)
	}
	authService := authapp.NewService(repos.customers, tokenService)

	var orderOrchestrator orderports.WorkflowOrchestrator = orderworkflows.NewInlineOrderWorkflows(orderService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, running inline order creation", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderOrchestrator = orderworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := commerceserver.ApiHandleFunctions{
		AuthAPI:     commerceserver.NewAuthAPI(authService, customerService),
		CustomerAPI: commerceserver.NewCustomerAPI(customerService),
		ProductAPI:  commerceserver.NewProductAPI(productService),
		OrderAPI:    commerceserver.NewOrderAPI(orderService, orderOrchestrator),
	}

	engine := gin.Default()
	engine.Use(otelgin.Middleware(serviceName))
	router := commerceserver.NewRouterWithGinEngine(engine, handlers, tokenService)
	addr := ":" + cfg.Port
	logger.Info("commerce API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("commerce API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

type repositories struct {
	customers customerports.Repository
	products  productports.Repository
	orders    orderports.Repository
}

func buildRepositories(ctx context.Context, cfg Config, logger *slog.Logger) (repositories, func()) {
	memory := repositories{
		customers: customermemory.NewRepository(),
		products:  productmemory.NewRepository(),
		orders:    ordermemory.NewRepository(),
	}
	db, cleanup := platformpostgres.ConnectWithFallback(ctx, cfg.PostgresDSN, logger)
	if db == nil {
		return memory, func() {}
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to memory", slog.String("error", err.Error()))
		cleanup()
		return memory, func() {}
	}
	logger.Info("repositories configured with postgres")
	return repositories{
		customers: customerpostgres.NewRepository(db),
		products:  productpostgres.NewRepository(db),
		orders:    orderpostgres.NewRepository(db),
	}, cleanup
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
