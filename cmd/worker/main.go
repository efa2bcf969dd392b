package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	customermemory "github.com/Apurer/go-commerce-api-server/internal/domains/customers/adapters/memory"
	customerpostgres "github.com/Apurer/go-commerce-api-server/internal/domains/customers/adapters/persistence/postgres"
	customerports "github.com/Apurer/go-commerce-api-server/internal/domains/customers/ports"
	ordermemory "github.com/Apurer/go-commerce-api-server/internal/domains/orders/adapters/memory"
	orderobs "github.com/Apurer/go-commerce-api-server/internal/domains/orders/adapters/observability"
	orderpostgres "github.com/Apurer/go-commerce-api-server/internal/domains/orders/adapters/persistence/postgres"
	orderapp "github.com/Apurer/go-commerce-api-server/internal/domains/orders/application"
	orderports "github.com/Apurer/go-commerce-api-server/internal/domains/orders/ports"
	productmemory "github.com/Apurer/go-commerce-api-server/internal/domains/products/adapters/memory"
	productpostgres "github.com/Apurer/go-commerce-api-server/internal/domains/products/adapters/persistence/postgres"
	productports "github.com/Apurer/go-commerce-api-server/internal/domains/products/ports"
	"github.com/Apurer/go-commerce-api-server/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-commerce-api-server/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-commerce-api-server/internal/platform/postgres"
	orderactivities "github.com/Apurer/go-commerce-api-server/internal/platform/temporal/activities/orders"
	orderworkflows "github.com/Apurer/go-commerce-api-server/internal/platform/temporal/workflows/orders"
)

func main() {
	ctx := context.Background()
	const serviceName = "commerce-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	customerRepo, productRepo, orderRepo, cleanupRepos := buildRepositories(ctx, logger)
	defer cleanupRepos()
	orderService := orderobs.New(
		orderapp.NewService(orderRepo, customerRepo, productRepo),
		orderobs.WithLogger(logger),
		orderobs.WithTracer(instruments.Tracer("internal.orders.application")),
		orderobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	orderActivities := orderactivities.NewActivities(orderService)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderCreationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderCreationWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderCreationWorkflowName})
	w.RegisterActivityWithOptions(orderActivities.PersistOrder, activity.RegisterOptions{Name: orderactivities.PersistOrderActivityName})

	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderCreationTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildRepositories(ctx context.Context, logger *slog.Logger) (customerports.Repository, productports.Repository, orderports.Repository, func()) {
	memory := func() (customerports.Repository, productports.Repository, orderports.Repository, func()) {
		return customermemory.NewRepository(), productmemory.NewRepository(), ordermemory.NewRepository(), func() {}
	}
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	if db == nil {
		return memory()
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("worker failed to run migrations (falling back to memory)", slog.String("error", err.Error()))
		cleanup()
		return memory()
	}
	logger.Info("worker repositories configured with postgres")
	return customerpostgres.NewRepository(db), productpostgres.NewRepository(db), orderpostgres.NewRepository(db), cleanup
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
