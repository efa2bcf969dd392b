package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	customerpostgres "github.com/Apurer/go-commerce-api-server/internal/domains/customers/adapters/persistence/postgres"
	customerapp "github.com/Apurer/go-commerce-api-server/internal/domains/customers/application"
	customerports "github.com/Apurer/go-commerce-api-server/internal/domains/customers/ports"
	productpostgres "github.com/Apurer/go-commerce-api-server/internal/domains/products/adapters/persistence/postgres"
	productapp "github.com/Apurer/go-commerce-api-server/internal/domains/products/application"
	productdomain "github.com/Apurer/go-commerce-api-server/internal/domains/products/domain"
	"github.com/Apurer/go-commerce-api-server/internal/platform/migrations"
	platformpostgres "github.com/Apurer/go-commerce-api-server/internal/platform/postgres"
)

type seedCustomer struct {
	name     string
	email    string
	password string
}

type seedProduct struct {
	name        string
	description string
	price       float64
	stock       int32
}

var (
	seedCustomers = []seedCustomer{
		{name: "Customer1", email: "customer1@example.com", password: "password"},
		{name: "Customer2", email: "customer2@example.com", password: "password"},
	}
	seedProducts = []seedProduct{
		{name: "Product1", description: "Description1", price: 100.0, stock: 10},
		{name: "Product2", description: "Description2", price: 200.0, stock: 20},
	}
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot seed sample data")
	}
	if err := migrations.Run(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	customerRepo := customerpostgres.NewRepository(db)
	customers := customerapp.NewService(customerRepo)
	for _, seed := range seedCustomers {
		_, err := customerRepo.GetByEmail(ctx, seed.email)
		if err == nil {
			logger.Info("customer already seeded", slog.String("email", seed.email))
			continue
		}
		if !errors.Is(err, customerports.ErrNotFound) {
			log.Fatalf("failed to look up customer %s: %v", seed.email, err)
		}
		if _, err := customers.Register(ctx, seed.name, seed.email, seed.password); err != nil {
			log.Fatalf("failed to seed customer %s: %v", seed.email, err)
		}
		logger.Info("customer seeded", slog.String("email", seed.email))
	}

	productRepo := productpostgres.NewRepository(db)
	products := productapp.NewService(productRepo)
	existing, err := productRepo.List(ctx)
	if err != nil {
		log.Fatalf("failed to list products: %v", err)
	}
	byName := make(map[string]bool, len(existing))
	for _, product := range existing {
		byName[product.Name] = true
	}
	for _, seed := range seedProducts {
		if byName[seed.name] {
			logger.Info("product already seeded", slog.String("name", seed.name))
			continue
		}
		product := &productdomain.Product{
			Name:        seed.name,
			Description: seed.description,
			Price:       seed.price,
			Stock:       seed.stock,
		}
		if _, err := products.Create(ctx, product); err != nil {
			log.Fatalf("failed to seed product %s: %v", seed.name, err)
		}
		logger.Info("product seeded", slog.String("name", seed.name))
	}

	log.Printf("sample data seeding completed")
}
