//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/go-commerce-api-server/internal/domains/customers/domain"
	"github.com/Apurer/go-commerce-api-server/internal/domains/customers/ports"
	"github.com/Apurer/go-commerce-api-server/internal/platform/migrations"
)

func setupCustomersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("commerce_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func TestRepository_SaveAndGetByEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCustomersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	customer, err := domain.NewCustomer(0, "Customer1", "customer1@example.com", "password")
	require.NoError(t, err)

	saved, err := repo.Save(ctx, customer)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "Customer1", saved.Name)

	fetched, err := repo.GetByEmail(ctx, "customer1@example.com")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, fetched.ID)
	assert.True(t, fetched.CheckPassword("password"))
}

func TestRepository_SaveRejectsDuplicateEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCustomersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	first, err := domain.NewCustomer(0, "Customer1", "customer1@example.com", "password")
	require.NoError(t, err)
	_, err = repo.Save(ctx, first)
	require.NoError(t, err)

	second, err := domain.NewCustomer(0, "Customer2", "customer1@example.com", "password")
	require.NoError(t, err)
	_, err = repo.Save(ctx, second)
	assert.ErrorIs(t, err, ports.ErrEmailTaken)
}

func TestRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCustomersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	customer, err := domain.NewCustomer(0, "Customer1", "customer1@example.com", "password")
	require.NoError(t, err)
	saved, err := repo.Save(ctx, customer)
	require.NoError(t, err)

	require.NoError(t, saved.SetName("Renamed"))
	require.NoError(t, saved.SetEmail("renamed@example.com"))

	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, "renamed@example.com", updated.Email)
}

func TestRepository_ListAndDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCustomersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		email := fmt.Sprintf("customer%d@example.com", i)
		customer, err := domain.NewCustomer(0, fmt.Sprintf("Customer%d", i), email, "password")
		require.NoError(t, err)
		_, err = repo.Save(ctx, customer)
		require.NoError(t, err)
	}

	customers, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 3)

	target := customers[1].ID
	err = repo.Delete(ctx, target)
	require.NoError(t, err)
	_, err = repo.GetByID(ctx, target)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	err = repo.Delete(ctx, target)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
