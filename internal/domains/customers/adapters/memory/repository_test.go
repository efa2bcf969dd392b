package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-commerce-api-server/internal/domains/customers/domain"
	"github.com/Apurer/go-commerce-api-server/internal/domains/customers/ports"
)

func TestSaveRejectsDuplicateEmail(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	first, err := domain.NewCustomer(0, "Customer1", "customer1@example.com", "password")
	require.NoError(t, err)
	saved, err := repo.Save(ctx, first)
	require.NoError(t, err)

	second, err := domain.NewCustomer(0, "Customer2", "customer1@example.com", "password")
	require.NoError(t, err)
	_, err = repo.Save(ctx, second)
	assert.ErrorIs(t, err, ports.ErrEmailTaken)

	// Re-saving the owner under the same address stays legal.
	require.NoError(t, saved.SetName("Renamed"))
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestGetByEmailMatchesCaseInsensitively(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	customer, err := domain.NewCustomer(0, "Customer1", "customer1@example.com", "password")
	require.NoError(t, err)
	saved, err := repo.Save(ctx, customer)
	require.NoError(t, err)

	found, err := repo.GetByEmail(ctx, "CUSTOMER1@example.com")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
