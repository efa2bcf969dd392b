package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-commerce-api-server/internal/domains/products/domain"
	"github.com/Apurer/go-commerce-api-server/internal/domains/products/ports"
)

func seedRepo(t *testing.T) *Repository {
	t.Helper()
	repo := NewRepository()
	ctx := context.Background()
	for _, p := range []*domain.Product{
		{Name: "Product1", Price: 100.0, Stock: 10},
		{Name: "Product2", Price: 200.0, Stock: 20},
	} {
		_, err := repo.Save(ctx, p)
		require.NoError(t, err)
	}
	return repo
}

func TestGetByIDs_OmitsUnknownIDs(t *testing.T) {
	repo := seedRepo(t)

	resolved, err := repo.GetByIDs(context.Background(), []int64{1, 99})
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	require.Equal(t, int64(1), resolved[0].ID)
}

func TestGetByIDs_DistinctIDsOnce(t *testing.T) {
	repo := seedRepo(t)

	resolved, err := repo.GetByIDs(context.Background(), []int64{1, 1, 2, 2, 1})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
}

func TestGetByIDs_NoneResolve(t *testing.T) {
	repo := seedRepo(t)

	resolved, err := repo.GetByIDs(context.Background(), []int64{98, 99})
	require.NoError(t, err)
	require.Empty(t, resolved)
}

func TestSave_PreservesExplicitID(t *testing.T) {
	repo := NewRepository()

	saved, err := repo.Save(context.Background(), &domain.Product{ID: 50, Name: "ProductX", Price: 10.0})
	require.NoError(t, err)
	require.Equal(t, int64(50), saved.ID)

	next, err := repo.Save(context.Background(), &domain.Product{Name: "ProductY", Price: 20.0})
	require.NoError(t, err)
	require.Equal(t, int64(51), next.ID)
}

func TestDelete_UnknownID(t *testing.T) {
	repo := seedRepo(t)

	err := repo.Delete(context.Background(), 99)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
