package ports

import (
	"context"

	customerdomain "github.com/Apurer/go-commerce-api-server/internal/domains/customers/domain"
	productdomain "github.com/Apurer/go-commerce-api-server/internal/domains/products/domain"
)

// CustomerSource is the narrow read surface order resolution needs from the
// customers context. The customers repository satisfies it.
type CustomerSource interface {
	GetByID(ctx context.Context, id int64) (*customerdomain.Customer, error)
}

// ProductSource is the narrow read surface order resolution needs from the
// products context. GetByIDs must silently omit unresolvable ids. The
// products repository satisfies it.
type ProductSource interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*productdomain.Product, error)
}
