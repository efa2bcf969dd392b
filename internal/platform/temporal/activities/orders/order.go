package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	orderdomain "github.com/Apurer/go-commerce-api-server/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-commerce-api-server/internal/domains/orders/ports"
)

const (
	// PersistOrderActivityName resolves references and persists an order aggregate.
	PersistOrderActivityName = "orders.activities.PersistOrder"

	// Application error types surfaced as non-retryable to the workflow.
	CustomerNotFoundErrorType = "CustomerNotFound"
	ProductsNotFoundErrorType = "ProductsNotFound"
)

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service orderports.Service
}

// NewActivities wires the order service into the Temporal activities bundle.
func NewActivities(service orderports.Service) *Activities {
	return &Activities{service: service}
}

// PersistOrder runs the order resolution and stores the aggregate.
func (a *Activities) PersistOrder(ctx context.Context, input orderports.OrderInput) (*orderdomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("order persist activity not initialized", "customerId", input.CustomerID)
		return nil, errors.New("order persist activity not initialized")
	}
	logger.Info("PersistOrder activity started", "customerId", input.CustomerID)
	order, err := a.service.CreateOrder(ctx, input)
	if err != nil {
		logger.Error("PersistOrder activity failed", "customerId", input.CustomerID, "error", err)
		return nil, asApplicationError(err)
	}
	logger.Info("PersistOrder activity completed", "orderId", order.ID)
	return order, nil
}

// asApplicationError tags resolution failures with typed, non-retryable
// application errors so the workflow does not retry terminal requests.
func asApplicationError(err error) error {
	switch {
	case errors.Is(err, orderports.ErrCustomerNotFound):
		return temporal.NewNonRetryableApplicationError(err.Error(), CustomerNotFoundErrorType, err)
	case errors.Is(err, orderports.ErrProductsNotFound):
		return temporal.NewNonRetryableApplicationError(err.Error(), ProductsNotFoundErrorType, err)
	default:
		return err
	}
}
