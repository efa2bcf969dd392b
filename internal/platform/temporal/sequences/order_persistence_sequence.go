package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	orderdomain "github.com/Apurer/go-commerce-api-server/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-commerce-api-server/internal/domains/orders/ports"
	orderactivities "github.com/Apurer/go-commerce-api-server/internal/platform/temporal/activities/orders"
)

// RunOrderPersistenceSequence executes the ordered set of activities needed
// to resolve and persist an order aggregate.
func RunOrderPersistenceSequence(ctx workflow.Context, input orderports.OrderInput) (*orderdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order persistence sequence started", "customerId", input.CustomerID)
	persistOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
			// Resolution failures are terminal for the request; only the
			// store write is worth retrying.
			NonRetryableErrorTypes: []string{
				orderactivities.CustomerNotFoundErrorType,
				orderactivities.ProductsNotFoundErrorType,
			},
		},
	}

	var order orderdomain.Order
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, persistOptions), orderactivities.PersistOrderActivityName, input).Get(ctx, &order)
	if err != nil {
		logger.Error("order persistence sequence failed", "customerId", input.CustomerID, "error", err)
		return nil, err
	}
	logger.Info("order persistence sequence persisted", "orderId", order.ID)
	return &order, nil
}
