package ports

import (
	"context"

	"github.com/Apurer/go-commerce-api-server/internal/domains/orders/domain"
)

// WorkflowOrchestrator starts the order creation workflow, durable or inline.
type WorkflowOrchestrator interface {
	CreateOrder(ctx context.Context, input OrderInput) (*domain.Order, error)
}
