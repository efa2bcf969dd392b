package commerceserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	orderdomain "github.com/Apurer/go-commerce-api-server/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-commerce-api-server/internal/domains/orders/ports"
)

// OrderAPI wires HTTP transport with the orders bounded context service and
// workflows.
type OrderAPI struct {
	service   orderports.Service
	workflows orderports.WorkflowOrchestrator
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service orderports.Service, workflows orderports.WorkflowOrchestrator) OrderAPI {
	return OrderAPI{service: service, workflows: workflows}
}

func fromDomainOrder(order *orderdomain.Order) Order {
	ids := make([]int64, len(order.ProductIDs))
	copy(ids, order.ProductIDs)
	return Order{
		Id:          order.ID,
		CustomerId:  order.CustomerID,
		ProductIds:  ids,
		TotalAmount: order.TotalAmount,
	}
}

func fromDomainOrderList(orders []*orderdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, fromDomainOrder(order))
	}
	return result
}

// Get /api/v1/orders/list
// List all orders
func (api *OrderAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainOrderList(orders))
}

// Post /api/v1/orders/create
// Place a new order
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := orderports.OrderInput{CustomerID: payload.CustomerId, ProductIDs: payload.ProductIds}
	saved, err := api.createOrder(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fromDomainOrder(saved))
}

func (api *OrderAPI) createOrder(ctx context.Context, input orderports.OrderInput) (*orderdomain.Order, error) {
	if api.workflows != nil {
		return api.workflows.CreateOrder(ctx, input)
	}
	return api.service.CreateOrder(ctx, input)
}

// Get /api/v1/orders/:orderId
// Get order by ID
func (api *OrderAPI) GetOrderById(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainOrder(order))
}

// Put /api/v1/orders/update/:orderId
// Replace an existing order
func (api *OrderAPI) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	var payload OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	input := orderports.OrderInput{CustomerID: payload.CustomerId, ProductIDs: payload.ProductIds}
	updated, err := api.service.UpdateOrder(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainOrder(updated))
}

// Delete /api/v1/orders/delete/:orderId
// Cancel an order
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	if err := api.service.DeleteOrder(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
