package commerceserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authports "github.com/Apurer/go-commerce-api-server/internal/domains/auth/ports"
)

// Route binds an HTTP method and path to a handler. Public routes bypass
// bearer authentication.
type Route struct {
	Method      string
	Pattern     string
	Public      bool
	HandlerFunc gin.HandlerFunc
}

// Routes is the list of the server's routes.
type Routes []Route

// ApiHandleFunctions groups the per-section API implementations.
type ApiHandleFunctions struct {
	AuthAPI     AuthAPI
	CustomerAPI CustomerAPI
	ProductAPI  ProductAPI
	OrderAPI    OrderAPI
}

// NewRouter returns a new router with all routes registered.
func NewRouter(handleFunctions ApiHandleFunctions, tokens authports.TokenService) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions, tokens)
}

// NewRouterWithGinEngine registers all routes on an existing gin engine.
// Every route except the public ones goes through bearer authentication.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions, tokens authports.TokenService) *gin.Engine {
	router.Use(RequestID())
	auth := BearerAuth(tokens)
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandleFunc
		}
		handlers := []gin.HandlerFunc{route.HandlerFunc}
		if !route.Public {
			handlers = append([]gin.HandlerFunc{auth}, handlers...)
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, handlers...)
		case http.MethodPost:
			router.POST(route.Pattern, handlers...)
		case http.MethodPut:
			router.PUT(route.Pattern, handlers...)
		case http.MethodDelete:
			router.DELETE(route.Pattern, handlers...)
		}
	}
	return router
}

func defaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		{http.MethodPost, "/api/v1/customers/register", true, handleFunctions.AuthAPI.Register},
		{http.MethodPost, "/api/v1/customers/login", true, handleFunctions.AuthAPI.Login},

		{http.MethodGet, "/api/v1/customers/list", false, handleFunctions.CustomerAPI.ListCustomers},
		{http.MethodPost, "/api/v1/customers/create", false, handleFunctions.CustomerAPI.CreateCustomer},
		{http.MethodGet, "/api/v1/customers/:customerId", false, handleFunctions.CustomerAPI.GetCustomerById},
		{http.MethodPut, "/api/v1/customers/update/:customerId", false, handleFunctions.CustomerAPI.UpdateCustomer},
		{http.MethodDelete, "/api/v1/customers/delete/:customerId", false, handleFunctions.CustomerAPI.DeleteCustomer},

		{http.MethodGet, "/api/v1/products/list", false, handleFunctions.ProductAPI.ListProducts},
		{http.MethodPost, "/api/v1/products/create", false, handleFunctions.ProductAPI.CreateProduct},
		{http.MethodGet, "/api/v1/products/:productId", false, handleFunctions.ProductAPI.GetProductById},
		{http.MethodPut, "/api/v1/products/update/:productId", false, handleFunctions.ProductAPI.UpdateProduct},
		{http.MethodDelete, "/api/v1/products/delete/:productId", false, handleFunctions.ProductAPI.DeleteProduct},

		{http.MethodGet, "/api/v1/orders/list", false, handleFunctions.OrderAPI.ListOrders},
		{http.MethodPost, "/api/v1/orders/create", false, handleFunctions.OrderAPI.CreateOrder},
		{http.MethodGet, "/api/v1/orders/:orderId", false, handleFunctions.OrderAPI.GetOrderById},
		{http.MethodPut, "/api/v1/orders/update/:orderId", false, handleFunctions.OrderAPI.UpdateOrder},
		{http.MethodDelete, "/api/v1/orders/delete/:orderId", false, handleFunctions.OrderAPI.DeleteOrder},
	}
}
