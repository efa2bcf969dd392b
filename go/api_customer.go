package commerceserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	customerdomain "github.com/Apurer/go-commerce-api-server/internal/domains/customers/domain"
	customerports "github.com/Apurer/go-commerce-api-server/internal/domains/customers/ports"
)

// CustomerAPI wires HTTP transport with the customers bounded context service.
type CustomerAPI struct {
	service customerports.Service
}

// NewCustomerAPI creates a CustomerAPI backed by the provided service.
func NewCustomerAPI(service customerports.Service) CustomerAPI {
	return CustomerAPI{service: service}
}

func fromDomainCustomer(customer *customerdomain.Customer) Customer {
	return Customer{
		Id:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
	}
}

func fromDomainCustomerList(customers []*customerdomain.Customer) []Customer {
	result := make([]Customer, 0, len(customers))
	for _, customer := range customers {
		result = append(result, fromDomainCustomer(customer))
	}
	return result
}

// Get /api/v1/customers/list
// List all customers
func (api *CustomerAPI) ListCustomers(c *gin.Context) {
	customers, err := api.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainCustomerList(customers))
}

// Post /api/v1/customers/create
// Create a customer
func (api *CustomerAPI) CreateCustomer(c *gin.Context) {
	var payload Customer
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	saved, err := api.service.Register(c.Request.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainCustomer(saved))
}

// Get /api/v1/customers/:customerId
// Get customer by ID
func (api *CustomerAPI) GetCustomerById(c *gin.Context) {
	id, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}
	customer, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainCustomer(customer))
}

// Put /api/v1/customers/update/:customerId
// Update an existing customer
func (api *CustomerAPI) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}
	var payload Customer
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.service.Update(c.Request.Context(), id, payload.Name, payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainCustomer(updated))
}

// Delete /api/v1/customers/delete/:customerId
// Delete a customer
func (api *CustomerAPI) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	value := c.Param(name)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return id, true
}
