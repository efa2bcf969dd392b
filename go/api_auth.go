package commerceserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authports "github.com/Apurer/go-commerce-api-server/internal/domains/auth/ports"
	customerports "github.com/Apurer/go-commerce-api-server/internal/domains/customers/ports"
)

// AuthAPI exposes the public registration and login endpoints.
type AuthAPI struct {
	auth      authports.Service
	customers customerports.Service
}

// NewAuthAPI wires dependencies.
func NewAuthAPI(auth authports.Service, customers customerports.Service) AuthAPI {
	return AuthAPI{auth: auth, customers: customers}
}

// Post /api/v1/customers/login
// Exchange credentials for a bearer token
func (api *AuthAPI) Login(c *gin.Context) {
	var payload LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	token, err := api.auth.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// Post /api/v1/customers/register
// Self-register a customer account
func (api *AuthAPI) Register(c *gin.Context) {
	var payload RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	saved, err := api.customers.Register(c.Request.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromDomainCustomer(saved))
}
