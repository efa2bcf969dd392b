package commerceserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authports "github.com/Apurer/go-commerce-api-server/internal/domains/auth/ports"
	customerapp "github.com/Apurer/go-commerce-api-server/internal/domains/customers/application"
	customerports "github.com/Apurer/go-commerce-api-server/internal/domains/customers/ports"
	orderapp "github.com/Apurer/go-commerce-api-server/internal/domains/orders/application"
	orderports "github.com/Apurer/go-commerce-api-server/internal/domains/orders/ports"
	productapp "github.com/Apurer/go-commerce-api-server/internal/domains/products/application"
	productports "github.com/Apurer/go-commerce-api-server/internal/domains/products/ports"
	apierrors "github.com/Apurer/go-commerce-api-server/internal/shared/errors"
)

// serviceErrors maps service errors onto envelope responses, one mapper per
// bounded context. Errors no mapper recognises become a 500.
var serviceErrors = apierrors.NewResponder(
	mapAuthError,
	mapCustomerError,
	mapProductError,
	mapOrderError,
)

// respondError writes the shared error envelope for the given status.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	apierrors.Respond(c, apierrors.New(status, err.Error()))
}

// respondServiceError translates a service error through the mapper chain.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	serviceErrors.RespondError(c, err)
}

func mapAuthError(err error) (apierrors.ErrorResponse, bool) {
	if errors.Is(err, authports.ErrInvalidCredentials) || errors.Is(err, authports.ErrInvalidToken) {
		return apierrors.Unauthorized(err.Error()), true
	}
	return apierrors.ErrorResponse{}, false
}

func mapCustomerError(err error) (apierrors.ErrorResponse, bool) {
	switch {
	case errors.Is(err, customerports.ErrNotFound):
		return apierrors.NotFound(err.Error()), true
	case errors.Is(err, customerports.ErrEmailTaken):
		return apierrors.New(http.StatusConflict, err.Error()), true
	case errors.Is(err, customerapp.ErrInvalidInput):
		return apierrors.BadRequest(err.Error()), true
	}
	return apierrors.ErrorResponse{}, false
}

func mapProductError(err error) (apierrors.ErrorResponse, bool) {
	switch {
	case errors.Is(err, productports.ErrNotFound):
		return apierrors.NotFound(err.Error()), true
	case errors.Is(err, productapp.ErrInvalidInput):
		return apierrors.BadRequest(err.Error()), true
	}
	return apierrors.ErrorResponse{}, false
}

func mapOrderError(err error) (apierrors.ErrorResponse, bool) {
	switch {
	case errors.Is(err, orderports.ErrNotFound),
		errors.Is(err, orderports.ErrCustomerNotFound),
		errors.Is(err, orderports.ErrProductsNotFound):
		return apierrors.NotFound(err.Error()), true
	case errors.Is(err, orderapp.ErrInvalidInput):
		return apierrors.BadRequest(err.Error()), true
	}
	return apierrors.ErrorResponse{}, false
}
