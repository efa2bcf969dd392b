package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-commerce-api-server/internal/domains/orders/domain"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid order input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrMissingCustomer) ||
		errors.Is(err, domain.ErrNoProducts) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
