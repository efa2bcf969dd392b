package domain

import "errors"

var (
	ErrMissingCustomer = errors.New("order requires a customer reference")
	ErrNoProducts      = errors.New("order requires at least one product reference")
)

// Order models a placed purchase. ProductIDs is the bound list of resolved
// product references, duplicates preserved. TotalAmount is derived during
// resolution and never client-supplied; it is not recomputed when product
// prices later change.
type Order struct {
	ID          int64
	CustomerID  int64
	ProductIDs  []int64
	TotalAmount float64
}

// NewOrder binds a resolved customer and product set with the derived total.
func NewOrder(id, customerID int64, productIDs []int64, totalAmount float64) (*Order, error) {
	order := &Order{
		ID:          id,
		CustomerID:  customerID,
		ProductIDs:  append([]int64(nil), productIDs...),
		TotalAmount: totalAmount,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Rebind replaces the customer and product bindings and total in full;
// partial rebinding is not supported.
func (o *Order) Rebind(customerID int64, productIDs []int64, totalAmount float64) error {
	rebound := Order{
		ID:          o.ID,
		CustomerID:  customerID,
		ProductIDs:  append([]int64(nil), productIDs...),
		TotalAmount: totalAmount,
	}
	if err := rebound.Validate(); err != nil {
		return err
	}
	*o = rebound
	return nil
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if o.CustomerID <= 0 {
		return ErrMissingCustomer
	}
	if len(o.ProductIDs) == 0 {
		return ErrNoProducts
	}
	return nil
}
