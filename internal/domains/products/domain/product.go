package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName     = errors.New("product name is required")
	ErrNegativePrice = errors.New("price must not be negative")
	ErrNegativeStock = errors.New("stock must not be negative")
)

// Product models a catalog item. Stock is a stored field only; order
// creation never decrements it.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Stock       int32
}

// NewProduct validates and constructs a product.
func NewProduct(id int64, name, description string, price float64, stock int32) (*Product, error) {
	product := &Product{ID: id, Description: strings.TrimSpace(description)}
	if err := product.SetName(name); err != nil {
		return nil, err
	}
	if err := product.SetPrice(price); err != nil {
		return nil, err
	}
	if err := product.SetStock(stock); err != nil {
		return nil, err
	}
	return product, nil
}

// SetName trims and validates the product name.
func (p *Product) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// SetPrice rejects negative unit prices.
func (p *Product) SetPrice(price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	p.Price = price
	return nil
}

// SetStock rejects negative stock quantities.
func (p *Product) SetStock(stock int32) error {
	if stock < 0 {
		return ErrNegativeStock
	}
	p.Stock = stock
	return nil
}

// Validate re-applies core invariants for persistence.
func (p *Product) Validate() error {
	if err := p.SetName(p.Name); err != nil {
		return err
	}
	if err := p.SetPrice(p.Price); err != nil {
		return err
	}
	return p.SetStock(p.Stock)
}
