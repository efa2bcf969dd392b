package domain

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName     = errors.New("name is required")
	ErrInvalidEmail  = errors.New("email must contain '@'")
	ErrEmptyPassword = errors.New("password is required")
)

// Customer represents a registered shop customer. PasswordHash holds the
// bcrypt verifier, never the plaintext secret.
type Customer struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
}

// NewCustomer builds a customer ensuring required invariants, hashing the
// supplied plaintext password.
func NewCustomer(id int64, name, email, password string) (*Customer, error) {
	customer := &Customer{ID: id}
	if err := customer.SetName(name); err != nil {
		return nil, err
	}
	if err := customer.SetEmail(email); err != nil {
		return nil, err
	}
	if err := customer.SetPassword(password); err != nil {
		return nil, err
	}
	return customer, nil
}

// SetName trims and validates the display name.
func (c *Customer) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	return nil
}

// SetEmail trims and validates the login identifier.
func (c *Customer) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	c.Email = email
	return nil
}

// SetPassword hashes the plaintext password into the stored verifier.
func (c *Customer) SetPassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares the stored verifier against the supplied secret.
// bcrypt performs the comparison in constant time.
func (c *Customer) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
}

// Validate re-applies core invariants for persistence.
func (c *Customer) Validate() error {
	if err := c.SetName(c.Name); err != nil {
		return err
	}
	if err := c.SetEmail(c.Email); err != nil {
		return err
	}
	if c.PasswordHash == "" {
		return ErrEmptyPassword
	}
	return nil
}
