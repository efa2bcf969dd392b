package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/Apurer/go-commerce-api-server/internal/domains/customers/domain"
	"github.com/Apurer/go-commerce-api-server/internal/domains/customers/ports"
)

// Service exposes customer bounded context use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a customer, hashing the supplied password into the
// stored verifier.
func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.Customer, error) {
	customer, err := domain.NewCustomer(0, name, email, password)
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.ensureEmailFree(ctx, customer.Email, 0); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, customer)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundWithID(err, id)
	}
	return customer, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.List(ctx)
}

// Update replaces the customer's profile. The id is preserved; name, email
// and password are all taken from the request.
func (s *Service) Update(ctx context.Context, id int64, name, email, password string) (*domain.Customer, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundWithID(err, id)
	}
	if err := existing.SetName(name); err != nil {
		return nil, mapError(err)
	}
	if err := existing.SetEmail(email); err != nil {
		return nil, mapError(err)
	}
	if err := existing.SetPassword(password); err != nil {
		return nil, mapError(err)
	}
	if err := s.ensureEmailFree(ctx, existing.Email, id); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, existing)
}

// ensureEmailFree enforces email uniqueness: the address must be unclaimed
// or already owned by the customer identified by ownerID.
func (s *Service) ensureEmailFree(ctx context.Context, email string, ownerID int64) error {
	existing, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ports.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != ownerID {
		return fmt.Errorf("%w: %s", ports.ErrEmailTaken, email)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundWithID(err, id)
	}
	return nil
}

func notFoundWithID(err error, id int64) error {
	if errors.Is(err, ports.ErrNotFound) {
		return fmt.Errorf("%w with id: %d", ports.ErrNotFound, id)
	}
	return err
}

var _ ports.Service = (*Service)(nil)
