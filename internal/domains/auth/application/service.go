package application

import (
	"context"
	"errors"
	"strings"

	"github.com/Apurer/go-commerce-api-server/internal/domains/auth/domain"
	"github.com/Apurer/go-commerce-api-server/internal/domains/auth/ports"
	customerports "github.com/Apurer/go-commerce-api-server/internal/domains/customers/ports"
)

// Service implements password authentication and token issuance over the
// customers store.
type Service struct {
	credentials ports.CredentialSource
	tokens      ports.TokenService
}

func NewService(credentials ports.CredentialSource, tokens ports.TokenService) *Service {
	return &Service{credentials: credentials, tokens: tokens}
}

// Authenticate checks the submitted email/password pair against the stored
// verifier. Unknown emails and wrong passwords fail identically.
func (s *Service) Authenticate(ctx context.Context, email, password string) (domain.Subject, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.Subject{}, ports.ErrInvalidCredentials
	}
	customer, err := s.credentials.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, customerports.ErrNotFound) {
			return domain.Subject{}, ports.ErrInvalidCredentials
		}
		return domain.Subject{}, err
	}
	if !customer.CheckPassword(password) {
		return domain.Subject{}, ports.ErrInvalidCredentials
	}
	return domain.NewSubject(customer.Email), nil
}

// Login authenticates and issues a bearer token for the subject.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	subject, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(subject)
}

var _ ports.Service = (*Service)(nil)
