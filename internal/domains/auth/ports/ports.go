package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-commerce-api-server/internal/domains/auth/domain"
	customerdomain "github.com/Apurer/go-commerce-api-server/internal/domains/customers/domain"
)

var (
	// ErrInvalidCredentials covers both unknown identifiers and wrong
	// secrets; callers cannot distinguish the two.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrInvalidToken covers malformed, badly signed and expired tokens as
	// a single kind; callers must not assume these are distinguishable.
	ErrInvalidToken = errors.New("invalid token")
)

// CredentialSource is the read surface the verifier needs from the
// customers context. The customers repository satisfies it.
type CredentialSource interface {
	GetByEmail(ctx context.Context, email string) (*customerdomain.Customer, error)
}

// TokenService issues and validates self-contained signed bearer tokens.
// The server holds no session state.
type TokenService interface {
	Issue(subject domain.Subject) (string, error)
	Validate(token string) (domain.Subject, error)
}

// Service exposes the authentication use cases to adapters.
type Service interface {
	Authenticate(ctx context.Context, email, password string) (domain.Subject, error)
	Login(ctx context.Context, email, password string) (string, error)
}
