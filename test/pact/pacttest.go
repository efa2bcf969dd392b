//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	jwtadapter "github.com/Apurer/go-commerce-api-server/internal/domains/auth/adapters/jwt"
	authdomain "github.com/Apurer/go-commerce-api-server/internal/domains/auth/domain"
)

const (
	ProviderName = "commerce-api"
	ConsumerName = "storefront"

	StateBaseline      = "catalog and customers baseline"
	StateCustomerReady = "customer pact.customer@example.com exists"
	StateOrderExists   = "order with id 301 exists"
	StateOrderMissing  = "no order with id 999"
)

const (
	ExistingCustomerID int64 = 1
	ExistingProductID  int64 = 11
	SecondProductID    int64 = 12
	ExistingOrderID    int64 = 301
	MissingOrderID     int64 = 999

	CustomerName     = "Pact Customer"
	CustomerEmail    = "pact.customer@example.com"
	CustomerPassword = "pact-pass"
)

// SigningSecret is shared between the consumer and provider suites so the
// example bearer token recorded in the contract verifies on replay.
const SigningSecret = "pact-signing-secret"

// BearerToken issues a long-lived token for the pact customer.
func BearerToken(t testing.TB) string {
	t.Helper()
	tokens, err := jwtadapter.NewTokenService([]byte(SigningSecret), 24*365*time.Hour)
	if err != nil {
		t.Fatalf("build token service: %v", err)
	}
	token, err := tokens.Issue(authdomain.NewSubject(CustomerEmail))
	if err != nil {
		t.Fatalf("issue pact token: %v", err)
	}
	return token
}

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the storefront consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleOrderRequest provides stable test data for order interactions.
func ExampleOrderRequest() map[string]any {
	return map[string]any{
		"customerId": ExistingCustomerID,
		"productIds": []int64{ExistingProductID, SecondProductID},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
