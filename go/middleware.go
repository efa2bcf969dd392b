package commerceserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authports "github.com/Apurer/go-commerce-api-server/internal/domains/auth/ports"
)

const (
	// SubjectContextKey is the gin context key under which the bearer
	// middleware stores the authenticated subject.
	SubjectContextKey = "auth.subject"

	requestIDHeader = "X-Request-Id"
)

// RequestID assigns a request identifier, preserving one supplied by the
// client, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// BearerAuth rejects requests without a valid bearer token. The validated
// subject is stored on the context for downstream handlers.
func BearerAuth(tokens authports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			respondError(c, http.StatusUnauthorized, errors.New("missing bearer token"))
			c.Abort()
			return
		}
		subject, err := tokens.Validate(strings.TrimPrefix(header, prefix))
		if err != nil {
			respondServiceError(c, err)
			c.Abort()
			return
		}
		c.Set(SubjectContextKey, subject)
		c.Next()
	}
}
