package errors

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Respond writes the envelope with its own status code.
func Respond(c *gin.Context, resp ErrorResponse) {
	c.JSON(resp.Status(), resp)
}

// ErrorMapper translates a domain or application error into an envelope.
// The boolean reports whether the mapper recognised the error.
type ErrorMapper func(err error) (ErrorResponse, bool)

// Responder turns errors into envelope responses by trying each mapper in
// order, falling back to a 500 for anything unrecognised.
type Responder struct {
	mappers []ErrorMapper
}

// NewResponder creates a responder with the given mapper chain.
func NewResponder(mappers ...ErrorMapper) *Responder {
	return &Responder{mappers: mappers}
}

// AddMapper appends a mapper to the chain.
func (r *Responder) AddMapper(mapper ErrorMapper) {
	r.mappers = append(r.mappers, mapper)
}

// RespondError maps err and writes the resulting envelope.
func (r *Responder) RespondError(c *gin.Context, err error) {
	for _, mapper := range r.mappers {
		if resp, ok := mapper(err); ok {
			Respond(c, resp)
			return
		}
	}
	var resp ErrorResponse
	if errors.As(err, &resp) {
		Respond(c, resp)
		return
	}
	Respond(c, Internal(err.Error()))
}
