// Package contract holds the JSON shapes of the HTTP API and their mapping
// from domain and use-case types.
package contract

import (
	"time"

	"github.com/alexanderramin/founderpulse/internal/app"
)

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error string        `json:"error"`
	Code  app.ErrorKind `json:"code"`
	Field string        `json:"field,omitempty"`
}

// timestamp renders t in UTC RFC 3339, or nil for the zero time.
func timestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
