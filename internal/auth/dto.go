package auth

import (
	"strings"

	"github.com/frahmantamala/crms/internal"
)

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks required fields.
func (d LoginDTO) Validate() error {
	if strings.TrimSpace(d.Username) == "" {
		return internal.NewValidationError("username is required", internal.ErrCodeMissingFields)
	}
	if d.Password == "" {
		return internal.NewValidationError("password is required", internal.ErrCodeMissingFields)
	}
	return nil
}
