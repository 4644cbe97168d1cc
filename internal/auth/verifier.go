package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/SAP-F-2025/practice-exam-service/internal/config"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// User is the authenticated caller resolved from request credentials.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verifier resolves a bearer token into a User.
type Verifier interface {
	Verify(ctx context.Context, token string) (*User, error)
}

// NewVerifier builds the verifier selected by cfg.Provider.
func NewVerifier(cfg config.AuthConfig) (Verifier, error) {
	switch cfg.Provider {
	case "jwt":
		return NewJWTVerifier(cfg.JWTSecret, cfg.JWTAudience), nil
	case "casdoor":
		return NewCasdoorVerifier(cfg), nil
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.Provider)
	}
}
