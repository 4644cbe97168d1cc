package auth

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/practice-exam-service/internal/config"
	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
)

type casdoorTokenParser interface {
	ParseJwtToken(token string) (*casdoorsdk.Claims, error)
}

// CasdoorVerifier validates tokens issued by a Casdoor deployment against
// its certificate.
type CasdoorVerifier struct {
	parser casdoorTokenParser
}

func NewCasdoorVerifier(cfg config.AuthConfig) *CasdoorVerifier {
	client := casdoorsdk.NewClient(
		cfg.CasdoorEndpoint,
		cfg.CasdoorClientID,
		cfg.CasdoorClientSecret,
		cfg.CasdoorCertificate,
		cfg.CasdoorOrganization,
		cfg.CasdoorApplication,
	)
	return &CasdoorVerifier{parser: client}
}

func (v *CasdoorVerifier) Verify(_ context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	claims, err := v.parser.ParseJwtToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Id == "" {
		return nil, ErrInvalidToken
	}

	return &User{ID: claims.Id, Email: claims.Email}, nil
}
