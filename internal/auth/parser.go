package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/courtcraft/estimates/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

// Parse validates an HS256 access token and returns the principal it names.
func (p *Parser) Parse(raw string) (model.Principal, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(
		strings.TrimSpace(raw),
		&claims,
		func(*jwt.Token) (interface{}, error) { return p.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return model.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.Principal{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.Principal{}, fmt.Errorf("%w: subject is not a uuid", ErrInvalidToken)
	}

	role := model.UserRole(strings.ToUpper(strings.TrimSpace(claims.Role)))
	switch role {
	case model.UserRoleAdmin, model.UserRoleEstimator, model.UserRoleViewer:
	default:
		return model.Principal{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return model.Principal{UserID: userID, Role: role}, nil
}

// Issue signs a token for the principal. Used by tooling and tests; the
// service itself only verifies tokens.
func (p *Parser) Issue(principal model.Principal, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = principal.UserID.String()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:             string(principal.Role),
		RegisteredClaims: claims,
	})
	return token.SignedString(p.secret)
}
