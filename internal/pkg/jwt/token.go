package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v4"

	"github.com/colisgo/colisgo/internal/pkg/models"
)

// Claims are the fields the external identity service puts in its tokens.
// PrincipalKind is "user" or "driver"; IsVerified reflects email verification.
type Claims struct {
	PrincipalID   string `json:"principal_id"`
	PrincipalKind string `json:"principal_kind"`
	IsVerified    bool   `json:"is_verified"`
	jwt.RegisteredClaims
}

// ValidateToken parses and verifies a bearer token and returns its claims
func ValidateToken(tokenString string, cfg models.JWTConfig) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
		return nil, fmt.Errorf("unexpected token issuer")
	}
	return claims, nil
}
