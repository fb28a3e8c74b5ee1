package identity

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/medibook/backend-go/internal/config"
)

// jwtProvider verifies HMAC-signed provider tokens. The claim layout
// mirrors what the hosted identity service mints: sub carries the external
// user id, plans the active subscription plan names.
type jwtProvider struct {
	secret string
}

// NewJWTProvider creates a Provider backed by the shared token secret.
func NewJWTProvider(cfg *config.Config) Provider {
	return &jwtProvider{secret: cfg.JWTSecret}
}

func (p *jwtProvider) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(p.secret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}

	ident := &Identity{
		ExternalID: sub,
		Email:      stringClaim(claims, "email"),
		FirstName:  stringClaim(claims, "first_name"),
		LastName:   stringClaim(claims, "last_name"),
	}

	if raw, ok := claims["plans"].([]interface{}); ok {
		for _, v := range raw {
			if plan, ok := v.(string); ok {
				ident.Plans = append(ident.Plans, plan)
			}
		}
	}

	return ident, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
