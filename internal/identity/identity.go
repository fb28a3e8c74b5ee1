// Package identity is the boundary to the external identity and billing
// provider. The provider owns sessions, tokens and subscription state;
// this service only verifies the signed token it is handed and reads the
// claims out of it.
package identity

import (
	"errors"
	"strings"
)

// Identity is the authenticated caller as asserted by the provider.
type Identity struct {
	ExternalID string   `json:"external_id"`
	Email      string   `json:"email"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Plans      []string `json:"plans"`
}

// FullName returns "First Last" trimmed of surrounding whitespace.
func (i *Identity) FullName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// HasPlan reports whether the provider asserted membership of the named
// subscription plan for this identity.
func (i *Identity) HasPlan(plan string) bool {
	for _, p := range i.Plans {
		if p == plan {
			return true
		}
	}
	return false
}

// Provider resolves a bearer token into an Identity.
type Provider interface {
	Verify(tokenString string) (*Identity, error)
}

// Provider errors
var (
	ErrInvalidToken = errors.New("invalid or expired identity token")
)
