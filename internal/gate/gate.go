// Package gate holds the page authorization checks. Each check is a pure
// function over the resolved identity returning a tagged decision; the
// HTTP layer is the one that acts on it (redirect or render).
package gate

import (
	"github.com/medibook/backend-go/internal/config"
	"github.com/medibook/backend-go/internal/identity"
)

// Redirect targets used by denied decisions.
const (
	RedirectHome      = "/"
	RedirectDashboard = "/dashboard"
)

// Decision is the outcome of a page authorization check.
type Decision struct {
	Allowed    bool
	RedirectTo string // set only when denied
	Reason     string // set only when denied
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(redirectTo, reason string) Decision {
	return Decision{RedirectTo: redirectTo, Reason: reason}
}

// ProAccess reports the caller's subscription-plan memberships for the
// pricing view. HasProAccess is informational: the pricing page renders
// for everyone regardless.
type ProAccess struct {
	HasBasic     bool `json:"has_basic"`
	HasPro       bool `json:"has_pro"`
	HasProAccess bool `json:"has_pro_access"`
}

// CheckAdmin gates the admin view. Unauthenticated callers go back to the
// landing page; authenticated callers whose email does not match the
// configured admin email go to the general dashboard.
func CheckAdmin(ident *identity.Identity, adminEmail string) Decision {
	if ident == nil {
		return deny(RedirectHome, "not authenticated")
	}
	if adminEmail == "" || ident.Email != adminEmail {
		return deny(RedirectDashboard, "not the admin")
	}
	return allow()
}

// CheckDashboard gates the patient dashboard: any authenticated identity
// is allowed.
func CheckDashboard(ident *identity.Identity) Decision {
	if ident == nil {
		return deny(RedirectHome, "not authenticated")
	}
	return allow()
}

// CheckPro gates the pricing/upgrade view and reports plan membership.
// The view itself renders for every authenticated caller.
func CheckPro(ident *identity.Identity) (Decision, ProAccess) {
	if ident == nil {
		return deny(RedirectHome, "not authenticated"), ProAccess{}
	}

	access := ProAccess{
		HasBasic: ident.HasPlan(string(config.PlanBasic)),
		HasPro:   ident.HasPlan(string(config.PlanPro)),
	}
	access.HasProAccess = access.HasBasic || access.HasPro

	return allow(), access
}
