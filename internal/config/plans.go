package config

// Plan identifies a subscription plan as named at the billing provider.
// The provider is the source of truth for membership; these constants are
// only the keys this service asks about.
type Plan string

const (
	PlanBasic Plan = "basic"
	PlanPro   Plan = "pro"
)

// PlanInfo describes one pricing tier for the public pricing view.
type PlanInfo struct {
	Plan         Plan     `json:"plan"`
	DisplayName  string   `json:"display_name"`
	MonthlyPrice int64    `json:"monthly_price_cents"`
	Features     []string `json:"features"`
}

// PricingPlans is the tier list rendered by the pricing page. Billing
// itself (checkout, subscription state) lives entirely at the provider.
var PricingPlans = []PlanInfo{
	{
		Plan:         PlanBasic,
		DisplayName:  "Basic",
		MonthlyPrice: 900,
		Features: []string{
			"Book appointments with any active doctor",
			"Appointment history and stats",
			"Email reminders",
		},
	},
	{
		Plan:         PlanPro,
		DisplayName:  "Pro",
		MonthlyPrice: 2900,
		Features: []string{
			"Everything in Basic",
			"Priority booking slots",
			"Voice consultation notes",
			"Dedicated support",
		},
	},
}
