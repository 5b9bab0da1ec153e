package entities

// SlugConfig is the tenant/funnel configuration resolved at the start of a
// funnel session.
//
// Storage model (DynamoDB):
//   - PK: slug
//   - SK: plan_code ("-" when the tenant has a single plan)
//
// Monetary representation:
//   - Amount is the plan price in BRL. Zero is the promotional sentinel:
//     registration skips the payment step entirely.
type SlugConfig struct {
	Slug               string  `json:"slug"`
	PlanCode           string  `json:"plan_code,omitempty"`
	RecipientName      string  `json:"recipient_name"`
	ProductDescription string  `json:"product_description"`
	Amount             float64 `json:"amount"`
	RedirectURL        string  `json:"redirect_url,omitempty"`
}

// IsPromotional reports whether the plan is free and payment must be skipped.
func (c SlugConfig) IsPromotional() bool {
	return c.Amount == 0
}
