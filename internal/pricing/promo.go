package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tastebite/orderapi/internal/domain"
)

// PromoOutcome distinguishes the three results of applying a promo code
type PromoOutcome string

const (
	// PromoApplied - the code matched a rule; Discount carries the rule
	PromoApplied PromoOutcome = "applied"
	// PromoInvalid - a non-empty code matched nothing; any previous
	// discount is reset and the user gets negative feedback
	PromoInvalid PromoOutcome = "invalid"
	// PromoCleared - blank input; the discount is cleared silently
	PromoCleared PromoOutcome = "cleared"
)

// PromoResult is the tagged outcome of a promo code lookup
type PromoResult struct {
	Outcome  PromoOutcome
	Code     string
	Discount *domain.Discount
}

// promoRules is the fixed rule table, keyed by normalized code.
var promoRules = map[string]domain.Discount{
	"SAVE10": {
		Kind: domain.DiscountKindPercentage,
		Rate: decimal.NewFromFloat(0.10),
	},
	"FREEBIE": {
		Kind:   domain.DiscountKindFlat,
		Amount: decimal.NewFromFloat(5.00),
	},
}

// ApplyPromotion looks up a promotion code against the fixed rule table.
// Codes are case-insensitive. A blank code clears the discount without
// feedback; an unrecognized code is invalid and resets the discount, so a
// stale discount from a previously valid code never survives.
func ApplyPromotion(code string) PromoResult {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return PromoResult{Outcome: PromoCleared}
	}
	rule, ok := promoRules[normalized]
	if !ok {
		return PromoResult{Outcome: PromoInvalid, Code: normalized}
	}
	return PromoResult{Outcome: PromoApplied, Code: normalized, Discount: &rule}
}
