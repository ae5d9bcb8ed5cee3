// Package checkout validates a checkout submission before order placement.
//
// Validation runs in two stages: per-field structural rules first, then the
// cross-field card rule keyed on the payment method. The card rule reports
// a single combined error under the "cardDetails" path rather than per
// card field; the checkout form reserves exactly one error slot for that
// section.
package checkout

import (
	"regexp"
	"strings"

	"github.com/tastebite/orderapi/internal/domain"
	"github.com/tastebite/orderapi/pkg/errors"
)

// Field paths used in validation errors. CardDetailsPath is deliberately
// distinct from the three individual card fields.
const (
	FieldStreet        = "street"
	FieldCity          = "city"
	FieldState         = "state"
	FieldZipCode       = "zipCode"
	FieldCountry       = "country"
	FieldPaymentMethod = "paymentMethod"
	CardDetailsPath    = "cardDetails"
)

var cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

// Validate checks a checkout submission. It returns nil when the
// submission may proceed to placement, or an *errors.ErrValidation mapping
// field paths to messages. Validation failure is always recoverable: it
// blocks placement and nothing else.
func Validate(s domain.CheckoutSubmission) error {
	fields := map[string]string{}

	validateAddress(s.Address, fields)
	validatePaymentMethod(s.PaymentMethod, fields)

	// Card details are only inspected when paying by card; for any other
	// method the block is ignored even if partially populated.
	if s.PaymentMethod == domain.PaymentMethodCard && !cardDetailsValid(s.CardDetails) {
		fields[CardDetailsPath] = "Please provide valid card details if 'Credit/Debit Card' is selected."
	}

	if len(fields) > 0 {
		return &errors.ErrValidation{Message: "checkout validation failed", Fields: fields}
	}
	return nil
}

func validateAddress(a domain.Address, fields map[string]string) {
	if len(strings.TrimSpace(a.Street)) < 5 {
		fields[FieldStreet] = "Street address is required and should be at least 5 characters."
	}
	// Apartment is optional; any value is accepted.
	if len(strings.TrimSpace(a.City)) < 2 {
		fields[FieldCity] = "City is required."
	}
	if len(strings.TrimSpace(a.State)) < 2 {
		fields[FieldState] = "State is required."
	}
	if len(strings.TrimSpace(a.ZipCode)) < 5 {
		fields[FieldZipCode] = "Valid ZIP code is required."
	}
	if len(strings.TrimSpace(a.Country)) < 2 {
		fields[FieldCountry] = "Country is required."
	}
}

func validatePaymentMethod(m domain.PaymentMethod, fields map[string]string) {
	// An absent method and an unrecognized one are distinct failures.
	switch {
	case m == "":
		fields[FieldPaymentMethod] = "Please select a payment method."
	case !m.IsValid():
		fields[FieldPaymentMethod] = "Unsupported payment method."
	}
}

// cardDetailsValid applies the card block rules as one unit: all three
// fields must hold simultaneously.
func cardDetailsValid(c domain.CardDetails) bool {
	number := strings.TrimSpace(c.CardNumber)
	if len(number) < 13 || len(number) > 19 {
		return false
	}
	if !cardExpiryPattern.MatchString(strings.TrimSpace(c.CardExpiry)) {
		return false
	}
	cvc := strings.TrimSpace(c.CardCvc)
	return len(cvc) == 3 || len(cvc) == 4
}
