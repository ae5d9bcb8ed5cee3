package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem represents one distinct product entry in a cart.
// Quantity is always at least 1; a decrement below that is rejected by the
// cart operations rather than stored.
type LineItem struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// LineTotal returns unit price times quantity, unrounded.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart holds the current set of line items for a session. Item IDs are
// unique within the cart.
type Cart struct {
	Items []LineItem
}

// Discount represents a promotion discount rule resolved from a promo code
type Discount struct {
	Kind DiscountKind
	// Rate is set for percentage discounts, in (0, 1].
	Rate decimal.Decimal
	// Amount is set for flat discounts, >= 0.
	Amount decimal.Decimal
}

// OrderSummary is the priced breakdown of a cart. It is a derived snapshot:
// recomputed from its inputs on every change, never mutated in place.
// Values are exact decimals; two-digit rounding is presentation-only.
type OrderSummary struct {
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	DeliveryFee decimal.Decimal
	TaxableBase decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}

// Address represents the delivery address of a checkout submission
type Address struct {
	Street    string
	Apartment string
	City      string
	State     string
	ZipCode   string
	Country   string
}

// CardDetails holds the card fields of a checkout submission. The block is
// only inspected when the payment method is card.
type CardDetails struct {
	CardNumber string
	CardExpiry string
	CardCvc    string
}

// CheckoutSubmission is one checkout attempt. It is constructed per
// attempt, validated synchronously and never persisted by the core.
type CheckoutSubmission struct {
	Address       Address
	PaymentMethod PaymentMethod
	CardDetails   CardDetails
}

// Order represents a placed order
type Order struct {
	ID         uuid.UUID
	Number     string
	Status     OrderStatus
	Items      []LineItem
	Summary    OrderSummary
	Submission CheckoutSubmission
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MenuItem represents a catalog dish that can seed a cart line item
type MenuItem struct {
	ID         string
	Name       string
	Restaurant string
	Price      decimal.Decimal
}
