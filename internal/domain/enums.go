package domain

// PaymentMethod represents how the customer pays for an order
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPayPal PaymentMethod = "paypal"
	// PaymentMethodCOD - cash on delivery
	PaymentMethodCOD PaymentMethod = "cod"
)

// IsValid checks if the payment method is one of the supported values
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodPayPal, PaymentMethodCOD:
		return true
	default:
		return false
	}
}

// OrderStatus represents the fulfillment stage of a placed order.
// The stages form a strict sequence; an order only ever moves forward.
type OrderStatus string

const (
	// CONFIRMED - order accepted by the restaurant
	OrderStatusConfirmed OrderStatus = "confirmed"
	// PREPARING - kitchen is working on the order
	OrderStatusPreparing OrderStatus = "preparing"
	// ON_THE_WAY - courier picked up the order
	OrderStatusOnTheWay OrderStatus = "on-the-way"
	// DELIVERED - order handed to the customer (terminal)
	OrderStatusDelivered OrderStatus = "delivered"
)

// orderStatusSequence fixes the fulfillment order of the statuses.
var orderStatusSequence = []OrderStatus{
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusOnTheWay,
	OrderStatusDelivered,
}

// Statuses returns the fulfillment sequence, earliest first.
func Statuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatusSequence))
	copy(out, orderStatusSequence)
	return out
}

// IsValid checks if the order status is one of the defined stages
func (s OrderStatus) IsValid() bool {
	return s.Index() >= 0
}

// Index returns the position of the status in the fulfillment sequence,
// or -1 if the status is not a defined stage.
func (s OrderStatus) Index() int {
	for i, st := range orderStatusSequence {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the following stage. ok is false for the terminal stage
// and for unrecognized statuses.
func (s OrderStatus) Next() (OrderStatus, bool) {
	i := s.Index()
	if i < 0 || i == len(orderStatusSequence)-1 {
		return "", false
	}
	return orderStatusSequence[i+1], true
}

// CanTransitionTo checks if a status transition is valid. Transitions are
// monotonic and single-step; delivered is terminal.
func (s OrderStatus) CanTransitionTo(newStatus OrderStatus) bool {
	next, ok := s.Next()
	return ok && next == newStatus
}

// DiscountKind represents the type of a promotion discount
type DiscountKind string

const (
	// PERCENTAGE - a rate applied to the cart subtotal
	DiscountKindPercentage DiscountKind = "percentage"
	// FLAT - a fixed amount off the cart subtotal
	DiscountKindFlat DiscountKind = "flat"
)
