package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/tastebite/orderapi/internal/domain"
)

// Params holds the commercial parameters of a pricing flow. Delivery fee
// and tax rate differ per call site (cart vs express checkout), so they are
// inputs here, not constants.
type Params struct {
	DeliveryFee decimal.Decimal
	TaxRate     decimal.Decimal
}

// ChangeQuantity returns a copy of the cart with the item's quantity set to
// newQuantity. A quantity below 1 is a silent no-op: the minimum quantity
// stays 1 and removal is a separate, explicit operation. An unknown itemID
// is also a no-op.
func ChangeQuantity(cart domain.Cart, itemID string, newQuantity int) domain.Cart {
	if newQuantity < 1 {
		return cloneCart(cart)
	}
	out := cloneCart(cart)
	for i := range out.Items {
		if out.Items[i].ID == itemID {
			out.Items[i].Quantity = newQuantity
			break
		}
	}
	return out
}

// RemoveItem returns a copy of the cart without the given item. Removing an
// absent item is a no-op, not an error.
func RemoveItem(cart domain.Cart, itemID string) domain.Cart {
	out := domain.Cart{Items: make([]domain.LineItem, 0, len(cart.Items))}
	for _, it := range cart.Items {
		if it.ID != itemID {
			out.Items = append(out.Items, it)
		}
	}
	return out
}

// Subtotal sums unit price times quantity over the cart, unrounded.
func Subtotal(cart domain.Cart) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range cart.Items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

// ComputeSummary derives the priced breakdown of a cart. It is pure and
// idempotent: the same inputs always produce the same summary.
//
// The discount amount never exceeds the subtotal. A fully discounted or
// empty cart bills nothing at all: delivery fee and tax are waived and the
// total is zero.
func ComputeSummary(cart domain.Cart, discount *domain.Discount, params Params) domain.OrderSummary {
	subtotal := Subtotal(cart)
	discountAmount := discountFor(subtotal, discount)

	taxableBase := subtotal.Sub(discountAmount)
	if taxableBase.IsNegative() {
		taxableBase = decimal.Zero
	}
	tax := taxableBase.Mul(params.TaxRate)

	total := decimal.Zero
	if taxableBase.IsPositive() {
		total = taxableBase.Add(params.DeliveryFee).Add(tax)
	}

	return domain.OrderSummary{
		Subtotal:    subtotal,
		Discount:    discountAmount,
		DeliveryFee: params.DeliveryFee,
		TaxableBase: taxableBase,
		Tax:         tax,
		Total:       total,
	}
}

// discountFor resolves the discount rule to an amount, clamped to
// [0, subtotal].
func discountFor(subtotal decimal.Decimal, discount *domain.Discount) decimal.Decimal {
	if discount == nil {
		return decimal.Zero
	}
	var amount decimal.Decimal
	switch discount.Kind {
	case domain.DiscountKindPercentage:
		amount = subtotal.Mul(discount.Rate)
	case domain.DiscountKindFlat:
		amount = discount.Amount
	default:
		return decimal.Zero
	}
	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(subtotal) {
		return subtotal
	}
	return amount
}

func cloneCart(cart domain.Cart) domain.Cart {
	out := domain.Cart{Items: make([]domain.LineItem, len(cart.Items))}
	copy(out.Items, cart.Items)
	return out
}
