package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tastebite/orderapi/internal/config"
	"github.com/tastebite/orderapi/internal/domain"
	"github.com/tastebite/orderapi/internal/pricing"
)

// QuoteRequest represents the cart quote payload
type QuoteRequest struct {
	// Items may be empty: the engine prices an empty cart as zero.
	Items     []QuoteItem `json:"items"`
	PromoCode string      `json:"promo_code"`
	// Flow selects the pricing profile: "cart" (default) or "express".
	Flow string `json:"flow"`
}

type QuoteItem struct {
	ID        string          `json:"id" binding:"required"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
}

// QuoteResponse represents the priced breakdown plus promo feedback
type QuoteResponse struct {
	Summary SummaryResponse `json:"summary"`
	Promo   *PromoFeedback  `json:"promo,omitempty"`
}

// SummaryResponse is the order summary with two-digit display rounding.
// Rounding happens only here; the engine works on exact decimals.
type SummaryResponse struct {
	Subtotal    string `json:"subtotal"`
	Discount    string `json:"discount"`
	DeliveryFee string `json:"delivery_fee"`
	Tax         string `json:"tax"`
	Total       string `json:"total"`
}

type PromoFeedback struct {
	Outcome string `json:"outcome"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// HandleCartQuote handles POST /v1/cart/quote
func HandleCartQuote(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req QuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		cart := cartFromRequest(req.Items)
		promo := pricing.ApplyPromotion(req.PromoCode)
		summary := pricing.ComputeSummary(cart, promo.Discount, pricingParams(cfg, req.Flow))

		logger.Debug("Cart quoted",
			zap.Int("item_count", len(cart.Items)),
			zap.String("promo_outcome", string(promo.Outcome)),
			zap.String("total", summary.Total.StringFixed(2)),
		)

		c.JSON(http.StatusOK, QuoteResponse{
			Summary: toSummaryResponse(summary),
			Promo:   toPromoFeedback(promo),
		})
	}
}

func cartFromRequest(items []QuoteItem) domain.Cart {
	cart := domain.Cart{Items: make([]domain.LineItem, 0, len(items))}
	for _, it := range items {
		cart.Items = append(cart.Items, domain.LineItem{
			ID:        it.ID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	return cart
}

func pricingParams(cfg *config.Config, flow string) pricing.Params {
	if flow == "express" {
		return pricing.Params{
			DeliveryFee: cfg.Pricing.CheckoutDeliveryFee,
			TaxRate:     cfg.Pricing.CheckoutTaxRate,
		}
	}
	return pricing.Params{
		DeliveryFee: cfg.Pricing.CartDeliveryFee,
		TaxRate:     cfg.Pricing.CartTaxRate,
	}
}

func toSummaryResponse(s domain.OrderSummary) SummaryResponse {
	return SummaryResponse{
		Subtotal:    s.Subtotal.StringFixed(2),
		Discount:    s.Discount.StringFixed(2),
		DeliveryFee: s.DeliveryFee.StringFixed(2),
		Tax:         s.Tax.StringFixed(2),
		Total:       s.Total.StringFixed(2),
	}
}

// toPromoFeedback maps a promo result to user-visible feedback. A cleared
// (blank) code produces no feedback at all.
func toPromoFeedback(p pricing.PromoResult) *PromoFeedback {
	switch p.Outcome {
	case pricing.PromoApplied:
		return &PromoFeedback{
			Outcome: string(p.Outcome),
			Code:    p.Code,
			Message: "Promo code applied.",
		}
	case pricing.PromoInvalid:
		return &PromoFeedback{
			Outcome: string(p.Outcome),
			Code:    p.Code,
			Message: "The promo code you entered is not valid.",
		}
	default:
		return nil
	}
}
