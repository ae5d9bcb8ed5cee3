package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tastebite/orderapi/internal/api/middleware"
	"github.com/tastebite/orderapi/internal/config"
	"github.com/tastebite/orderapi/internal/domain"
	"github.com/tastebite/orderapi/internal/placement"
	"github.com/tastebite/orderapi/internal/pricing"
	"github.com/tastebite/orderapi/pkg/errors"
)

// CheckoutRequest represents the checkout submission payload
type CheckoutRequest struct {
	Address       AddressRequest `json:"address" binding:"required"`
	PaymentMethod string         `json:"payment_method"`
	Card          CardRequest    `json:"card"`
	Items         []QuoteItem    `json:"items" binding:"required,min=1"`
	PromoCode     string         `json:"promo_code"`
}

type AddressRequest struct {
	Street    string `json:"street"`
	Apartment string `json:"apartment"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

type CardRequest struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	Cvc    string `json:"cvc"`
}

// CheckoutResponse represents a successfully placed order
type CheckoutResponse struct {
	OrderID     string          `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	Status      string          `json:"status"`
	Summary     SummaryResponse `json:"summary"`
}

// HandleCheckout handles POST /v1/checkout. The submission is validated
// synchronously; a failure returns the field-path to message map and
// nothing is placed.
func HandleCheckout(cfg *config.Config, svc *placement.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		submission := domain.CheckoutSubmission{
			Address: domain.Address{
				Street:    req.Address.Street,
				Apartment: req.Address.Apartment,
				City:      req.Address.City,
				State:     req.Address.State,
				ZipCode:   req.Address.ZipCode,
				Country:   req.Address.Country,
			},
			PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
			CardDetails: domain.CardDetails{
				CardNumber: req.Card.Number,
				CardExpiry: req.Card.Expiry,
				CardCvc:    req.Card.Cvc,
			},
		}

		cart := cartFromRequest(req.Items)
		promo := pricing.ApplyPromotion(req.PromoCode)
		summary := pricing.ComputeSummary(cart, promo.Discount, pricing.Params{
			DeliveryFee: cfg.Pricing.CheckoutDeliveryFee,
			TaxRate:     cfg.Pricing.CheckoutTaxRate,
		})

		order, err := svc.PlaceOrder(c.Request.Context(), submission, cart.Items, summary)
		if err != nil {
			if vErr, ok := err.(*errors.ErrValidation); ok {
				middleware.RecordCheckoutRejection()
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":  vErr.Message,
					"fields": vErr.Fields,
				})
				return
			}
			logger.Error("Failed to place order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		middleware.RecordOrderPlaced()
		c.JSON(http.StatusCreated, CheckoutResponse{
			OrderID:     order.ID.String(),
			OrderNumber: order.Number,
			Status:      string(order.Status),
			Summary:     toSummaryResponse(order.Summary),
		})
	}
}
