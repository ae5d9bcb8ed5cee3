// Package placement is the gate between a validated checkout and the
// order lifecycle: it places orders into the in-memory store and runs the
// simulated status feed that advances them.
package placement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tastebite/orderapi/internal/checkout"
	"github.com/tastebite/orderapi/internal/domain"
)

// Service places validated orders
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new placement service.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// PlaceOrder validates the submission and, if it passes, creates the order
// in Confirmed state. Validation failure is returned as-is and blocks
// placement; nothing is stored in that case.
func (s *Service) PlaceOrder(ctx context.Context, submission domain.CheckoutSubmission, items []domain.LineItem, summary domain.OrderSummary) (*domain.Order, error) {
	if err := checkout.Validate(submission); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:         uuid.New(),
		Status:     domain.OrderStatusConfirmed,
		Items:      append([]domain.LineItem(nil), items...),
		Summary:    summary,
		Submission: submission,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	order.Number = orderNumber(order.ID)

	s.store.Put(order)
	s.logger.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.Number),
		zap.String("payment_method", string(submission.PaymentMethod)),
	)
	return order, nil
}

// orderNumber derives the short human-facing number shown on the tracking
// screen.
func orderNumber(id uuid.UUID) string {
	raw := id.String()
	return fmt.Sprintf("TB-%s", raw[len(raw)-8:])
}

// RunStatusFeed advances undelivered orders one stage per tick until the
// context is cancelled. It stands in for the real backend status feed; the
// tracker itself never performs transitions.
func RunStatusFeed(ctx context.Context, store *Store, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if moved := store.advanceAll(); moved > 0 {
				logger.Debug("Status feed advanced orders", zap.Int("count", moved))
			}
		}
	}
}
