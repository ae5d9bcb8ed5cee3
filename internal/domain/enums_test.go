package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusSequence(t *testing.T) {
	assert.Equal(t, 0, OrderStatusConfirmed.Index())
	assert.Equal(t, 1, OrderStatusPreparing.Index())
	assert.Equal(t, 2, OrderStatusOnTheWay.Index())
	assert.Equal(t, 3, OrderStatusDelivered.Index())
	assert.Equal(t, -1, OrderStatus("shipped").Index())
}

func TestOrderStatusTransitions(t *testing.T) {
	assert.True(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusPreparing))
	assert.True(t, OrderStatusPreparing.CanTransitionTo(OrderStatusOnTheWay))
	assert.True(t, OrderStatusOnTheWay.CanTransitionTo(OrderStatusDelivered))

	// No backward or skipping transitions; delivered is terminal.
	assert.False(t, OrderStatusPreparing.CanTransitionTo(OrderStatusConfirmed))
	assert.False(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusOnTheWay))
	assert.False(t, OrderStatusDelivered.CanTransitionTo(OrderStatusConfirmed))

	next, ok := OrderStatusDelivered.Next()
	assert.False(t, ok)
	assert.Empty(t, next)
}

func TestPaymentMethodIsValid(t *testing.T) {
	assert.True(t, PaymentMethodCard.IsValid())
	assert.True(t, PaymentMethodPayPal.IsValid())
	assert.True(t, PaymentMethodCOD.IsValid())
	assert.False(t, PaymentMethod("").IsValid())
	assert.False(t, PaymentMethod("bitcoin").IsValid())
}
