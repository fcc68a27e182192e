package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeSucceedsForKnownMethods(t *testing.T) {
	g := NewSimulatedPaymentGateway(0)

	for _, method := range []string{"card", "mobile_money", "campus_credit", "Card"} {
		result, err := g.Charge(context.Background(), PaymentRequest{
			UserID: "buyer-1",
			Amount: 27.97,
			Method: method,
		})
		require.NoError(t, err)
		assert.Equal(t, "paid", result.Status)
		assert.NotEmpty(t, result.TransactionID)
	}
}

func TestChargeDeclinesBadRequests(t *testing.T) {
	g := NewSimulatedPaymentGateway(0)

	result, err := g.Charge(context.Background(), PaymentRequest{UserID: "buyer-1", Amount: 0, Method: "card"})
	require.NoError(t, err)
	assert.Equal(t, "declined", result.Status)

	result, err = g.Charge(context.Background(), PaymentRequest{UserID: "buyer-1", Amount: 10, Method: "barter"})
	require.NoError(t, err)
	assert.Equal(t, "declined", result.Status)
}

func TestChargeAlwaysDeclinesAtFullRate(t *testing.T) {
	g := NewSimulatedPaymentGateway(1)

	result, err := g.Charge(context.Background(), PaymentRequest{UserID: "buyer-1", Amount: 10, Method: "card"})
	require.NoError(t, err)
	assert.Equal(t, "declined", result.Status)
}
