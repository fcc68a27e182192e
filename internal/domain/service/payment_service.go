package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"campussell/pkg/logger"
)

// PaymentRequest carries everything the gateway needs for one charge.
type PaymentRequest struct {
	UserID    string
	Amount    float64
	Method    string // "card", "mobile_money", "campus_credit"
	Reference string
}

type PaymentResult struct {
	TransactionID string
	Status        string // "paid" or "declined"
	ProcessedAt   time.Time
}

// PaymentGateway processes a charge in a single synchronous attempt.
// There is no retry; a declined charge is surfaced to the caller as-is.
type PaymentGateway interface {
	Charge(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
}

// SimulatedPaymentGateway stands in for a real processor. A charge is
// declined when the amount is not positive, when the method is unknown,
// or (optionally) at a configured random rate for failure-path testing.
type SimulatedPaymentGateway struct {
	declineRate float64
}

func NewSimulatedPaymentGateway(declineRate float64) *SimulatedPaymentGateway {
	return &SimulatedPaymentGateway{
		declineRate: declineRate,
	}
}

func (g *SimulatedPaymentGateway) Charge(ctx context.Context, req PaymentRequest) (*PaymentResult, error) {
	logger.Info("Processing simulated payment: user=%s, amount=%.2f, method=%s", req.UserID, req.Amount, req.Method)

	if req.Amount <= 0 {
		return &PaymentResult{Status: "declined", ProcessedAt: time.Now()}, nil
	}

	switch strings.ToLower(req.Method) {
	case "card", "mobile_money", "campus_credit":
	default:
		return &PaymentResult{Status: "declined", ProcessedAt: time.Now()}, nil
	}

	if g.declineRate > 0 && rand.Float64() < g.declineRate {
		return &PaymentResult{Status: "declined", ProcessedAt: time.Now()}, nil
	}

	return &PaymentResult{
		TransactionID: fmt.Sprintf("sim-%s-%d", req.UserID, time.Now().UnixNano()),
		Status:        "paid",
		ProcessedAt:   time.Now(),
	}, nil
}
