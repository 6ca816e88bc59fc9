package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/models"
	"github.com/google/uuid"
)

// ErrNoCheckoutStatus is returned when a pasted return URL carries no
// recognizable checkout parameters.
var ErrNoCheckoutStatus = errors.New("no checkout status in url")

// BillingService backs the billing screen. The dashboard never processes
// payment itself: a plan change hands off to the external payment page and
// later reads back the success/failure query parameters from the return URL.
type BillingService struct {
	c          Caller
	paymentURL string
}

func NewBillingService(c Caller, paymentURL string) *BillingService {
	return &BillingService{c: c, paymentURL: paymentURL}
}

func (s *BillingService) Current(ctx context.Context) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.c.Get(ctx, "/billing/subscription", &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// CheckoutURL builds the external payment-page address for a plan change.
// The order id is generated client-side so the later confirmation is
// idempotent on the server.
func (s *BillingService) CheckoutURL(planID string) (string, string, error) {
	u, err := url.Parse(s.paymentURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid payment url: %w", err)
	}
	orderID := uuid.NewString()

	q := u.Query()
	q.Set("plan_id", planID)
	q.Set("order_id", orderID)
	u.RawQuery = q.Encode()

	return u.String(), orderID, nil
}

// ParseCheckoutReturn reads the query parameters the payment page appends
// when redirecting back: status, plan_id, order_id and, on failure, reason.
func ParseCheckoutReturn(raw string) (*models.CheckoutResult, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid return url: %w", err)
	}

	q := u.Query()
	status := q.Get("status")
	if status == "" {
		return nil, ErrNoCheckoutStatus
	}

	return &models.CheckoutResult{
		Succeeded: status == "success",
		PlanID:    q.Get("plan_id"),
		OrderID:   q.Get("order_id"),
		Reason:    q.Get("reason"),
	}, nil
}

// Confirm reports the checkout outcome to the API so the subscription is
// switched (or the pending order cancelled) server-side.
func (s *BillingService) Confirm(ctx context.Context, res *models.CheckoutResult) (*models.Subscription, error) {
	body := struct {
		OrderID   string `json:"order_id"`
		PlanID    string `json:"plan_id"`
		Succeeded bool   `json:"succeeded"`
	}{OrderID: res.OrderID, PlanID: res.PlanID, Succeeded: res.Succeeded}

	var sub models.Subscription
	if err := s.c.Post(ctx, "/billing/confirm", body, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}
