package services

import (
	"context"
	"net/url"
	"testing"

	"github.com/Find-Your-Humanity/dashboard-sub000/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutURLCarriesPlanAndOrder(t *testing.T) {
	s := NewBillingService(newFakeCaller(), "https://pay.example.com/checkout")

	raw, orderID, err := s.CheckoutURL("plan-pro")
	require.NoError(t, err)
	require.NotEmpty(t, orderID)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "pay.example.com", u.Host)
	assert.Equal(t, "plan-pro", u.Query().Get("plan_id"))
	assert.Equal(t, orderID, u.Query().Get("order_id"))
}

func TestCheckoutURLOrderIDsAreUnique(t *testing.T) {
	s := NewBillingService(newFakeCaller(), "https://pay.example.com/checkout")

	_, a, err := s.CheckoutURL("p")
	require.NoError(t, err)
	_, b, err := s.CheckoutURL("p")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParseCheckoutReturnSuccess(t *testing.T) {
	res, err := ParseCheckoutReturn("https://dash.example.com/billing?status=success&plan_id=p1&order_id=o1")
	require.NoError(t, err)
	assert.True(t, res.Succeeded)
	assert.Equal(t, "p1", res.PlanID)
	assert.Equal(t, "o1", res.OrderID)
}

func TestParseCheckoutReturnFailure(t *testing.T) {
	res, err := ParseCheckoutReturn("https://dash.example.com/billing?status=cancelled&reason=card+declined")
	require.NoError(t, err)
	assert.False(t, res.Succeeded)
	assert.Equal(t, "card declined", res.Reason)
}

func TestParseCheckoutReturnWithoutStatus(t *testing.T) {
	_, err := ParseCheckoutReturn("https://dash.example.com/billing")
	assert.ErrorIs(t, err, ErrNoCheckoutStatus)
}

func TestConfirmPostsOutcome(t *testing.T) {
	c := newFakeCaller()
	c.respond("POST", "/billing/confirm", `{"plan_id":"p1","plan_name":"Pro","status":"active"}`)
	s := NewBillingService(c, "https://pay.example.com")

	sub, err := s.Confirm(context.Background(), &models.CheckoutResult{
		Succeeded: true, PlanID: "p1", OrderID: "o1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pro", sub.PlanName)
	assert.Equal(t, "POST", c.lastMethod)
}

func TestCurrentSubscription(t *testing.T) {
	c := newFakeCaller()
	c.respond("GET", "/billing/subscription", `{"plan_id":"p1","plan_name":"Free","status":"active"}`)

	sub, err := NewBillingService(c, "https://pay.example.com").Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Free", sub.PlanName)
}
