package mail

import (
	"context"
	"net"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadsupplies/storefront/internal/config"
	"github.com/ziadsupplies/storefront/internal/order"
)

func sampleSummary() *order.Summary {
	return &order.Summary{
		ID:           12,
		CustomerName: "Amal Haddad",
		Email:        "amal@example.com",
		Status:       order.StatusReceived,
		Items: []order.SummaryLine{
			{Name: "Chlorine 4L", Price: 4.00, Quantity: 2, LineTotal: 8.00},
			{Name: "Dishwashing 22L", Price: 12.50, Quantity: 1, LineTotal: 12.50},
		},
		Total: 20.50,
	}
}

func TestSendOrderConfirmation_Unconfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.SMTPConfig
	}{
		{name: "no_host", cfg: config.SMTPConfig{From: "shop@example.com"}},
		{name: "no_from", cfg: config.SMTPConfig{Host: "smtp.example.com"}},
		{name: "no_recipient", cfg: config.SMTPConfig{Host: "smtp.example.com", From: "shop@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNotifier(tt.cfg)

			summary := sampleSummary()
			if tt.name == "no_recipient" {
				summary.Email = ""
			}

			delivered := n.SendOrderConfirmation(context.Background(), summary)
			assert.False(t, delivered)
		})
	}
}

// A missing from-address must short-circuit before any network activity;
// the request path cannot afford a dial against a configured host.
func TestSendOrderConfirmation_MissingFromSkipsDial(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	var dialed atomic.Bool
	go func() {
		conn, acceptErr := ln.Accept()
		if acceptErr == nil {
			dialed.Store(true)
			conn.Close()
		}
	}()

	n := NewNotifier(config.SMTPConfig{
		Host: "127.0.0.1",
		Port: ln.Addr().(*net.TCPAddr).Port,
	})

	delivered := n.SendOrderConfirmation(context.Background(), sampleSummary())
	assert.False(t, delivered)
	assert.False(t, dialed.Load(), "notifier must not dial SMTP without a configured from-address")
}

func TestBuildBody(t *testing.T) {
	body := buildBody(sampleSummary())

	assert.Contains(t, body, "Hello Amal Haddad,")
	assert.Contains(t, body, "Order ID: 12")
	assert.Contains(t, body, "Payment method: Cash on Delivery")
	assert.Contains(t, body, "• 2 × Chlorine 4L – $8.00")
	assert.Contains(t, body, "• 1 × Dishwashing 22L – $12.50")
	assert.Contains(t, body, "Total (COD): $20.50")
	assert.Contains(t, body, "Ziad's Supplies Team")
}

func TestBuildBody_FallbackGreeting(t *testing.T) {
	summary := sampleSummary()
	summary.CustomerName = ""

	assert.Contains(t, buildBody(summary), "Hello Customer,")
}
