package mail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	gomail "github.com/wneessen/go-mail"

	"github.com/ziadsupplies/storefront/internal/config"
	"github.com/ziadsupplies/storefront/internal/order"
)

const (
	subject     = "Ziad's Supplies – Order received"
	defaultFrom = "Ziad's Supplies <no-reply@ziads-supplies.local>"
	sendTimeout = 15 * time.Second
)

// Notifier sends plain-text order confirmations over SMTP. With no mail
// transport configured it degrades to logging and reporting false, which
// is the expected mode for local development.
type Notifier struct {
	cfg config.SMTPConfig
}

func NewNotifier(cfg config.SMTPConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// SendOrderConfirmation makes one best-effort delivery attempt and reports
// whether it succeeded. It never returns an error: an order is placed
// regardless of email outcome.
func (n *Notifier) SendOrderConfirmation(ctx context.Context, summary *order.Summary) bool {
	if n.cfg.Host == "" || n.cfg.From == "" || summary.Email == "" {
		log.Info().Int64("order_id", summary.ID).Str("recipient", summary.Email).
			Msg("mail: SMTP not configured, skipping confirmation email")
		return false
	}

	msg := gomail.NewMsg()
	if err := msg.From(n.fromAddress()); err != nil {
		log.Error().Err(err).Int64("order_id", summary.ID).Msg("mail: invalid from address")
		return false
	}
	if err := msg.To(summary.Email); err != nil {
		log.Error().Err(err).Int64("order_id", summary.ID).Msg("mail: invalid recipient address")
		return false
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, buildBody(summary))

	client, err := n.newClient()
	if err != nil {
		log.Error().Err(err).Int64("order_id", summary.ID).Msg("mail: failed to configure SMTP client")
		return false
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := client.DialAndSendWithContext(sendCtx, msg); err != nil {
		log.Error().Err(err).Int64("order_id", summary.ID).Msg("mail: failed to send order confirmation email")
		return false
	}

	log.Info().Int64("order_id", summary.ID).Str("recipient", summary.Email).
		Msg("mail: sent order confirmation email")
	return true
}

// fromAddress is only for composing the header; the degraded-mode guard
// checks the configured value itself.
func (n *Notifier) fromAddress() string {
	if n.cfg.From != "" {
		return n.cfg.From
	}
	return defaultFrom
}

func (n *Notifier) newClient() (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(n.cfg.Port),
		gomail.WithTimeout(sendTimeout),
	}

	if n.cfg.UseTLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	}

	if n.cfg.Username != "" && n.cfg.Password != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(n.cfg.Username),
			gomail.WithPassword(n.cfg.Password),
		)
	}

	return gomail.NewClient(n.cfg.Host, opts...)
}

func buildBody(summary *order.Summary) string {
	var b strings.Builder

	name := summary.CustomerName
	if name == "" {
		name = "Customer"
	}

	fmt.Fprintf(&b, "Hello %s,\n\n", name)
	b.WriteString("Thanks for placing an order with Ziad's Supplies. We've queued it for dispatch and will reach out to confirm delivery details shortly.\n\n")
	fmt.Fprintf(&b, "Order ID: %d\n", summary.ID)
	b.WriteString("Payment method: Cash on Delivery\n")

	if len(summary.Items) > 0 {
		b.WriteString("\nItems:\n")
		for _, line := range summary.Items {
			fmt.Fprintf(&b, "• %d × %s – $%.2f\n", line.Quantity, line.Name, line.LineTotal)
		}
	}

	fmt.Fprintf(&b, "\nTotal (COD): $%.2f\n", summary.Total)
	b.WriteString("\nWe'll be in touch to finalise dispatch details. If any adjustments are needed, simply reply to this email.\n")
	b.WriteString("\nBest regards,\nZiad's Supplies Team\n")

	return b.String()
}
