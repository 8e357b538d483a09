package notify

import (
	"context"
	"fmt"

	"hungry-dine-api/config"
	"hungry-dine-api/models"

	"github.com/mailgun/mailgun-go/v4"
)

// OrderMailer sends order-confirmation emails through Mailgun to a fixed
// recipient.
type OrderMailer struct {
	mg        *mailgun.MailgunImpl
	from      string
	recipient string
}

func NewOrderMailer(cfg config.MailConfig) *OrderMailer {
	return &OrderMailer{
		mg:        mailgun.NewMailgun(cfg.Domain, cfg.APIKey),
		from:      cfg.From,
		recipient: cfg.Recipient,
	}
}

func (m *OrderMailer) SendOrderConfirmation(ctx context.Context, payment models.Payment) error {
	subject := fmt.Sprintf("Order received from %s", payment.Email)
	body := fmt.Sprintf(
		"Payment of $%.2f received from %s for %d item(s).\nTransaction: %s\nDate: %s\n",
		payment.Price, payment.Email, len(payment.MenuIDs),
		payment.TransactionID, payment.Date.Format("2006-01-02 15:04:05 MST"),
	)
	msg := m.mg.NewMessage(m.from, subject, body, m.recipient)
	_, _, err := m.mg.Send(ctx, msg)
	return err
}
