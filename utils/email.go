// utils/email.go
package utils

import (
	"fmt"

	"github.com/keighl/postmark"
	"go.uber.org/zap"

	"go-headphone-store/models"
)

// EmailService handles sending emails using Postmark. When no API token is
// configured the service is inert and every send is a no-op.
type EmailService struct {
	client *postmark.Client
	sender string
	logger *zap.Logger
}

// NewEmailService initializes and returns a new EmailService instance.
func NewEmailService(apiToken, sender string, logger *zap.Logger) *EmailService {
	es := &EmailService{
		sender: sender,
		logger: logger,
	}
	if apiToken != "" {
		es.client = postmark.NewClient(apiToken, "")
	}
	return es
}

// Enabled reports whether the service is configured to send email.
func (es *EmailService) Enabled() bool {
	return es.client != nil
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if es.client == nil {
		return nil
	}

	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	es.logger.Info("email sent", zap.String("to", toEmail), zap.String("subject", subject))
	return nil
}

// SendInvoiceEmail sends an invoice receipt to the user.
func (es *EmailService) SendInvoiceEmail(toEmail, name string, invoice models.Invoice) error {
	subject := fmt.Sprintf("Invoice #%d - Headphone Store", invoice.ID)

	total := 0.0
	for _, record := range invoice.Records {
		total += record.TotalAmount
	}

	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Your invoice #%d has been created with %d checkout record(s).<br><br>Total Amount: <strong>$%.2f</strong><br>Payment Option: <strong>%s</strong><br>Billing Address: <strong>%s</strong><br><br>Thank you for shopping with us!",
		name,
		invoice.ID,
		len(invoice.Records),
		total,
		invoice.PaymentOption,
		invoice.Address.Address,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
