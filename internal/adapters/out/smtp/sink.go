// Package smtp delivers customer and staff notifications as HTML email.
// It implements ports.NotificationSink over net/smtp: the order confirmation
// invoice sent at checkout and the restock alert raised by the ledger scan.
package smtp

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// Config carries the SMTP connection settings and the addresses used on
// outgoing mail. AlertRecipient receives restock alerts.
type Config struct {
	Host           string
	Port           string
	Sender         string
	Password       string
	SenderName     string
	AlertRecipient string
}

// sendFunc matches smtp.SendMail; tests substitute a capture function.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// NotificationSink sends notifications through one SMTP account.
type NotificationSink struct {
	config Config
	logger *slog.Logger
	send   sendFunc
}

var _ ports.NotificationSink = (*NotificationSink)(nil)

// NewNotificationSink creates a sink that delivers through the configured
// SMTP server.
func NewNotificationSink(config Config, logger *slog.Logger) *NotificationSink {
	return &NotificationSink{
		config: config,
		logger: logger,
		send:   smtp.SendMail,
	}
}

// NotifyOrderCreated sends the order confirmation invoice to the customer.
func (s *NotificationSink) NotifyOrderCreated(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	subject := fmt.Sprintf("Invoice for Order #%s", aggregate.OrderID())
	body := renderTemplate("Order Confirmed!", invoiceBody(aggregate))

	err := s.sendMail([]string{aggregate.Customer().Email()}, subject, body)
	if err != nil {
		return err
	}

	s.logger.Info("order confirmation sent",
		"orderId", aggregate.OrderID().String(),
		"to", aggregate.Customer().Email())
	return nil
}

// NotifyRestockAlert reports low-stock findings to the operations mailbox.
// Calling it with no alerts is a no-op.
func (s *NotificationSink) NotifyRestockAlert(_ context.Context, alerts []ports.RestockAlert) error {
	if len(alerts) == 0 {
		return nil
	}

	subject := fmt.Sprintf("Restock Alert: %d products running low", len(alerts))
	body := renderTemplate("Restock Required", restockBody(alerts))

	err := s.sendMail([]string{s.config.AlertRecipient}, subject, body)
	if err != nil {
		return err
	}

	s.logger.Info("restock alert sent",
		"alerts", len(alerts),
		"to", s.config.AlertRecipient)
	return nil
}

func (s *NotificationSink) sendMail(to []string, subject, htmlBody string) error {
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: %s <%s>\r\n", s.config.SenderName, s.config.Sender)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", s.config.Sender, s.config.Password, s.config.Host)

	return s.send(s.config.Host+":"+s.config.Port, auth, s.config.Sender, to, []byte(msg))
}
