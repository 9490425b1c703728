// services/notification_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tommytoyou/bost-lawn-care/models"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier tells the business owner about new site activity.
type Notifier interface {
	Notify(ctx context.Context, subject, message string) error
}

// ConsoleNotifier logs notifications. Used when SMS is not configured.
type ConsoleNotifier struct {
	logger *slog.Logger
}

func NewConsoleNotifier(logger *slog.Logger) *ConsoleNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConsoleNotifier{logger: logger}
}

func (n *ConsoleNotifier) Notify(_ context.Context, subject, message string) error {
	n.logger.Info("[notify] "+subject, "message", message)
	return nil
}

// TwilioConfig holds the SMS account and the owner's number.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

func (c TwilioConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.From != "" && c.To != ""
}

// TwilioNotifier texts the owner. Numbers in E.164 form go over WhatsApp
// when the sender is a WhatsApp number.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
	to     string
	logger *slog.Logger
}

func NewTwilioNotifier(cfg TwilioConfig, logger *slog.Logger) (*TwilioNotifier, error) {
	if !cfg.Enabled() {
		return nil, errors.New("twilio credentials and numbers are required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		}),
		from:   cfg.From,
		to:     cfg.To,
		logger: logger,
	}, nil
}

func (n *TwilioNotifier) Notify(_ context.Context, subject, message string) error {
	to := n.to
	if strings.HasPrefix(n.from, "whatsapp:") && !strings.HasPrefix(to, "whatsapp:") {
		to = "whatsapp:" + to
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.from)
	params.SetBody(subject + "\n" + message)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	if resp.Sid != nil {
		n.logger.Info("notification sent", "to", n.to, "sid", *resp.Sid)
	} else {
		n.logger.Info("notification sent, but no SID returned", "to", n.to)
	}
	return nil
}

// BookingMessage renders the owner notification for a new booking.
func BookingMessage(b models.Booking) (string, string) {
	subject := "New booking " + b.ReferenceNumber
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", b.Contact.Name, b.Contact.Phone)
	fmt.Fprintf(&sb, "Services: %s\n", strings.Join(b.Services, ", "))
	fmt.Fprintf(&sb, "Property: %s, %s\n", b.Property.Address, b.Property.LawnSize)
	fmt.Fprintf(&sb, "Preferred date: %s", b.Contact.PreferredDate)
	if b.Contact.Notes != "" {
		fmt.Fprintf(&sb, "\nNotes: %s", b.Contact.Notes)
	}
	return subject, sb.String()
}

// InquiryMessage renders the owner notification for a contact form message.
func InquiryMessage(in models.Inquiry) (string, string) {
	subject := "New inquiry from " + in.Name
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s / %s\n", in.Email, in.Phone)
	if in.ServiceInterest != "" {
		fmt.Fprintf(&sb, "Interested in: %s\n", in.ServiceInterest)
	}
	sb.WriteString(in.Message)
	return subject, sb.String()
}
