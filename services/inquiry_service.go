package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tommytoyou/bost-lawn-care/models"
	"github.com/tommytoyou/bost-lawn-care/utils"
)

// InquiryInput is a contact form as typed by the visitor.
type InquiryInput struct {
	Name            string
	Email           string
	Phone           string
	ServiceInterest string
	Message         string
}

// Validate reports every field problem at once.
func (in InquiryInput) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if utils.IsBlank(in.Name) {
		errs.add("name", MissingField, "Name is required")
	}
	if utils.IsBlank(in.Email) {
		errs.add("email", MissingField, "Email is required")
	} else if !utils.ValidateEmail(in.Email) {
		errs.add("email", InvalidFormat, "Invalid email address")
	}
	if utils.IsBlank(in.Phone) {
		errs.add("phone", MissingField, "Phone number is required")
	} else if !utils.ValidatePhone(in.Phone) {
		errs.add("phone", InvalidFormat, "Invalid phone number")
	}
	if utils.IsBlank(in.Message) {
		errs.add("message", MissingField, "Message is required")
	}
	return errs
}

type InquiryService struct {
	content  *ContentStore
	notifier Notifier
	events   EventPublisher
	now      func() time.Time
	logger   *slog.Logger
}

func NewInquiryService(content *ContentStore, notifier Notifier, events EventPublisher, now func() time.Time, logger *slog.Logger) *InquiryService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &InquiryService{content: content, notifier: notifier, events: events, now: now, logger: logger}
}

// Submit validates and stores a contact form, then notifies the owner.
func (s *InquiryService) Submit(ctx context.Context, in InquiryInput) (models.Inquiry, error) {
	if err := in.Validate().orNil(); err != nil {
		return models.Inquiry{}, err
	}

	inquiry := models.Inquiry{
		ID:              uuid.New(),
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.TrimSpace(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		ServiceInterest: strings.TrimSpace(in.ServiceInterest),
		Message:         strings.TrimSpace(in.Message),
		Timestamp:       s.now().UTC(),
	}
	if err := s.content.AppendInquiry(ctx, inquiry); err != nil {
		return models.Inquiry{}, err
	}
	s.logger.Info("inquiry received", "id", inquiry.ID)

	if s.events != nil {
		if err := s.events.PublishJSON(ctx, EventInquiryReceived, inquiry); err != nil {
			s.logger.Warn("event publish failed", "key", EventInquiryReceived, "error", err)
		}
	}
	if s.notifier != nil {
		subject, msg := InquiryMessage(inquiry)
		if err := s.notifier.Notify(ctx, subject, msg); err != nil {
			s.logger.Warn("inquiry notification failed", "id", inquiry.ID, "error", err)
		}
	}
	return inquiry, nil
}

func (s *InquiryService) List(ctx context.Context) []models.Inquiry {
	return s.content.Inquiries(ctx)
}
