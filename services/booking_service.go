package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tommytoyou/bost-lawn-care/models"
	"github.com/tommytoyou/bost-lawn-care/utils"
)

// WizardView is what the booking page renders for one wizard.
type WizardView struct {
	ID               uuid.UUID              `json:"id"`
	Step             Step                   `json:"step"`
	StepLabel        string                 `json:"stepLabel"`
	Submitted        bool                   `json:"submitted"`
	ReferenceNumber  string                 `json:"referenceNumber,omitempty"`
	SelectedServices []int                  `json:"selectedServices"`
	Property         models.PropertyDetails `json:"property"`
	Contact          models.ContactDetails  `json:"contact"`
	Errors           ValidationErrors       `json:"errors"`
	LawnSizes        []string               `json:"lawnSizes"`
	Review           *ReviewSummary         `json:"review,omitempty"`
}

// ReviewSummary is the read-only recap shown on the review step and after
// submission.
type ReviewSummary struct {
	Services      []ReviewService `json:"services"`
	Address       string          `json:"address"`
	LawnSize      string          `json:"lawnSize"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	PreferredDate string          `json:"preferredDate"`
	Notes         string          `json:"notes,omitempty"`
}

type ReviewService struct {
	Name       string `json:"name"`
	PriceRange string `json:"priceRange"`
}

// BookingService drives booking wizards on behalf of HTTP handlers.
type BookingService struct {
	content  *ContentStore
	sessions *WizardSessions
	refs     *utils.ReferenceGenerator
	notifier Notifier
	events   EventPublisher
	logger   *slog.Logger
}

// NewBookingService wires the booking flow. notifier and events may be nil.
func NewBookingService(content *ContentStore, sessions *WizardSessions, refs *utils.ReferenceGenerator, notifier Notifier, events EventPublisher, logger *slog.Logger) *BookingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookingService{
		content:  content,
		sessions: sessions,
		refs:     refs,
		notifier: notifier,
		events:   events,
		logger:   logger,
	}
}

// Start opens a new wizard, optionally with one service preselected.
func (s *BookingService) Start(ctx context.Context, prefill string) (WizardView, error) {
	catalog := s.content.Services(ctx)
	w := NewBookingWizard(catalog, prefill)
	id := s.sessions.Create(w)
	return s.view(id, w, catalog), nil
}

func (s *BookingService) View(ctx context.Context, id uuid.UUID) (WizardView, error) {
	return s.do(ctx, id, func(*BookingWizard, []models.Service) error { return nil })
}

func (s *BookingService) ToggleService(ctx context.Context, id uuid.UUID, serviceID int) (WizardView, error) {
	return s.do(ctx, id, func(w *BookingWizard, catalog []models.Service) error {
		return w.ToggleService(catalog, serviceID)
	})
}

func (s *BookingService) SetProperty(ctx context.Context, id uuid.UUID, p models.PropertyDetails) (WizardView, error) {
	return s.do(ctx, id, func(w *BookingWizard, _ []models.Service) error {
		return w.SetProperty(p)
	})
}

func (s *BookingService) SetContact(ctx context.Context, id uuid.UUID, c models.ContactDetails) (WizardView, error) {
	return s.do(ctx, id, func(w *BookingWizard, _ []models.Service) error {
		return w.SetContact(c)
	})
}

// Next returns the updated view even when validation fails, so callers can
// show the field errors.
func (s *BookingService) Next(ctx context.Context, id uuid.UUID) (WizardView, error) {
	return s.do(ctx, id, func(w *BookingWizard, _ []models.Service) error {
		return w.Next()
	})
}

func (s *BookingService) Back(ctx context.Context, id uuid.UUID) (WizardView, error) {
	return s.do(ctx, id, func(w *BookingWizard, _ []models.Service) error {
		return w.Back()
	})
}

// Submit stores the booking, then tells the owner and downstream consumers.
// Notification failures are logged and never fail the submission.
func (s *BookingService) Submit(ctx context.Context, id uuid.UUID) (WizardView, error) {
	var booking models.Booking
	view, err := s.do(ctx, id, func(w *BookingWizard, catalog []models.Service) error {
		b, err := w.Submit(catalog, s.refs, func(b models.Booking) error {
			return s.content.AppendBooking(ctx, b)
		})
		booking = b
		return err
	})
	if err != nil {
		return view, err
	}

	s.logger.Info("booking submitted", "reference", booking.ReferenceNumber, "services", len(booking.Services))
	s.announce(ctx, EventBookingSubmitted, booking)
	if s.notifier != nil {
		subject, msg := BookingMessage(booking)
		if err := s.notifier.Notify(ctx, subject, msg); err != nil {
			s.logger.Warn("booking notification failed", "reference", booking.ReferenceNumber, "error", err)
		}
	}
	return view, nil
}

func (s *BookingService) Reset(ctx context.Context, id uuid.UUID) (WizardView, error) {
	return s.do(ctx, id, func(w *BookingWizard, _ []models.Service) error {
		return w.Reset()
	})
}

func (s *BookingService) announce(ctx context.Context, key string, v any) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishJSON(ctx, key, v); err != nil {
		s.logger.Warn("event publish failed", "key", key, "error", err)
	}
}

func (s *BookingService) do(ctx context.Context, id uuid.UUID, fn func(*BookingWizard, []models.Service) error) (WizardView, error) {
	catalog := s.content.Services(ctx)
	var view WizardView
	err := s.sessions.Do(id, func(w *BookingWizard) error {
		err := fn(w, catalog)
		view = s.view(id, w, catalog)
		return err
	})
	return view, err
}

func (s *BookingService) view(id uuid.UUID, w *BookingWizard, catalog []models.Service) WizardView {
	v := WizardView{
		ID:               id,
		Step:             w.Step(),
		StepLabel:        w.Step().String(),
		Submitted:        w.Submitted(),
		ReferenceNumber:  w.ReferenceNumber(),
		SelectedServices: w.SelectedServices(),
		Property:         w.Property(),
		Contact:          w.Contact(),
		Errors:           w.Errors(),
		LawnSizes:        append([]string{}, models.LawnSizes...),
	}
	if w.Step() == StepReview || w.Submitted() {
		v.Review = buildReview(w, catalog)
	}
	return v
}

func buildReview(w *BookingWizard, catalog []models.Service) *ReviewSummary {
	r := &ReviewSummary{
		Services:      []ReviewService{},
		Address:       w.Property().Address,
		LawnSize:      w.Property().LawnSize,
		Name:          w.Contact().Name,
		Email:         w.Contact().Email,
		Phone:         w.Contact().Phone,
		PreferredDate: utils.FormatDate(w.Contact().PreferredDate),
		Notes:         w.Contact().Notes,
	}
	for _, id := range w.SelectedServices() {
		if svc, ok := models.FindService(catalog, id); ok {
			r.Services = append(r.Services, ReviewService{Name: svc.Name, PriceRange: svc.PriceRange})
		}
	}
	return r
}
