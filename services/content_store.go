package services

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/tommytoyou/bost-lawn-care/data"
	"github.com/tommytoyou/bost-lawn-care/models"
	"github.com/tommytoyou/bost-lawn-care/store"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Collection names. Each is stored under the store namespace, e.g.
// "bost_services".
const (
	KeyServices     = "services"
	KeyTestimonials = "testimonials"
	KeyGallery      = "gallery"
	KeySiteContent  = "siteContent"
	KeyBookings     = "bookings"
	KeyInquiries    = "inquiries"
	KeyInvoices     = "invoices"
)

// ContentStore exposes every site collection as a current value plus a
// wholesale setter. Collections never written fall back to the bundled
// defaults. It is created once at startup and shared by all handlers.
type ContentStore struct {
	kv       *store.KV
	defaults *data.Defaults
	logger   *slog.Logger
	tracer   trace.Tracer

	// mu serializes read-modify-write sequences (appends, admin edits).
	mu sync.Mutex
}

func NewContentStore(kv *store.KV, defaults *data.Defaults, logger *slog.Logger) *ContentStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentStore{
		kv:       kv,
		defaults: defaults,
		logger:   logger,
		tracer:   otel.Tracer("github.com/tommytoyou/bost-lawn-care/services"),
	}
}

func (s *ContentStore) Services(ctx context.Context) []models.Service {
	return store.Get(ctx, s.kv, KeyServices, slices.Clone(s.defaults.Services))
}

func (s *ContentStore) SetServices(ctx context.Context, v []models.Service) error {
	return set(ctx, s, KeyServices, v)
}

func (s *ContentStore) Testimonials(ctx context.Context) []models.Testimonial {
	return store.Get(ctx, s.kv, KeyTestimonials, slices.Clone(s.defaults.Testimonials))
}

func (s *ContentStore) SetTestimonials(ctx context.Context, v []models.Testimonial) error {
	return set(ctx, s, KeyTestimonials, v)
}

func (s *ContentStore) Gallery(ctx context.Context) []models.GalleryImage {
	return store.Get(ctx, s.kv, KeyGallery, slices.Clone(s.defaults.Gallery))
}

func (s *ContentStore) SetGallery(ctx context.Context, v []models.GalleryImage) error {
	return set(ctx, s, KeyGallery, v)
}

func (s *ContentStore) SiteContent(ctx context.Context) models.SiteContent {
	return store.Get(ctx, s.kv, KeySiteContent, cloneSiteContent(s.defaults.SiteContent))
}

func (s *ContentStore) SetSiteContent(ctx context.Context, v models.SiteContent) error {
	return set(ctx, s, KeySiteContent, v)
}

func (s *ContentStore) Invoices(ctx context.Context) []models.Invoice {
	return store.Get(ctx, s.kv, KeyInvoices, slices.Clone(s.defaults.Invoices))
}

// Bookings returns every submitted booking, oldest first.
func (s *ContentStore) Bookings(ctx context.Context) []models.Booking {
	return store.Get(ctx, s.kv, KeyBookings, []models.Booking{})
}

// AppendBooking adds b to the end of the booking list.
func (s *ContentStore) AppendBooking(ctx context.Context, b models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, err := load(ctx, s, KeyBookings, []models.Booking{})
	if err != nil {
		return err
	}
	return set(ctx, s, KeyBookings, append(list, b))
}

func (s *ContentStore) Inquiries(ctx context.Context) []models.Inquiry {
	return store.Get(ctx, s.kv, KeyInquiries, []models.Inquiry{})
}

func (s *ContentStore) AppendInquiry(ctx context.Context, in models.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, err := load(ctx, s, KeyInquiries, []models.Inquiry{})
	if err != nil {
		return err
	}
	return set(ctx, s, KeyInquiries, append(list, in))
}

// load is the read half of a read-modify-write. Unlike the getters it fails
// when the backend does, so the write never replaces data it could not see.
func load[T any](ctx context.Context, s *ContentStore, name string, def T) (T, error) {
	v, err := store.Lookup(ctx, s.kv, name, def)
	if err != nil {
		s.logger.Error("content read failed", "collection", name, "error", err)
	}
	return v, err
}

func set[T any](ctx context.Context, s *ContentStore, name string, v T) error {
	ctx, span := s.tracer.Start(ctx, "content.set", trace.WithAttributes(attribute.String("collection", name)))
	defer span.End()
	if err := store.Set(ctx, s.kv, name, v); err != nil {
		span.RecordError(err)
		s.logger.Error("content write failed", "collection", name, "error", err)
		return err
	}
	return nil
}

func cloneSiteContent(c models.SiteContent) models.SiteContent {
	c.About.Paragraphs = slices.Clone(c.About.Paragraphs)
	c.About.Values = slices.Clone(c.About.Values)
	c.About.ServiceArea = slices.Clone(c.About.ServiceArea)
	return c
}
