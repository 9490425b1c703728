// services/digest_service.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/tommytoyou/bost-lawn-care/models"
	"github.com/tommytoyou/bost-lawn-care/utils"
)

// DefaultDigestSchedule runs the digest every morning at 7.
const DefaultDigestSchedule = "0 7 * * *"

// DigestService texts the owner a summary of the previous day's bookings
// and inquiries.
type DigestService struct {
	content  *ContentStore
	notifier Notifier
	schedule string
	now      func() time.Time
	logger   *slog.Logger
}

func NewDigestService(content *ContentStore, notifier Notifier, schedule string, now func() time.Time, logger *slog.Logger) *DigestService {
	if schedule == "" {
		schedule = DefaultDigestSchedule
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DigestService{content: content, notifier: notifier, schedule: schedule, now: now, logger: logger}
}

// Schedule registers the daily digest on c.
func (s *DigestService) Schedule(c *cron.Cron) error {
	if _, err := c.AddFunc(s.schedule, func() {
		if err := s.SendDailyDigest(context.Background()); err != nil {
			s.logger.Error("daily digest failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule digest %q: %w", s.schedule, err)
	}
	s.logger.Info("digest scheduler registered", "schedule", s.schedule)
	return nil
}

// Digest is one day's activity.
type Digest struct {
	Day       time.Time
	Bookings  []models.Booking
	Inquiries []models.Inquiry
}

func (d Digest) Empty() bool {
	return len(d.Bookings) == 0 && len(d.Inquiries) == 0
}

// Collect gathers everything timestamped on the calendar day before now, in
// now's location.
func (s *DigestService) Collect(ctx context.Context) Digest {
	now := s.now()
	end := utils.BeginningOfDay(now)
	start := end.AddDate(0, 0, -1)
	within := func(t time.Time) bool {
		t = t.In(now.Location())
		return !t.Before(start) && t.Before(end)
	}

	d := Digest{Day: start}
	for _, b := range s.content.Bookings(ctx) {
		if within(b.Timestamp) {
			d.Bookings = append(d.Bookings, b)
		}
	}
	for _, in := range s.content.Inquiries(ctx) {
		if within(in.Timestamp) {
			d.Inquiries = append(d.Inquiries, in)
		}
	}
	return d
}

// SendDailyDigest sends yesterday's digest. Quiet days send nothing.
func (s *DigestService) SendDailyDigest(ctx context.Context) error {
	d := s.Collect(ctx)
	if d.Empty() {
		s.logger.Info("no activity for daily digest", "day", d.Day.Format(utils.DateLayout))
		return nil
	}
	subject, msg := DigestMessage(d)
	if err := s.notifier.Notify(ctx, subject, msg); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	s.logger.Info("daily digest sent", "bookings", len(d.Bookings), "inquiries", len(d.Inquiries))
	return nil
}

func DigestMessage(d Digest) (string, string) {
	subject := "Daily summary for " + d.Day.Format("January 2, 2006")
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d new booking(s), %d new inquiry(ies)", len(d.Bookings), len(d.Inquiries))
	for _, b := range d.Bookings {
		fmt.Fprintf(&sb, "\n- %s %s: %s", b.ReferenceNumber, b.Contact.Name, strings.Join(b.Services, ", "))
	}
	for _, in := range d.Inquiries {
		fmt.Fprintf(&sb, "\n- %s: %s", in.Name, utils.TruncateText(in.Message, 60))
	}
	return subject, sb.String()
}
