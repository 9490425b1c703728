package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/tommytoyou/bost-lawn-care/models"
)

func TestDailyDigestCoversYesterdayOnly(t *testing.T) {
	ctx := context.Background()
	content := newTestStore(t, nil)
	now := time.Date(2026, 7, 15, 7, 0, 0, 0, time.UTC)

	for _, b := range []models.Booking{
		{ReferenceNumber: "BLC-OLD", Timestamp: time.Date(2026, 7, 13, 23, 0, 0, 0, time.UTC)},
		{ReferenceNumber: "BLC-Y1", Contact: models.ContactDetails{Name: "Ana"}, Services: []string{"Lawn Mowing"}, Timestamp: time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)},
		{ReferenceNumber: "BLC-Y2", Timestamp: time.Date(2026, 7, 14, 23, 59, 0, 0, time.UTC)},
		{ReferenceNumber: "BLC-TODAY", Timestamp: time.Date(2026, 7, 15, 6, 0, 0, 0, time.UTC)},
	} {
		if err := content.AppendBooking(ctx, b); err != nil {
			t.Fatal(err)
		}
	}
	_ = content.AppendInquiry(ctx, models.Inquiry{Name: "Bo", Message: "hi", Timestamp: time.Date(2026, 7, 14, 12, 0, 0, 0, time.UTC)})

	notifier := &fakeNotifier{}
	svc := NewDigestService(content, notifier, "", fixedClock(now), discardLogger())

	d := svc.Collect(ctx)
	if len(d.Bookings) != 2 || d.Bookings[0].ReferenceNumber != "BLC-Y1" || d.Bookings[1].ReferenceNumber != "BLC-Y2" {
		t.Fatalf("bookings = %+v", d.Bookings)
	}
	if len(d.Inquiries) != 1 {
		t.Fatalf("inquiries = %+v", d.Inquiries)
	}

	if err := svc.SendDailyDigest(ctx); err != nil {
		t.Fatalf("SendDailyDigest: %v", err)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("sent = %d, want 1", len(notifier.sent))
	}
	if got := notifier.sent[0].subject; got != "Daily summary for July 14, 2026" {
		t.Fatalf("subject = %q", got)
	}
	if !contains(notifier.sent[0].message, "BLC-Y1 Ana: Lawn Mowing") {
		t.Fatalf("message = %q", notifier.sent[0].message)
	}
}

func TestDailyDigestSkipsQuietDays(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewDigestService(newTestStore(t, nil), notifier, "", nil, discardLogger())
	if err := svc.SendDailyDigest(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("sent %d messages on a quiet day", len(notifier.sent))
	}
}

func TestDailyDigestNotifierError(t *testing.T) {
	ctx := context.Background()
	content := newTestStore(t, nil)
	now := time.Date(2026, 7, 15, 7, 0, 0, 0, time.UTC)
	_ = content.AppendBooking(ctx, models.Booking{ReferenceNumber: "BLC-1", Timestamp: now.Add(-12 * time.Hour)})

	notifier := &fakeNotifier{err: errors.New("no signal")}
	svc := NewDigestService(content, notifier, "", fixedClock(now), discardLogger())
	if err := svc.SendDailyDigest(ctx); err == nil {
		t.Fatal("expected an error from a failing notifier")
	}
}

func TestDigestSchedule(t *testing.T) {
	svc := NewDigestService(newTestStore(t, nil), &fakeNotifier{}, "not a schedule", nil, discardLogger())
	if err := svc.Schedule(cron.New()); err == nil {
		t.Fatal("invalid schedule accepted")
	}

	svc = NewDigestService(newTestStore(t, nil), &fakeNotifier{}, "", nil, discardLogger())
	c := cron.New()
	if err := svc.Schedule(c); err != nil {
		t.Fatalf("default schedule: %v", err)
	}
	if len(c.Entries()) != 1 {
		t.Fatal("digest not registered")
	}
}
