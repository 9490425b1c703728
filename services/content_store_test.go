package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tommytoyou/bost-lawn-care/models"
	"github.com/tommytoyou/bost-lawn-care/store"
)

func TestContentStoreFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)

	if got := s.Services(ctx); len(got) != 6 {
		t.Fatalf("services = %d, want 6 defaults", len(got))
	}
	if got := s.Testimonials(ctx); len(got) != 3 {
		t.Fatalf("testimonials = %d, want 3 defaults", len(got))
	}
	if got := s.Bookings(ctx); got == nil || len(got) != 0 {
		t.Fatalf("bookings = %#v, want empty slice", got)
	}
	if got := s.SiteContent(ctx); got.Business.Name == "" {
		t.Fatal("site content default has no business name")
	}
}

func TestContentStoreDefaultsAreNotShared(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)

	list := s.Services(ctx)
	list[0].Name = "Changed"
	if got := s.Services(ctx); got[0].Name == "Changed" {
		t.Fatal("mutating a read leaked into the defaults")
	}
	site := s.SiteContent(ctx)
	site.About.Paragraphs[0] = "Changed"
	if got := s.SiteContent(ctx); got.About.Paragraphs[0] == "Changed" {
		t.Fatal("mutating site content leaked into the defaults")
	}
}

func TestContentStorePersistsWrites(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	s := newTestStore(t, backend)

	list := s.Gallery(ctx)
	list = list[:1]
	if err := s.SetGallery(ctx, list); err != nil {
		t.Fatalf("SetGallery: %v", err)
	}
	if _, ok, _ := backend.Load(ctx, "bost_gallery"); !ok {
		t.Fatal("gallery not stored under bost_gallery")
	}

	reopened := newTestStore(t, backend)
	if got := reopened.Gallery(ctx); len(got) != 1 {
		t.Fatalf("gallery after reopen = %d items, want 1", len(got))
	}
}

func TestContentStoreMalformedValueUsesDefault(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	_ = backend.Save(ctx, "bost_testimonials", []byte("[{oops"))
	s := newTestStore(t, backend)

	if got := s.Testimonials(ctx); len(got) != 3 {
		t.Fatalf("testimonials = %d, want defaults", len(got))
	}
}

func TestAppendBookingAndInquiry(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)

	for _, ref := range []string{"BLC-1-0001", "BLC-1-0002"} {
		if err := s.AppendBooking(ctx, models.Booking{ReferenceNumber: ref}); err != nil {
			t.Fatal(err)
		}
	}
	got := s.Bookings(ctx)
	if len(got) != 2 || got[0].ReferenceNumber != "BLC-1-0001" || got[1].ReferenceNumber != "BLC-1-0002" {
		t.Fatalf("bookings = %+v", got)
	}

	if err := s.AppendInquiry(ctx, models.Inquiry{Name: "Lee", Timestamp: time.Now()}); err != nil {
		t.Fatal(err)
	}
	if got := s.Inquiries(ctx); len(got) != 1 || got[0].Name != "Lee" {
		t.Fatalf("inquiries = %+v", got)
	}
}

func TestAppendBookingReportsWriteFailure(t *testing.T) {
	s := newTestStore(t, failingBackend{store.NewMemoryBackend()})
	if err := s.AppendBooking(context.Background(), models.Booking{}); err == nil {
		t.Fatal("AppendBooking succeeded on a failing backend")
	}
}

func TestAppendKeepsStoredDataWhenReadFails(t *testing.T) {
	ctx := context.Background()
	backend := newFlakyBackend()
	s := newTestStore(t, backend)

	for _, ref := range []string{"BLC-1-0001", "BLC-1-0002", "BLC-1-0003"} {
		if err := s.AppendBooking(ctx, models.Booking{ReferenceNumber: ref}); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.AppendInquiry(ctx, models.Inquiry{Name: "Lee"}); err != nil {
		t.Fatal(err)
	}

	backend.failLoads("bost_bookings", 1)
	if err := s.AppendBooking(ctx, models.Booking{ReferenceNumber: "BLC-1-0004"}); err == nil {
		t.Fatal("AppendBooking succeeded although the bookings could not be read")
	}
	if got := s.Bookings(ctx); len(got) != 3 || got[0].ReferenceNumber != "BLC-1-0001" {
		t.Fatalf("bookings after failed append = %+v", got)
	}

	backend.failLoads("bost_inquiries", 1)
	if err := s.AppendInquiry(ctx, models.Inquiry{Name: "Sam"}); err == nil {
		t.Fatal("AppendInquiry succeeded although the inquiries could not be read")
	}
	if got := s.Inquiries(ctx); len(got) != 1 || got[0].Name != "Lee" {
		t.Fatalf("inquiries after failed append = %+v", got)
	}
}

func TestFeaturedIndex(t *testing.T) {
	tests := []struct {
		n       int
		elapsed time.Duration
		want    int
	}{
		{0, time.Minute, -1},
		{3, 0, 0},
		{3, 4999 * time.Millisecond, 0},
		{3, 5 * time.Second, 1},
		{3, 14 * time.Second, 2},
		{3, 15 * time.Second, 0},
		{3, -time.Second, 0},
	}
	for _, tt := range tests {
		if got := FeaturedIndex(tt.n, tt.elapsed, TestimonialRotation); got != tt.want {
			t.Errorf("FeaturedIndex(%d, %v) = %d, want %d", tt.n, tt.elapsed, got, tt.want)
		}
	}
}

func TestFeaturedTestimonial(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	got, index, ok := s.FeaturedTestimonial(ctx, since, since.Add(6*time.Second))
	if !ok || index != 1 || got.ID != s.Testimonials(ctx)[1].ID {
		t.Fatalf("featured = %+v index %d ok %v", got, index, ok)
	}

	if err := s.SetTestimonials(ctx, []models.Testimonial{}); err != nil {
		t.Fatal(err)
	}
	if _, _, ok := s.FeaturedTestimonial(ctx, since, since); ok {
		t.Fatal("featured testimonial returned from an empty list")
	}
}

func TestOverview(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, nil)
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

	for i, age := range []time.Duration{72 * time.Hour, 48 * time.Hour, 24 * time.Hour, time.Hour} {
		b := models.Booking{
			ReferenceNumber: fmt.Sprintf("BLC-X-%04d", i),
			Services:        []string{"Lawn Mowing", "Leaf Removal"},
			Contact:         models.ContactDetails{Name: "Customer"},
			Timestamp:       now.Add(-age),
		}
		if err := s.AppendBooking(ctx, b); err != nil {
			t.Fatal(err)
		}
	}

	o := s.Overview(ctx, now)
	if o.TotalBookings != 4 || o.TotalInquiries != 0 || o.TotalTestimonials != 3 || o.TotalGallery != 4 {
		t.Fatalf("counts = %+v", o)
	}
	if len(o.RecentBookings) != 3 {
		t.Fatalf("recent = %d, want 3", len(o.RecentBookings))
	}
	want := []string{"Today", "Yesterday", "2 days ago"}
	for i, r := range o.RecentBookings {
		if r.Submitted != want[i] {
			t.Errorf("recent[%d].Submitted = %q, want %q", i, r.Submitted, want[i])
		}
	}
	if o.RecentBookings[0].ReferenceNumber != "BLC-X-0003" || o.RecentBookings[0].Services != "Lawn Mowing, Leaf Removal" {
		t.Fatalf("newest = %+v", o.RecentBookings[0])
	}
}

func TestErrNotFoundWrapping(t *testing.T) {
	s := newTestStore(t, nil)
	err := s.DeleteGalleryImage(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
