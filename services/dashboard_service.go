package services

import (
	"context"
	"strings"
	"time"

	"github.com/tommytoyou/bost-lawn-care/utils"
)

const recentBookingLimit = 3

type DashboardOverview struct {
	TotalBookings     int             `json:"totalBookings"`
	TotalInquiries    int             `json:"totalInquiries"`
	TotalTestimonials int             `json:"totalTestimonials"`
	TotalGallery      int             `json:"totalGallery"`
	RecentBookings    []RecentBooking `json:"recentBookings"`
}

type RecentBooking struct {
	ReferenceNumber string `json:"referenceNumber"`
	Name            string `json:"name"`
	Services        string `json:"services"`
	Submitted       string `json:"submitted"` // "Today", "Yesterday", "3 days ago"
}

// Overview summarizes the collections for the admin landing page.
func (s *ContentStore) Overview(ctx context.Context, now time.Time) DashboardOverview {
	bookings := s.Bookings(ctx)
	overview := DashboardOverview{
		TotalBookings:     len(bookings),
		TotalInquiries:    len(s.Inquiries(ctx)),
		TotalTestimonials: len(s.Testimonials(ctx)),
		TotalGallery:      len(s.Gallery(ctx)),
		RecentBookings:    []RecentBooking{},
	}

	// Bookings are appended, so the newest are at the end.
	for i := len(bookings) - 1; i >= 0 && len(overview.RecentBookings) < recentBookingLimit; i-- {
		b := bookings[i]
		overview.RecentBookings = append(overview.RecentBookings, RecentBooking{
			ReferenceNumber: b.ReferenceNumber,
			Name:            b.Contact.Name,
			Services:        strings.Join(b.Services, ", "),
			Submitted:       utils.DaysAgoLabel(b.Timestamp.In(now.Location()), now),
		})
	}
	return overview
}
