package services

import (
	"context"
	"time"

	"github.com/tommytoyou/bost-lawn-care/models"
)

// TestimonialRotation is how long each testimonial stays featured.
const TestimonialRotation = 5 * time.Second

// FeaturedIndex picks which of n items is showing after elapsed time, one
// per interval, wrapping around.
func FeaturedIndex(n int, elapsed, interval time.Duration) int {
	if n <= 0 {
		return -1
	}
	if elapsed < 0 || interval <= 0 {
		return 0
	}
	return int((elapsed / interval) % time.Duration(n))
}

// FeaturedTestimonial returns the testimonial on show at now for a rotation
// that began at since. ok is false when there are no testimonials.
func (s *ContentStore) FeaturedTestimonial(ctx context.Context, since, now time.Time) (t models.Testimonial, index int, ok bool) {
	list := s.Testimonials(ctx)
	index = FeaturedIndex(len(list), now.Sub(since), TestimonialRotation)
	if index < 0 {
		return models.Testimonial{}, -1, false
	}
	return list[index], index, true
}
