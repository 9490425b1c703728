package models

const (
	MinRating = 1
	MaxRating = 5
)

type Testimonial struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Quote    string `json:"quote"`
}

// ValidRating reports whether r is a star rating the site can display.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// NextTestimonialID is one more than the largest id in list, or 1 when the
// list is empty.
func NextTestimonialID(list []Testimonial) int {
	max := 0
	for _, t := range list {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
