package models

// Service is one of the lawn-care offerings shown on the services page and
// selectable in the booking wizard.
type Service struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	PriceRange  string `json:"priceRange"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// FindService returns the service with the given id from list.
func FindService(list []Service, id int) (Service, bool) {
	for _, s := range list {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
