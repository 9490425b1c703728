package services

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tommytoyou/bost-lawn-care/models"
	"github.com/tommytoyou/bost-lawn-care/utils"
)

// Step is a screen of the booking wizard.
type Step int

const (
	StepServices Step = iota + 1
	StepProperty
	StepContact
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepServices:
		return "Services"
	case StepProperty:
		return "Property"
	case StepContact:
		return "Contact"
	case StepReview:
		return "Review"
	default:
		return "Unknown"
	}
}

// BookingWizard is the four-step booking form:
// Services -> Property -> Contact -> Review -> Submitted.
//
// Next only advances when the current step validates. Fields can only be
// changed on the step that owns them, so everything that reaches Review has
// been validated. A BookingWizard is not safe for concurrent use.
type BookingWizard struct {
	step      Step
	submitted bool
	reference string

	selected []int
	property models.PropertyDetails
	contact  models.ContactDetails
	errors   ValidationErrors
}

// NewBookingWizard starts a wizard at the services step. When prefill names
// a service in catalog it becomes the only selected service; anything else
// (empty, non-numeric, unknown id) starts with nothing selected.
func NewBookingWizard(catalog []models.Service, prefill string) *BookingWizard {
	w := &BookingWizard{step: StepServices, errors: ValidationErrors{}}
	if id, ok := parseServiceID(prefill); ok {
		if _, exists := models.FindService(catalog, id); exists {
			w.selected = []int{id}
		}
	}
	return w
}

func (w *BookingWizard) Step() Step                       { return w.step }
func (w *BookingWizard) Submitted() bool                  { return w.submitted }
func (w *BookingWizard) ReferenceNumber() string          { return w.reference }
func (w *BookingWizard) Property() models.PropertyDetails { return w.property }
func (w *BookingWizard) Contact() models.ContactDetails   { return w.contact }

// SelectedServices returns the selected ids in the order they were picked.
func (w *BookingWizard) SelectedServices() []int {
	return append([]int{}, w.selected...)
}

// Errors returns the errors from the last Next call.
func (w *BookingWizard) Errors() ValidationErrors {
	out := make(ValidationErrors, len(w.errors))
	for k, v := range w.errors {
		out[k] = v
	}
	return out
}

func (w *BookingWizard) editable(step Step) error {
	if w.submitted {
		return ErrAlreadySubmitted
	}
	if w.step != step {
		return ErrWrongStep
	}
	return nil
}

// ToggleService adds id to the selection, or removes it if already selected.
func (w *BookingWizard) ToggleService(catalog []models.Service, id int) error {
	if err := w.editable(StepServices); err != nil {
		return err
	}
	if i := slices.Index(w.selected, id); i >= 0 {
		w.selected = slices.Delete(w.selected, i, i+1)
		return nil
	}
	if _, ok := models.FindService(catalog, id); !ok {
		return ErrUnknownService
	}
	w.selected = append(w.selected, id)
	return nil
}

func (w *BookingWizard) SetProperty(p models.PropertyDetails) error {
	if err := w.editable(StepProperty); err != nil {
		return err
	}
	w.property = p
	return nil
}

func (w *BookingWizard) SetContact(c models.ContactDetails) error {
	if err := w.editable(StepContact); err != nil {
		return err
	}
	w.contact = c
	return nil
}

// Validate checks the current step. It has no side effects.
func (w *BookingWizard) Validate() ValidationErrors {
	errs := ValidationErrors{}
	switch w.step {
	case StepServices:
		if len(w.selected) == 0 {
			errs.add("services", MissingSelection, "Please select at least one service")
		}
	case StepProperty:
		if utils.IsBlank(w.property.Address) {
			errs.add("address", MissingField, "Address is required")
		}
		if w.property.LawnSize == "" {
			errs.add("lawnSize", MissingField, "Please select lawn size")
		} else if !models.ValidLawnSize(w.property.LawnSize) {
			errs.add("lawnSize", InvalidFormat, "Unknown lawn size")
		}
	case StepContact:
		c := w.contact
		if utils.IsBlank(c.Name) {
			errs.add("name", MissingField, "Name is required")
		}
		if utils.IsBlank(c.Email) {
			errs.add("email", MissingField, "Email is required")
		} else if !utils.ValidateEmail(c.Email) {
			errs.add("email", InvalidFormat, "Invalid email address")
		}
		if utils.IsBlank(c.Phone) {
			errs.add("phone", MissingField, "Phone number is required")
		} else if !utils.ValidatePhone(c.Phone) {
			errs.add("phone", InvalidFormat, "Invalid phone number")
		}
		if c.PreferredDate == "" {
			errs.add("preferredDate", MissingField, "Please select a preferred date")
		} else if !utils.ValidateDate(c.PreferredDate) {
			errs.add("preferredDate", InvalidFormat, "Invalid date")
		}
	}
	return errs
}

// Next validates the current step and, if it passes, moves forward one step
// (never past Review). Failures are kept on the wizard and returned as
// ValidationErrors.
func (w *BookingWizard) Next() error {
	if w.submitted {
		return ErrAlreadySubmitted
	}
	w.errors = w.Validate()
	if len(w.errors) > 0 {
		return w.Errors()
	}
	w.step = min(w.step+1, StepReview)
	return nil
}

// Back moves to the previous step without validating (never before
// Services).
func (w *BookingWizard) Back() error {
	if w.submitted {
		return ErrAlreadySubmitted
	}
	w.step = max(w.step-1, StepServices)
	return nil
}

// BuildBooking snapshots the wizard into a booking, resolving service ids to
// their current names. Ids no longer in catalog are left out.
func (w *BookingWizard) BuildBooking(catalog []models.Service, reference string, at time.Time) models.Booking {
	names := make([]string, 0, len(w.selected))
	for _, id := range w.selected {
		if s, ok := models.FindService(catalog, id); ok {
			names = append(names, s.Name)
		}
	}
	return models.Booking{
		ReferenceNumber: reference,
		Services:        names,
		Property:        w.property,
		Contact:         w.contact,
		Timestamp:       at.UTC(),
	}
}

// Submit finalizes the booking from the review step. persist is called with
// the built booking; the wizard only moves to Submitted if it succeeds.
func (w *BookingWizard) Submit(catalog []models.Service, refs *utils.ReferenceGenerator, persist func(models.Booking) error) (models.Booking, error) {
	if w.submitted {
		return models.Booking{}, ErrAlreadySubmitted
	}
	if w.step != StepReview {
		return models.Booking{}, ErrNotAtReview
	}
	ref, at := refs.Next()
	booking := w.BuildBooking(catalog, ref, at)
	if err := persist(booking); err != nil {
		return models.Booking{}, err
	}
	w.reference = ref
	w.submitted = true
	return booking, nil
}

// Reset ("book another") returns a submitted wizard to the first step with
// every field cleared.
func (w *BookingWizard) Reset() error {
	if !w.submitted {
		return ErrNotSubmitted
	}
	*w = BookingWizard{step: StepServices, errors: ValidationErrors{}}
	return nil
}

func parseServiceID(s string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return id, true
}
