package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tommytoyou/bost-lawn-care/models"
	"github.com/tommytoyou/bost-lawn-care/services"
	"github.com/tommytoyou/bost-lawn-care/utils"
)

type PropertyInput struct {
	Address  string `json:"address"`
	LawnSize string `json:"lawnSize"`
}

type ContactInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PreferredDate string `json:"preferredDate"`
	Notes         string `json:"notes"`
}

// BookingHandler exposes the booking wizard. Every endpoint answers with the
// wizard's current view.
type BookingHandler struct {
	bookings *services.BookingService
	content  *services.ContentStore
}

func NewBookingHandler(bookings *services.BookingService, content *services.ContentStore) *BookingHandler {
	return &BookingHandler{bookings: bookings, content: content}
}

// StartWizard opens a wizard; ?service=<id> preselects a service.
func (h *BookingHandler) StartWizard(c *gin.Context) {
	view, err := h.bookings.Start(c.Request.Context(), c.Query("service"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *BookingHandler) GetWizard(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	h.respond(c)(h.bookings.View(c.Request.Context(), id))
}

func (h *BookingHandler) ToggleService(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	serviceID, ok := intParam(c, "serviceId")
	if !ok {
		return
	}
	h.respond(c)(h.bookings.ToggleService(c.Request.Context(), id, serviceID))
}

func (h *BookingHandler) SetProperty(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	var input PropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	h.respond(c)(h.bookings.SetProperty(c.Request.Context(), id, models.PropertyDetails{
		Address:  input.Address,
		LawnSize: input.LawnSize,
	}))
}

func (h *BookingHandler) SetContact(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	h.respond(c)(h.bookings.SetContact(c.Request.Context(), id, models.ContactDetails(input)))
}

func (h *BookingHandler) Next(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	h.respond(c)(h.bookings.Next(c.Request.Context(), id))
}

func (h *BookingHandler) Back(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	h.respond(c)(h.bookings.Back(c.Request.Context(), id))
}

func (h *BookingHandler) Submit(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	h.respond(c)(h.bookings.Submit(c.Request.Context(), id))
}

// Reset is "book another service" after a submission.
func (h *BookingHandler) Reset(c *gin.Context) {
	id, ok := wizardID(c)
	if !ok {
		return
	}
	h.respond(c)(h.bookings.Reset(c.Request.Context(), id))
}

// GetBookings lists submitted bookings for the editor, newest first.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	list := h.content.Bookings(c.Request.Context())
	out := make([]models.Booking, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		out = append(out, list[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) respond(c *gin.Context) func(services.WizardView, error) {
	return func(view services.WizardView, err error) {
		var verrs services.ValidationErrors
		switch {
		case err == nil:
			c.JSON(http.StatusOK, view)
		case errors.As(err, &verrs):
			respondValidation(c, verrs, gin.H{"wizard": view})
		default:
			respondError(c, err)
		}
	}
}

func wizardID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Booking session not found")
		return uuid.Nil, false
	}
	return id, true
}
