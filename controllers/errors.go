package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tommytoyou/bost-lawn-care/services"
	"github.com/tommytoyou/bost-lawn-care/utils"
)

// respondError maps a service error to a status code. Validation failures
// carry their field map; anything unrecognized is a 500.
func respondError(c *gin.Context, err error) {
	var verrs services.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		respondValidation(c, verrs, nil)
	case errors.Is(err, services.ErrWizardNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Booking session not found")
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUnknownService):
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown service")
	case errors.Is(err, services.ErrWrongStep),
		errors.Is(err, services.ErrNotAtReview),
		errors.Is(err, services.ErrAlreadySubmitted),
		errors.Is(err, services.ErrNotSubmitted):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		_ = c.Error(err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Something went wrong, please try again")
	}
}

// respondValidation writes a 422. extra fields, if any, are merged into the
// body.
func respondValidation(c *gin.Context, fields services.ValidationErrors, extra gin.H) {
	body := gin.H{"error": "Please correct the highlighted fields", "fields": fields}
	for k, v := range extra {
		body[k] = v
	}
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, body)
}
