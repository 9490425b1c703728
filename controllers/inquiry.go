package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tommytoyou/bost-lawn-care/services"
	"github.com/tommytoyou/bost-lawn-care/utils"
)

// CreateInquiryInput is the contact form.
type CreateInquiryInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,siteemail"`
	Phone           string `json:"phone" binding:"required,lenientphone"`
	ServiceInterest string `json:"serviceInterest"`
	Message         string `json:"message" binding:"required"`
}

type InquiryHandler struct {
	inquiries *services.InquiryService
}

func NewInquiryHandler(inquiries *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var input CreateInquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		if fields, ok := bindingErrors(err); ok {
			respondValidation(c, fields, nil)
			return
		}
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	inquiry, err := h.inquiries.Submit(c.Request.Context(), services.InquiryInput{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		ServiceInterest: input.ServiceInterest,
		Message:         input.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you! We'll be in touch within 24 hours.",
		"inquiry": inquiry,
	})
}

// GetInquiries lists contact form submissions for the editor.
func (h *InquiryHandler) GetInquiries(c *gin.Context) {
	c.JSON(http.StatusOK, h.inquiries.List(c.Request.Context()))
}
