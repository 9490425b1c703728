// controllers/invoice.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tommytoyou/bost-lawn-care/models"
	"github.com/tommytoyou/bost-lawn-care/services"
	"github.com/tommytoyou/bost-lawn-care/utils"
)

type InvoiceHandler struct {
	content *services.ContentStore
}

func NewInvoiceHandler(content *services.ContentStore) *InvoiceHandler {
	return &InvoiceHandler{content: content}
}

// GetInvoice looks up an invoice by number for the payment page. Lookup is
// case-insensitive.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, ok := models.FindInvoice(h.content.Invoices(c.Request.Context()), c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found. Please check the invoice number.")
		return
	}
	c.JSON(http.StatusOK, invoice)
}
