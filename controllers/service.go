// controllers/service.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tommytoyou/bost-lawn-care/models"
	"github.com/tommytoyou/bost-lawn-care/services"
	"github.com/tommytoyou/bost-lawn-care/utils"
)

// UpdateServiceInput defines the expected JSON structure for editing a
// service. Prices and icons are fixed.
type UpdateServiceInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ServiceView is a service with its icon resolved and a preview-length
// summary of the description.
type ServiceView struct {
	models.Service
	Glyph   string `json:"glyph"`
	Summary string `json:"summary"`
}

type ServiceHandler struct {
	content *services.ContentStore
}

func NewServiceHandler(content *services.ContentStore) *ServiceHandler {
	return &ServiceHandler{content: content}
}

// GetServices lists the services offered, in display order
func (h *ServiceHandler) GetServices(c *gin.Context) {
	list := h.content.Services(c.Request.Context())
	views := make([]ServiceView, 0, len(list))
	for _, s := range list {
		icon := models.ServiceIcon(s.Icon)
		s.Icon = icon.Key()
		views = append(views, ServiceView{
			Service: s,
			Glyph:   icon.Glyph(),
			Summary: utils.TruncateText(s.Description, utils.DefaultTruncateLength),
		})
	}
	c.JSON(http.StatusOK, views)
}

// UpdateService edits a service's name or description
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := h.content.UpdateService(c.Request.Context(), id, services.ServiceEdit{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func intParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}
