package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tommytoyou/bost-lawn-care/utils"
)

type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

// AuthHandler signs the site editor in and out.
type AuthHandler struct {
	gate         *utils.AdminGate
	secureCookie bool
	logger       *slog.Logger
}

// NewAuthHandler returns the login handlers. secureCookie should be true
// whenever the site is served over HTTPS.
func NewAuthHandler(gate *utils.AdminGate, secureCookie bool, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{gate: gate, secureCookie: secureCookie, logger: logger}
}

// controllers/auth.go
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if !h.gate.CheckPassword(input.Password) {
		h.logger.Warn("admin login failed", "ip", c.ClientIP())
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := h.gate.GenerateToken()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// No max-age: the cookie lasts until the browser session ends.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.AdminCookieName, token, 0, "/", "", h.secureCookie, true)

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.AdminCookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
