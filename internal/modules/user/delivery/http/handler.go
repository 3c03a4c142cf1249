package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shelterworks/petadopt/internal/modules/user/dto"
	"github.com/shelterworks/petadopt/internal/modules/user/service"
	"github.com/shelterworks/petadopt/pkg/response"
	"github.com/shelterworks/petadopt/pkg/session"
	"github.com/shelterworks/petadopt/pkg/validator"
)

type AuthHandler struct {
	service      service.AuthService
	sessionTTL   time.Duration
	secureCookie bool
}

func NewAuthHandler(service service.AuthService, sessionTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		service:      service,
		sessionTTL:   sessionTTL,
		secureCookie: secureCookie,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := h.service.Register(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{UserID: user.ID})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, token, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(h.sessionTTL.Seconds()))
	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(session.CookieName)

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		response.ResponseError(c, err)
		return
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	res, err := h.service.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, maxAge, "/", "", h.secureCookie, true)
}
