package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/college-portal-api/internal/dto"
	"github.com/campushq/college-portal-api/internal/models"
	"github.com/campushq/college-portal-api/internal/service"
	"github.com/campushq/college-portal-api/pkg/config"
	appErrors "github.com/campushq/college-portal-api/pkg/errors"
	"github.com/campushq/college-portal-api/pkg/response"
)

// AuthHandler wires the session endpoints to the auth service. Login
// and logout are dispatched by action name from a single POST route.
type AuthHandler struct {
	service *service.AuthService
	config  config.SessionConfig
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{service: svc, config: cfg}
}

// Dispatch godoc
// @Summary Session actions
// @Description Dispatches login and logout by action name
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body dto.ActionEnvelope true "Action payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth [post]
func (h *AuthHandler) Dispatch(c *gin.Context) {
	var envelope dto.ActionEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid action payload"))
		return
	}

	switch envelope.Action {
	case dto.ActionLogin:
		h.login(c, envelope.Data)
	case dto.ActionLogout:
		h.logout(c)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown action"))
	}
}

func (h *AuthHandler) login(c *gin.Context, data json.RawMessage) {
	var req models.LoginRequest
	if err := json.Unmarshal(data, &req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, res.Token, int(h.config.CookieMaxAge.Seconds()))
	response.JSON(c, http.StatusOK, res)
}

func (h *AuthHandler) logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.JSON(c, http.StatusOK, gin.H{"message": "logged out"})
}

// Session godoc
// @Summary Current session
// @Description Returns the authenticated session
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth [get]
func (h *AuthHandler) Session(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, h.service.Session(claims))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.CookieName, token, maxAge, "/", "", h.config.CookieSecure, true)
}
