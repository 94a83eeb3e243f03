package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/college-portal-api/internal/service"
	appErrors "github.com/campushq/college-portal-api/pkg/errors"
	"github.com/campushq/college-portal-api/pkg/response"
)

// DashboardHandler exposes the role-keyed dashboard endpoint.
type DashboardHandler struct {
	dashboards *service.DashboardService
	auth       *service.AuthService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboards *service.DashboardService, auth *service.AuthService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, auth: auth}
}

// Stats godoc
// @Summary Dashboard stats
// @Description Stats block shaped by the session role
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	resp, cached, err := h.dashboards.ForSession(c.Request.Context(), h.auth.Session(claims))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, map[string]interface{}{"cached": cached})
}
