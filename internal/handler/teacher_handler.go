package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/college-portal-api/internal/dto"
	"github.com/campushq/college-portal-api/internal/service"
	appErrors "github.com/campushq/college-portal-api/pkg/errors"
	"github.com/campushq/college-portal-api/pkg/response"
)

// TeacherHandler exposes the teacher overview and action endpoints.
type TeacherHandler struct {
	teachers *service.TeacherService
	auth     *service.AuthService
}

// NewTeacherHandler constructs handler.
func NewTeacherHandler(teachers *service.TeacherService, auth *service.AuthService) *TeacherHandler {
	return &TeacherHandler{teachers: teachers, auth: auth}
}

// Overview godoc
// @Summary Teacher overview
// @Description Teacher profile, student roster and subjects taught
// @Tags Teacher
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /teacher [get]
func (h *TeacherHandler) Overview(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	overview, err := h.teachers.Overview(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview)
}

// Dispatch godoc
// @Summary Teacher actions
// @Description Dispatches attendance marking, grade entry and notice posting by action name
// @Tags Teacher
// @Accept json
// @Produce json
// @Param payload body dto.ActionEnvelope true "Action payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /teacher [post]
func (h *TeacherHandler) Dispatch(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var envelope dto.ActionEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid action payload"))
		return
	}

	ctx := c.Request.Context()
	switch envelope.Action {
	case dto.ActionMarkAttendance:
		var req dto.MarkAttendanceRequest
		if !decodeAction(c, envelope.Data, &req) {
			return
		}
		row, err := h.teachers.MarkAttendance(ctx, claims.UserID, req)
		respond(c, row, err)
	case dto.ActionAddMark:
		var req dto.AddMarkRequest
		if !decodeAction(c, envelope.Data, &req) {
			return
		}
		mark, err := h.teachers.AddMark(ctx, claims.UserID, req)
		respond(c, mark, err)
	case dto.ActionUpdateMark:
		var req dto.UpdateMarkRequest
		if !decodeAction(c, envelope.Data, &req) {
			return
		}
		mark, err := h.teachers.UpdateMark(ctx, claims.UserID, req)
		respond(c, mark, err)
	case dto.ActionPostNotice:
		var req dto.PostNoticeRequest
		if !decodeAction(c, envelope.Data, &req) {
			return
		}
		notice, err := h.teachers.PostNotice(ctx, h.auth.Session(claims), req)
		respond(c, notice, err)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown action"))
	}
}

func decodeAction(c *gin.Context, data json.RawMessage, dst interface{}) bool {
	if len(data) == 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "missing action data"))
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid action data"))
		return false
	}
	return true
}

func respond(c *gin.Context, data interface{}, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, data)
}
