package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/college-portal-api/internal/dto"
	"github.com/campushq/college-portal-api/internal/service"
	appErrors "github.com/campushq/college-portal-api/pkg/errors"
	"github.com/campushq/college-portal-api/pkg/response"
)

// AdminHandler exposes the admin overview and action endpoints.
type AdminHandler struct {
	admins   *service.AdminService
	teachers *service.TeacherService
	auth     *service.AuthService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(admins *service.AdminService, teachers *service.TeacherService, auth *service.AuthService) *AdminHandler {
	return &AdminHandler{admins: admins, teachers: teachers, auth: auth}
}

// Overview godoc
// @Summary Admin overview
// @Description Students, teachers, subjects, fees and aggregate stats
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admin [get]
func (h *AdminHandler) Overview(c *gin.Context) {
	overview, err := h.admins.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview)
}

// Dispatch godoc
// @Summary Admin actions
// @Description Dispatches student, teacher, subject and fee management by action name
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body dto.ActionEnvelope true "Action payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admin [post]
func (h *AdminHandler) Dispatch(c *gin.Context) {
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
	case dto.ActionAddStudent:
		var req dto.AddStudentRequest
		if !decodeAction(c, envelope.Data, &req) {
			return
		}
		student, err := h.admins.AddStudent(ctx, req)
		respondCreated(c, student, err)
	case dto.ActionUpdateStudent:
		var req dto.UpdateStudentRequest
		if !decodeAction(c, envelope.Data, &req) {
			return
		}
		student, err := h.admins.UpdateStudent(ctx, req)
		respond(c, student, err)
	case dto.ActionDeleteStudent:
		var req dto.DeleteStudentRequest
		if !decodeAction(c, envelope.Data, &req) {
			return
		}
		if err := h.admins.DeleteStudent(ctx, req.ID); err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, gin.H{"deleted": req.ID})
	case dto.ActionAddTeacher:
		var req dto.AddTeacherRequest
		if !decodeAction(c, envelope.Data, &req) {
			return
		}
		teacher, err := h.admins.AddTeacher(ctx, req)
		respondCreated(c, teacher, err)
	case dto.ActionAddSubject:
		var req dto.AddSubjectRequest
		if !decodeAction(c, envelope.Data, &req) {
			return
		}
		subject, err := h.admins.AddSubject(ctx, req)
		respondCreated(c, subject, err)
	case dto.ActionUpdateFee:
		var req dto.UpdateFeeRequest
		if !decodeAction(c, envelope.Data, &req) {
			return
		}
		fee, err := h.admins.UpdateFee(ctx, req)
		respond(c, fee, err)
	case dto.ActionPostNotice:
		// Admins share the teacher notice pipeline but skip the staff
		// record lookup.
		var req dto.PostNoticeRequest
		if !decodeAction(c, envelope.Data, &req) {
			return
		}
		notice, err := h.teachers.PostNoticeAs(ctx, h.auth.Session(claims), req)
		respondCreated(c, notice, err)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown action"))
	}
}

func respondCreated(c *gin.Context, data interface{}, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, data)
}
