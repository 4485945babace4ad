package controllers

import (
	"net/http"

	"foundation-backend/middleware"
	"foundation-backend/models"
	"foundation-backend/services"
	"foundation-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TeacherController struct {
	*CrudController[models.Teacher, TeacherInput]
	Access *services.TeacherAccessService
	Log    *zap.Logger
}

func NewTeacherController(svc *services.ImageCrudService[models.Teacher], access *services.TeacherAccessService, log *zap.Logger) *TeacherController {
	return &TeacherController{
		CrudController: NewCrudController[models.Teacher, TeacherInput](svc, plain(TeacherInput.apply)),
		Access:         access,
		Log:            log,
	}
}

// IssueAccessCode POST /api/admin/teachers/:id/access-code รหัสดิบแสดงครั้งเดียว
func (ctl *TeacherController) IssueAccessCode(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	issued, err := ctl.Access.IssueCode(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	ctl.Log.Info("teacher access code issued", zap.Uint("teacher_id", id), zap.Time("expires_at", issued.ExpiresAt))
	utils.JSONSuccess(c, http.StatusCreated, issued)
}

// Login POST /api/teacher/login {"code":"AB4D93KF"}
func (ctl *TeacherController) Login(c *gin.Context) {
	var in AccessCodeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	session, err := ctl.Access.Login(c.Request.Context(), in.Code)
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

// Me GET /api/teacher/me ครูเห็นเฉพาะนักเรียนที่ตัวเองแนะนำ
func (ctl *TeacherController) Me(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not signed in")
		return
	}
	dash, err := ctl.Access.Dashboard(c.Request.Context(), claims.Sub)
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, dash)
}

// Logout POST /api/teacher/logout
func (ctl *TeacherController) Logout(c *gin.Context) {
	if err := ctl.Access.Logout(c.Request.Context(), middleware.TokenFrom(c)); err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"signed_out": true})
}
