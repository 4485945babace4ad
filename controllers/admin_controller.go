package controllers

import (
	"net/http"
	"strings"

	"foundation-backend/middleware"
	"foundation-backend/services"
	"foundation-backend/utils"

	"github.com/gin-gonic/gin"
)

type createAdminPayload struct {
	FullName string `json:"full_name" binding:"required,notblank"`
	Username string `json:"username" binding:"required,notblank"`
	Password string `json:"password" binding:"required,min=8"`
}

// AdminController จัดการบัญชีผู้ดูแลระบบ
type AdminController struct {
	Svc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{Svc: svc}
}

func (ctl *AdminController) List(c *gin.Context) {
	admins, err := ctl.Svc.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, admins)
}

func (ctl *AdminController) Create(c *gin.Context) {
	var payload createAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	admin, err := ctl.Svc.Create(c.Request.Context(), strings.TrimSpace(payload.FullName), payload.Username, payload.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, admin)
}

func (ctl *AdminController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok || !confirmed(c) {
		return
	}
	var actor uint
	if claims, ok := middleware.ClaimsFrom(c); ok {
		actor = claims.Sub
	}
	if err := ctl.Svc.Delete(c.Request.Context(), id, actor); err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}
