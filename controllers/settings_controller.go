package controllers

import (
	"net/http"

	"foundation-backend/services"
	"foundation-backend/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Svc *services.SettingsService
}

func NewSettingsController(svc *services.SettingsService) *SettingsController {
	return &SettingsController{Svc: svc}
}

// GET /api/admin/settings/:id
func (ctl *SettingsController) Get(c *gin.Context) {
	row, err := ctl.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, row)
}

// PUT /api/admin/settings/:id {"value": <any JSON>} สร้างใหม่ถ้ายังไม่มี
func (ctl *SettingsController) Put(c *gin.Context) {
	var payload SettingInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	row, err := ctl.Svc.Upsert(c.Request.Context(), c.Param("id"), payload.Value)
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, row)
}
