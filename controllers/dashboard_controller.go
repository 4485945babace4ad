package controllers

import (
	"net/http"

	"foundation-backend/services"
	"foundation-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

func (ctl *DashboardController) Overview(c *gin.Context) {
	counts, err := ctl.Svc.Counts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, counts)
}
