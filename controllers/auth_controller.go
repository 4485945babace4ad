package controllers

import (
	"net/http"

	"foundation-backend/middleware"
	"foundation-backend/services"
	"foundation-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	Svc *services.AuthService
	Log *zap.Logger
}

func NewAuthController(svc *services.AuthService, log *zap.Logger) *AuthController {
	return &AuthController{Svc: svc, Log: log}
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}
	session, err := ctl.Svc.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		ctl.Log.Warn("admin login failed", zap.String("username", in.Username), zap.Error(err))
		writeError(c, err)
		return
	}
	ctl.Log.Info("admin signed in", zap.Uint("admin_id", session.Admin.ID))
	utils.JSONSuccess(c, http.StatusOK, session)
}

// POST /api/auth/logout (ต้องแนบ token) token นี้ใช้ไม่ได้อีกหลังจากนี้
func (ctl *AuthController) Logout(c *gin.Context) {
	if err := ctl.Svc.Logout(c.Request.Context(), middleware.TokenFrom(c)); err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"signed_out": true})
}

// GET /api/auth/session
func (ctl *AuthController) Session(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "not signed in")
		return
	}
	admin, err := ctl.Svc.CurrentAdmin(c.Request.Context(), claims.Sub)
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"admin": admin, "expires_at": claims.ExpiresAt})
}
