package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"foundation-backend/models"
	"foundation-backend/services"
	"foundation-backend/utils"

	"github.com/gin-gonic/gin"
)

// parseID อ่าน :id (หรือชื่อ param อื่น) เป็น uint ตอบ 400 เองถ้าไม่ใช่ตัวเลข
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// confirmed ลบต้องส่ง ?confirm=true มาด้วย ไม่งั้นตอบ 428 และไม่ลบอะไร
func confirmed(c *gin.Context) bool {
	if ok, _ := strconv.ParseBool(c.Query("confirm")); ok {
		return true
	}
	utils.JSONError(c, http.StatusPreconditionRequired, "delete requires confirm=true")
	return false
}

// writeError แปลง error ของ service เป็น HTTP status ข้อความส่งต่อแบบดิบ
func writeError(c *gin.Context, err error) {
	utils.JSONError(c, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case services.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidCode),
		errors.Is(err, services.ErrCodeExpired),
		errors.Is(err, services.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrEmptyUpload),
		errors.Is(err, services.ErrSelfDelete),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrUnsupportedImage),
		errors.Is(err, services.ErrFileTooLarge),
		errors.Is(err, services.ErrSettingIDRequired),
		errors.Is(err, services.ErrInvalidSettingValue),
		errors.Is(err, models.ErrAdminCredentialsRequired),
		errors.Is(err, utils.ErrInvalidAmount):
		return http.StatusBadRequest
	case utils.IsDuplicateKey(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// optionalFile คืน nil ถ้าไม่ได้แนบไฟล์มา
func optionalFile(c *gin.Context, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return fh
}

func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}
