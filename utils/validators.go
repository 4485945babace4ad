package utils

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators ผูก tag เพิ่มเติมเข้ากับ validator ของ gin (เรียกซ้ำได้)
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("notblank", notBlank)
		_ = v.RegisterValidation("thaiid", thaiID)
	})
}

// notblank: ต้องมีตัวอักษรที่ไม่ใช่ช่องว่าง
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func thaiID(fl validator.FieldLevel) bool {
	return IsThaiID(fl.Field().String())
}

// IsThaiID เช็ครูปแบบเลขบัตร 13 หลัก (ไม่ตรวจ checksum)
func IsThaiID(s string) bool {
	if len(s) != 13 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
