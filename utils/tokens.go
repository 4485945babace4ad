package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
	"strings"
)

//
// ===========================================================
//  ACCESS CODES
// ===========================================================
//

const accessCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateAccessCode (A-Z0-9) เช่น "AB4D93KF"
// ใช้ crypto/rand + rand.Int (math/big) เพื่อลด modulo bias
func GenerateAccessCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(accessCodeCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(accessCodeCharset[num.Int64()])
	}
	return sb.String(), nil
}

var nonAlnum = regexp.MustCompile(`[^A-Z0-9]`)

// NormalizeAccessCode → ตัวพิมพ์ใหญ่ ตัดขีด/ช่องว่าง ("ab4d-93kf" → "AB4D93KF")
func NormalizeAccessCode(code string) string {
	return nonAlnum.ReplaceAllString(strings.ToUpper(strings.TrimSpace(code)), "")
}

// FormatAccessCode → "XXXX-XXXX" สำหรับแสดงผล
func FormatAccessCode(raw string) (string, error) {
	raw = NormalizeAccessCode(raw)
	if len(raw) != 8 {
		return "", errors.New("raw must be length 8")
	}
	return raw[:4] + "-" + raw[4:], nil
}

// BearerToken ดึง token จาก "Authorization: Bearer ..."
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}
