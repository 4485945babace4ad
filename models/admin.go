package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var ErrAdminCredentialsRequired = errors.New("username and password are required")

type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"size:255" json:"full_name"`
	Username  string    `gorm:"uniqueIndex;size:150" json:"username"`
	Password  string    `gorm:"size:255" json:"-"` // bcrypt hash, never return in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAdmin ตรวจ username/password แล้ว hash ด้วย bcrypt (ยังไม่บันทึก)
func NewAdmin(fullName, username, password string) (*Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrAdminCredentialsRequired
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &Admin{FullName: fullName, Username: username, Password: string(hashed)}, nil
}

// TokenBlacklist เก็บ HMAC ของ JWT ที่ sign-out แล้ว จนกว่าจะหมดอายุ
type TokenBlacklist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TokenHash string    `gorm:"size:64;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
