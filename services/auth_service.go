package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"foundation-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	DB        *gorm.DB
	Tokens    *TokenService
	Blacklist *BlacklistService
}

func NewAuthService(db *gorm.DB, tokens *TokenService, blacklist *BlacklistService) *AuthService {
	return &AuthService{DB: db, Tokens: tokens, Blacklist: blacklist}
}

type Session struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Admin     *models.Admin `json:"admin"`
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	var admin models.Admin
	err := s.DB.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.Issue(admin.ID, RoleAdmin, admin.FullName)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: exp, Admin: &admin}, nil
}

// Logout ใส่ token ลง blacklist จนถึงเวลาหมดอายุของมัน
func (s *AuthService) Logout(ctx context.Context, raw string) error {
	return revokeToken(ctx, s.Tokens, s.Blacklist, raw)
}

// revokeToken ใช้ร่วมกันทั้ง admin และครู
func revokeToken(ctx context.Context, tokens *TokenService, blacklist *BlacklistService, raw string) error {
	claims, err := tokens.Parse(raw)
	if err != nil {
		return err
	}
	exp := tokens.Now().Add(tokens.TTL)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	return blacklist.Add(ctx, raw, exp)
}

func (s *AuthService) CurrentAdmin(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.WithContext(ctx).First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// CreateAdmin ใช้ทั้งตอน seed คำสั่ง create-admin และ API
func CreateAdmin(ctx context.Context, db *gorm.DB, fullName, username, password string) (*models.Admin, error) {
	admin, err := models.NewAdmin(fullName, username, password)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Create(admin).Error; err != nil {
		return nil, err
	}
	return admin, nil
}
