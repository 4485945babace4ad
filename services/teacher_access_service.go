package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"foundation-backend/models"
	"foundation-backend/utils"

	"gorm.io/gorm"
)

var (
	ErrInvalidCode = errors.New("invalid access code")
	ErrCodeExpired = errors.New("access code expired")
)

const accessCodeLength = 8

// TeacherAccessService ออกรหัสเข้าแดชบอร์ดครู และแลกรหัสเป็น session token
type TeacherAccessService struct {
	DB        *gorm.DB
	Tokens    *TokenService
	Blacklist *BlacklistService
	Students  *StudentService
	CodeTTL   time.Duration
	Now       func() time.Time
}

func NewTeacherAccessService(db *gorm.DB, tokens *TokenService, blacklist *BlacklistService, students *StudentService, codeTTL time.Duration) *TeacherAccessService {
	return &TeacherAccessService{DB: db, Tokens: tokens, Blacklist: blacklist, Students: students, CodeTTL: codeTTL, Now: time.Now}
}

func hashAccessCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

type IssuedCode struct {
	Code        string    `json:"code"`
	DisplayCode string    `json:"display_code"` // XXXX-XXXX
	ExpiresAt   time.Time `json:"expires_at"`
}

// IssueCode สร้างรหัสใหม่ทับของเดิม รหัสดิบคืนให้ครั้งเดียว ในฐานข้อมูลมีแต่ hash
func (s *TeacherAccessService) IssueCode(ctx context.Context, teacherID uint) (*IssuedCode, error) {
	var teacher models.Teacher
	if err := s.DB.WithContext(ctx).First(&teacher, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	code, err := utils.GenerateAccessCode(accessCodeLength)
	if err != nil {
		return nil, err
	}
	hash := hashAccessCode(code)
	exp := s.Now().Add(s.CodeTTL)
	if err := s.DB.WithContext(ctx).Model(&teacher).UpdateColumns(map[string]any{
		"access_code_hash":       hash,
		"access_code_expires_at": exp,
	}).Error; err != nil {
		return nil, err
	}
	display, err := utils.FormatAccessCode(code)
	if err != nil {
		return nil, err
	}
	return &IssuedCode{Code: code, DisplayCode: display, ExpiresAt: exp}, nil
}

type TeacherSession struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Teacher   *models.Teacher `json:"teacher"`
}

func (s *TeacherAccessService) Login(ctx context.Context, code string) (*TeacherSession, error) {
	code = utils.NormalizeAccessCode(code)
	if len(code) != accessCodeLength {
		return nil, ErrInvalidCode
	}

	var teacher models.Teacher
	err := s.DB.WithContext(ctx).Where("access_code_hash = ?", hashAccessCode(code)).First(&teacher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCode
	}
	if err != nil {
		return nil, err
	}
	if teacher.AccessCodeExpiresAt == nil || !s.Now().Before(*teacher.AccessCodeExpiresAt) {
		return nil, ErrCodeExpired
	}

	token, exp, err := s.Tokens.Issue(teacher.ID, RoleTeacher, teacher.Name)
	if err != nil {
		return nil, err
	}
	return &TeacherSession{Token: token, ExpiresAt: exp, Teacher: &teacher}, nil
}

type TeacherDashboard struct {
	Teacher  *models.Teacher  `json:"teacher"`
	Students []models.Student `json:"students"`
}

// Dashboard นักเรียนผูกกับครูผ่าน recruiter_name = ชื่อครู (เทียบค่าตรงตัว)
func (s *TeacherAccessService) Dashboard(ctx context.Context, teacherID uint) (*TeacherDashboard, error) {
	var teacher models.Teacher
	if err := s.DB.WithContext(ctx).First(&teacher, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	students, err := s.Students.ListByRecruiter(ctx, strings.TrimSpace(teacher.Name))
	if err != nil {
		return nil, err
	}
	return &TeacherDashboard{Teacher: &teacher, Students: students}, nil
}

// Logout ยกเลิก session ของครูด้วย blacklist ชุดเดียวกับ admin
func (s *TeacherAccessService) Logout(ctx context.Context, raw string) error {
	return revokeToken(ctx, s.Tokens, s.Blacklist, raw)
}
