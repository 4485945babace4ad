package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"foundation-backend/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlacklistService เก็บ token ที่ sign-out แล้ว (เก็บแค่ HMAC ไม่เก็บ token ดิบ)
type BlacklistService struct {
	DB     *gorm.DB
	Secret string
	Now    func() time.Time
}

func NewBlacklistService(db *gorm.DB, secret string) *BlacklistService {
	return &BlacklistService{DB: db, Secret: secret, Now: time.Now}
}

func (s *BlacklistService) hash(raw string) string {
	m := hmac.New(sha256.New, []byte(s.Secret))
	_, _ = m.Write([]byte(raw))
	return hex.EncodeToString(m.Sum(nil))
}

func (s *BlacklistService) Add(ctx context.Context, raw string, expiresAt time.Time) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	row := models.TokenBlacklist{TokenHash: s.hash(raw), ExpiresAt: expiresAt}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token_hash"}},
		DoUpdates: clause.AssignmentColumns([]string{"expires_at"}),
	}).Create(&row).Error
}

func (s *BlacklistService) IsRevoked(ctx context.Context, raw string) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.TokenBlacklist{}).
		Where("token_hash = ? AND expires_at > ?", s.hash(raw), s.Now()).
		Count(&n).Error
	return n > 0, err
}

// Purge ลบแถวที่ token หมดอายุไปแล้ว (token หมดอายุเองก็ใช้ไม่ได้อยู่แล้ว)
func (s *BlacklistService) Purge(ctx context.Context) (int64, error) {
	res := s.DB.WithContext(ctx).Where("expires_at <= ?", s.Now()).Delete(&models.TokenBlacklist{})
	return res.RowsAffected, res.Error
}

// StartCleanup ตั้ง cron ล้าง blacklist ตาม schedule (เช่น "@hourly") คืน *cron.Cron ให้ caller Stop ตอนปิด
func (s *BlacklistService) StartCleanup(schedule string, log *zap.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		n, err := s.Purge(ctx)
		if err != nil {
			log.Error("token blacklist cleanup failed", zap.Error(err))
			return
		}
		if n > 0 {
			log.Info("token blacklist cleaned", zap.Int64("removed", n))
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	log.Info("token blacklist cleanup scheduled", zap.String("schedule", schedule))
	return c, nil
}
