package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"foundation-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUnknownSetting      = fmt.Errorf("unknown setting: %w", ErrNotFound)
	ErrSettingIDRequired   = errors.New("setting id is required")
	ErrInvalidSettingValue = errors.New("value must be valid JSON")
)

type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

func (s *SettingsService) Get(ctx context.Context, id string) (*models.SiteSetting, error) {
	var row models.SiteSetting
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownSetting
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert เขียนทับค่าเดิมตาม id หรือสร้างใหม่ถ้ายังไม่มี
func (s *SettingsService) Upsert(ctx context.Context, id string, value json.RawMessage) (*models.SiteSetting, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrSettingIDRequired
	}
	if !json.Valid(value) {
		return nil, ErrInvalidSettingValue
	}
	row := models.SiteSetting{ID: id, Value: datatypes.JSON(value), UpdatedAt: time.Now()}
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Statistics อ่าน setting "statistics" แบบมี type
func (s *SettingsService) Statistics(ctx context.Context) ([]models.Statistic, error) {
	row, err := s.Get(ctx, "statistics")
	if err != nil {
		return nil, err
	}
	out := make([]models.Statistic, 0)
	if err := json.Unmarshal(row.Value, &out); err != nil {
		return nil, fmt.Errorf("decode statistics: %w", err)
	}
	return out, nil
}
