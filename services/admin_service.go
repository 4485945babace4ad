package services

import (
	"context"
	"errors"

	"foundation-backend/models"

	"gorm.io/gorm"
)

var ErrSelfDelete = errors.New("cannot delete the signed-in admin")

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

func (s *AdminService) Create(ctx context.Context, fullName, username, password string) (*models.Admin, error) {
	return CreateAdmin(ctx, s.DB, fullName, username, password)
}

func (s *AdminService) GetAll(ctx context.Context) ([]models.Admin, error) {
	admins := make([]models.Admin, 0)
	err := s.DB.WithContext(ctx).Order("id ASC").Find(&admins).Error
	return admins, err
}

func (s *AdminService) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.WithContext(ctx).First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// Delete กันแอดมินลบบัญชีตัวเอง (actorID = คนที่ login อยู่)
func (s *AdminService) Delete(ctx context.Context, id, actorID uint) error {
	if id == actorID {
		return ErrSelfDelete
	}
	res := s.DB.WithContext(ctx).Delete(&models.Admin{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
