package services

import (
	"context"
	"errors"
	"fmt"

	"foundation-backend/models"

	"gorm.io/gorm"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// AckMessage ข้อความตอบรับหลังส่งใบสมัครทุน
const AckMessage = "เจ้าหน้าที่จะติดต่อกลับภายใน 7-14 วันทำการ"

// ทางเดินเดียว: รอดำเนินการ -> กำลังพิจารณา -> อนุมัติ
var scholarshipNext = map[string]string{
	models.ScholarshipPending:     models.ScholarshipUnderReview,
	models.ScholarshipUnderReview: models.ScholarshipApproved,
}

func CanTransition(from, to string) bool {
	next, ok := scholarshipNext[from]
	return ok && next == to
}

type ScholarshipService struct {
	*CrudService[models.ScholarshipApplication]
}

func NewScholarshipService(db *gorm.DB) *ScholarshipService {
	return &ScholarshipService{CrudService: NewCrudService(db, "created_at DESC, id DESC", func(a models.ScholarshipApplication) []string {
		return []string{a.FullName, a.SchoolName}
	})}
}

func (s *ScholarshipService) Submit(ctx context.Context, app *models.ScholarshipApplication) error {
	app.ID = 0
	app.Status = models.ScholarshipPending
	return s.Create(ctx, app)
}

func (s *ScholarshipService) ChangeStatus(ctx context.Context, id uint, to string) (*models.ScholarshipApplication, error) {
	var out *models.ScholarshipApplication
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var app models.ScholarshipApplication
		if err := tx.First(&app, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !CanTransition(app.Status, to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, app.Status, to)
		}
		if err := tx.Model(&app).UpdateColumn("status", to).Error; err != nil {
			return err
		}
		app.Status = to
		out = &app
		return nil
	})
	return out, err
}
