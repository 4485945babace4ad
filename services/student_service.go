package services

import (
	"context"
	"errors"
	"strings"

	"foundation-backend/models"

	"gorm.io/gorm"
)

type StudentService struct {
	*CrudService[models.Student]
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{CrudService: NewCrudService(db, "created_at DESC, id DESC", func(s models.Student) []string {
		return []string{s.FullName(), s.IDCard}
	})}
}

// Register ไม่เช็คซ้ำ สถานะเงินมัดจำ/ค่าเทอมเริ่มที่ pending
func (s *StudentService) Register(ctx context.Context, st *models.Student) error {
	st.ID = 0
	st.IDCard = strings.TrimSpace(st.IDCard)
	st.DepositStatus = models.StatusPending
	st.TuitionStatus = models.StatusPending
	return s.Create(ctx, st)
}

// FindByIDCard คืน (nil, nil) เมื่อไม่พบ การไม่พบไม่ใช่ error
func (s *StudentService) FindByIDCard(ctx context.Context, idCard string) (*models.Student, error) {
	idCard = strings.TrimSpace(idCard)
	if idCard == "" {
		return nil, nil
	}
	var st models.Student
	err := s.DB.WithContext(ctx).Where("id_card = ?", idCard).Order("id DESC").First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *StudentService) ListByRecruiter(ctx context.Context, name string) ([]models.Student, error) {
	out := make([]models.Student, 0)
	name = strings.TrimSpace(name)
	if name == "" {
		return out, nil
	}
	err := s.DB.WithContext(ctx).Where("recruiter_name = ?", name).
		Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

// PaymentStatus: nil = ไม่แก้ฟิลด์นั้น
type PaymentStatus struct {
	Deposit *string `json:"deposit_status"`
	Tuition *string `json:"tuition_status"`
}

func (s *StudentService) SetStatus(ctx context.Context, id uint, p PaymentStatus) (*models.Student, error) {
	cols := map[string]any{}
	if p.Deposit != nil {
		if !validPaymentStatus(*p.Deposit) {
			return nil, ErrInvalidStatus
		}
		cols["deposit_status"] = *p.Deposit
	}
	if p.Tuition != nil {
		if !validPaymentStatus(*p.Tuition) {
			return nil, ErrInvalidStatus
		}
		cols["tuition_status"] = *p.Tuition
	}

	st, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return st, nil
	}
	if err := s.DB.WithContext(ctx).Model(st).UpdateColumns(cols).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}
