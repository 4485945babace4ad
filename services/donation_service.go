package services

import (
	"context"
	"errors"
	"mime/multipart"

	"foundation-backend/models"

	"gorm.io/gorm"
)

var ErrInvalidStatus = errors.New("status must be pending or paid")

func validPaymentStatus(s string) bool {
	return s == models.StatusPending || s == models.StatusPaid
}

type DonationService struct {
	*CrudService[models.Donation]
	Up *Uploader
}

func NewDonationService(db *gorm.DB, up *Uploader) *DonationService {
	return &DonationService{
		CrudService: NewCrudService(db, "created_at DESC, id DESC", func(d models.Donation) []string {
			return []string{d.FullName, d.CitizenID}
		}),
		Up: up,
	}
}

// Submit อัปโหลดสลิป (ถ้ามี) ก่อน แล้วค่อยบันทึก อัปโหลดพัง = ไม่บันทึก
func (s *DonationService) Submit(ctx context.Context, d *models.Donation, receipt *multipart.FileHeader) error {
	d.ID = 0
	d.Status = models.StatusPending
	if receipt != nil {
		stored, err := s.Up.UploadOne(ctx, "receipts", receipt)
		if err != nil {
			return err
		}
		d.ReceiptURL, d.ReceiptKey = stored.URL, stored.Key
	}
	if err := s.Create(ctx, d); err != nil {
		s.Up.Remove(ctx, d.ReceiptKey)
		return err
	}
	return nil
}

func (s *DonationService) SetStatus(ctx context.Context, id uint, status string) (*models.Donation, error) {
	if !validPaymentStatus(status) {
		return nil, ErrInvalidStatus
	}
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(d).UpdateColumn("status", status).Error; err != nil {
		return nil, err
	}
	d.Status = status
	return d, nil
}
