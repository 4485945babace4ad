package services

import (
	"context"

	"foundation-backend/models"

	"gorm.io/gorm"
)

type ContactService struct {
	*CrudService[models.ContactMessage]
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{CrudService: NewCrudService(db, "created_at DESC, id DESC", func(m models.ContactMessage) []string {
		return []string{m.Name, m.Subject}
	})}
}

// Submit ข้อความใหม่จากหน้าเว็บเริ่มที่ unread เสมอ
func (s *ContactService) Submit(ctx context.Context, msg *models.ContactMessage) error {
	msg.ID = 0
	msg.Status = models.MessageUnread
	return s.Create(ctx, msg)
}

// MarkRead แก้เฉพาะคอลัมน์ status, อ่านซ้ำได้ไม่ error
func (s *ContactService) MarkRead(ctx context.Context, id uint) (*models.ContactMessage, error) {
	msg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg.Status == models.MessageRead {
		return msg, nil
	}
	if err := s.DB.WithContext(ctx).Model(msg).UpdateColumn("status", models.MessageRead).Error; err != nil {
		return nil, err
	}
	msg.Status = models.MessageRead
	return msg, nil
}
