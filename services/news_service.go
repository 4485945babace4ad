package services

import (
	"context"
	"mime/multipart"

	"foundation-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ข่าวไม่มีวันเผยแพร่อยู่ท้ายเสมอ (postgres เรียง NULL ก่อน mysql/sqlite เรียงท้าย)
const newsOrder = "published_at IS NULL, published_at DESC, id DESC"

type NewsService struct {
	*CrudService[models.NewsItem]
	Up *Uploader
}

func NewNewsService(db *gorm.DB, up *Uploader) *NewsService {
	crud := NewCrudService(db, newsOrder, func(n models.NewsItem) []string {
		return []string{n.Title, n.Category}
	})
	crud.Preload = []string{"Images"}
	return &NewsService{CrudService: crud, Up: up}
}

// CreateWithGallery อัปโหลดแกลเลอรีก่อน แล้วบันทึกข่าว + รูปทั้งหมดใน transaction เดียว
// ถ้า transaction ล้ม ไฟล์ที่อัปโหลดไปแล้วจะถูกลบทิ้ง
func (s *NewsService) CreateWithGallery(ctx context.Context, item *models.NewsItem, files []*multipart.FileHeader) ([]FailedUpload, error) {
	results := s.Up.UploadMany(ctx, "news", files)
	stored := Succeeded(results)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item.Images = nil
		if err := tx.Omit(clause.Associations).Create(item).Error; err != nil {
			return err
		}
		if len(stored) == 0 {
			return nil
		}
		images := make([]models.NewsImage, 0, len(stored))
		for _, f := range stored {
			images = append(images, models.NewsImage{NewsID: item.ID, ImageURL: f.URL, ImageKey: f.Key})
		}
		if err := tx.Create(&images).Error; err != nil {
			return err
		}
		item.Images = images
		return nil
	})
	if err != nil {
		for _, f := range stored {
			s.Up.Remove(ctx, f.Key)
		}
		return nil, err
	}
	return Failures(results), nil
}

func (s *NewsService) AddImages(ctx context.Context, newsID uint, files []*multipart.FileHeader) ([]models.NewsImage, []FailedUpload, error) {
	if len(files) == 0 {
		return nil, nil, ErrEmptyUpload
	}
	if _, err := s.Get(ctx, newsID); err != nil {
		return nil, nil, err
	}
	results := s.Up.UploadMany(ctx, "news", files)
	stored := Succeeded(results)
	if len(stored) == 0 {
		return []models.NewsImage{}, Failures(results), nil
	}

	images := make([]models.NewsImage, 0, len(stored))
	for _, f := range stored {
		images = append(images, models.NewsImage{NewsID: newsID, ImageURL: f.URL, ImageKey: f.Key})
	}
	if err := s.DB.WithContext(ctx).Create(&images).Error; err != nil {
		for _, f := range stored {
			s.Up.Remove(ctx, f.Key)
		}
		return nil, nil, err
	}
	return images, Failures(results), nil
}

// DeleteImage ลบได้เฉพาะรูปที่เป็นของข่าว newsID
func (s *NewsService) DeleteImage(ctx context.Context, newsID, imageID uint) error {
	res := s.DB.WithContext(ctx).Where("id = ? AND news_id = ?", imageID, newsID).Delete(&models.NewsImage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete ลบรูปลูกทั้งหมดพร้อมข่าว (ไม่พึ่ง FK cascade ของแต่ละ DB)
func (s *NewsService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("news_id = ?", id).Delete(&models.NewsImage{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.NewsItem{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
