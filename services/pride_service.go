package services

import (
	"context"
	"mime/multipart"

	"foundation-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PrideService struct {
	*CrudService[models.PrideTopic]
	Up *Uploader
}

func NewPrideService(db *gorm.DB, up *Uploader) *PrideService {
	crud := NewCrudService(db, "sort_order ASC, id ASC", func(t models.PrideTopic) []string {
		return []string{t.Title}
	})
	crud.Preload = []string{"Images"}
	crud.Sort = func(t *models.PrideTopic) *int { return &t.SortOrder }
	return &PrideService{CrudService: crud, Up: up}
}

// CreateWithImages บันทึกหัวข้อ + รูป (ถ้ามี) ใน transaction เดียว
func (s *PrideService) CreateWithImages(ctx context.Context, topic *models.PrideTopic, files []*multipart.FileHeader, captions []string) ([]FailedUpload, error) {
	next, err := s.NextSortOrder(ctx)
	if err != nil {
		return nil, err
	}
	topic.SortOrder = next

	results := s.Up.UploadMany(ctx, "pride", files)
	images := prideImagesFrom(results, captions, 0)

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		topic.Images = nil
		if err := tx.Omit(clause.Associations).Create(topic).Error; err != nil {
			return err
		}
		if len(images) == 0 {
			return nil
		}
		for i := range images {
			images[i].TopicID = topic.ID
		}
		if err := tx.Create(&images).Error; err != nil {
			return err
		}
		topic.Images = images
		return nil
	})
	if err != nil {
		for _, img := range images {
			s.Up.Remove(ctx, img.ImageKey)
		}
		return nil, err
	}
	return Failures(results), nil
}

func (s *PrideService) AddImages(ctx context.Context, topicID uint, files []*multipart.FileHeader, captions []string) ([]models.PrideImage, []FailedUpload, error) {
	if len(files) == 0 {
		return nil, nil, ErrEmptyUpload
	}
	if _, err := s.Get(ctx, topicID); err != nil {
		return nil, nil, err
	}

	var max int
	if err := s.DB.WithContext(ctx).Model(&models.PrideImage{}).
		Where("topic_id = ?", topicID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error; err != nil {
		return nil, nil, err
	}

	results := s.Up.UploadMany(ctx, "pride", files)
	images := prideImagesFrom(results, captions, max)
	if len(images) == 0 {
		return []models.PrideImage{}, Failures(results), nil
	}
	for i := range images {
		images[i].TopicID = topicID
	}
	if err := s.DB.WithContext(ctx).Create(&images).Error; err != nil {
		for _, img := range images {
			s.Up.Remove(ctx, img.ImageKey)
		}
		return nil, nil, err
	}
	return images, Failures(results), nil
}

func (s *PrideService) DeleteImage(ctx context.Context, topicID, imageID uint) error {
	res := s.DB.WithContext(ctx).Where("id = ? AND topic_id = ?", imageID, topicID).Delete(&models.PrideImage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PrideService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("topic_id = ?", id).Delete(&models.PrideImage{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.PrideTopic{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// captions[i] จับคู่กับไฟล์ลำดับที่ i ของ batch
func prideImagesFrom(results []UploadResult, captions []string, startOrder int) []models.PrideImage {
	images := make([]models.PrideImage, 0, len(results))
	order := startOrder
	for i, r := range results {
		if r.Err != nil {
			continue
		}
		order++
		img := models.PrideImage{ImageURL: r.File.URL, ImageKey: r.File.Key, SortOrder: order}
		if i < len(captions) {
			img.Caption = captions[i]
		}
		images = append(images, img)
	}
	return images
}
