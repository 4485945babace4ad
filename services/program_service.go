package services

import (
	"context"
	"mime/multipart"

	"foundation-backend/models"

	"gorm.io/gorm"
)

// ProgramService ดูแลแกลเลอรีรูปหน้าโครงการ
type ProgramService struct {
	*CrudService[models.ProgramImage]
	Up *Uploader
}

func NewProgramService(db *gorm.DB, up *Uploader) *ProgramService {
	return &ProgramService{
		CrudService: programCrud(db),
		Up:          up,
	}
}

// AddImages อัปโหลดหลายไฟล์ ไฟล์ที่พังถูกข้ามไป ที่เหลือบันทึกต่อท้ายตามลำดับ
func (s *ProgramService) AddImages(ctx context.Context, files []*multipart.FileHeader) ([]models.ProgramImage, []FailedUpload, error) {
	if len(files) == 0 {
		return nil, nil, ErrEmptyUpload
	}
	next, err := s.NextSortOrder(ctx)
	if err != nil {
		return nil, nil, err
	}

	results := s.Up.UploadMany(ctx, "programs", files)
	created := make([]models.ProgramImage, 0, len(results))
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		img := models.ProgramImage{
			ImageURL:  results[i].File.URL,
			ImageKey:  results[i].File.Key,
			SortOrder: next,
		}
		if err := s.CrudService.Create(ctx, &img); err != nil {
			s.Up.Remove(ctx, img.ImageKey)
			results[i].Err = err
			continue
		}
		created = append(created, img)
		next++
	}
	return created, Failures(results), nil
}

func (s *ProgramService) ReplaceImage(ctx context.Context, id uint, fh *multipart.FileHeader) (*models.ProgramImage, error) {
	img, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	stored, err := s.Up.Replace(ctx, "programs", img.ImageKey, fh)
	if err != nil {
		return nil, err
	}
	return s.Update(ctx, id, func(row *models.ProgramImage) error {
		row.ImageURL, row.ImageKey = stored.URL, stored.Key
		return nil
	})
}

// Delete ลบ object ใน storage ก่อน แล้วค่อยลบแถว
func (s *ProgramService) Delete(ctx context.Context, id uint) error {
	img, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	s.Up.Remove(ctx, img.ImageKey)
	return s.CrudService.Delete(ctx, id)
}

func programCrud(db *gorm.DB) *CrudService[models.ProgramImage] {
	crud := NewCrudService[models.ProgramImage](db, "sort_order ASC, id ASC", nil)
	crud.Sort = func(p *models.ProgramImage) *int { return &p.SortOrder }
	return crud
}
