package services

import (
	"context"
	"mime/multipart"

	"foundation-backend/models"

	"gorm.io/gorm"
)

// ImageSlot บอกว่า entity เก็บรูปเดียวไว้ที่ฟิลด์ไหน
type ImageSlot[T any] struct {
	Folder string

	// ReplaceOld = ลบ object เดิมก่อนอัปโหลดใหม่ และลบ object ตอนลบแถว
	ReplaceOld bool

	Key func(*T) string
	Set func(*T, StoredFile)
}

// ImageCrudService คือ CrudService ของ entity ที่มีรูปประจำแถวหนึ่งรูป
type ImageCrudService[T any] struct {
	*CrudService[T]
	Up   *Uploader
	Slot ImageSlot[T]
}

// CreateWithImage อัปโหลดก่อน (ถ้ามีไฟล์) แล้วบันทึก ถ้าบันทึกพังจะลบไฟล์ทิ้ง
func (s *ImageCrudService[T]) CreateWithImage(ctx context.Context, item *T, fh *multipart.FileHeader) error {
	if fh != nil {
		stored, err := s.Up.UploadOne(ctx, s.Slot.Folder, fh)
		if err != nil {
			return err
		}
		s.Slot.Set(item, stored)
	}
	if err := s.Create(ctx, item); err != nil {
		if fh != nil {
			s.Up.Remove(ctx, s.Slot.Key(item))
		}
		return err
	}
	return nil
}

func (s *ImageCrudService[T]) SetImage(ctx context.Context, id uint, fh *multipart.FileHeader) (*T, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var stored StoredFile
	if s.Slot.ReplaceOld {
		stored, err = s.Up.Replace(ctx, s.Slot.Folder, s.Slot.Key(item), fh)
	} else {
		stored, err = s.Up.UploadOne(ctx, s.Slot.Folder, fh)
	}
	if err != nil {
		return nil, err
	}
	return s.Update(ctx, id, func(row *T) error {
		s.Slot.Set(row, stored)
		return nil
	})
}

func (s *ImageCrudService[T]) Delete(ctx context.Context, id uint) error {
	if !s.Slot.ReplaceOld {
		return s.CrudService.Delete(ctx, id)
	}
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.CrudService.Delete(ctx, id); err != nil {
		return err
	}
	s.Up.Remove(ctx, s.Slot.Key(item))
	return nil
}

// ----------------------------------------------------------------
// constructors
// ----------------------------------------------------------------

func NewSlideService(db *gorm.DB, up *Uploader) *ImageCrudService[models.SlideImage] {
	crud := NewCrudService(db, "sort_order ASC, id ASC", func(s models.SlideImage) []string {
		return []string{s.Title, s.Subtitle}
	})
	crud.Sort = func(s *models.SlideImage) *int { return &s.SortOrder }
	return &ImageCrudService[models.SlideImage]{
		CrudService: crud,
		Up:          up,
		Slot: ImageSlot[models.SlideImage]{
			Folder:     "slides",
			ReplaceOld: true,
			Key:        func(s *models.SlideImage) string { return s.ImageKey },
			Set:        func(s *models.SlideImage, f StoredFile) { s.ImageURL, s.ImageKey = f.URL, f.Key },
		},
	}
}

func NewStaffService(db *gorm.DB, up *Uploader) *ImageCrudService[models.Staff] {
	crud := NewCrudService(db, DirectoryOrder, func(s models.Staff) []string {
		return []string{s.Name, s.Position}
	})
	return &ImageCrudService[models.Staff]{
		CrudService: crud,
		Up:          up,
		Slot: ImageSlot[models.Staff]{
			Folder: "staff",
			Key:    func(s *models.Staff) string { return s.ImageKey },
			Set:    func(s *models.Staff, f StoredFile) { s.ImageURL, s.ImageKey = f.URL, f.Key },
		},
	}
}

func NewTeacherService(db *gorm.DB, up *Uploader) *ImageCrudService[models.Teacher] {
	crud := NewCrudService(db, DirectoryOrder, func(t models.Teacher) []string {
		return []string{t.Name, t.Position}
	})
	return &ImageCrudService[models.Teacher]{
		CrudService: crud,
		Up:          up,
		Slot: ImageSlot[models.Teacher]{
			Folder: "teachers",
			Key:    func(t *models.Teacher) string { return t.ImageKey },
			Set:    func(t *models.Teacher, f StoredFile) { t.ImageURL, t.ImageKey = f.URL, f.Key },
		},
	}
}

func NewPartnerService(db *gorm.DB, up *Uploader) *ImageCrudService[models.Partner] {
	crud := NewCrudService(db, "sort_order ASC, id ASC", func(p models.Partner) []string {
		return []string{p.Name}
	})
	crud.Sort = func(p *models.Partner) *int { return &p.SortOrder }
	return &ImageCrudService[models.Partner]{
		CrudService: crud,
		Up:          up,
		Slot: ImageSlot[models.Partner]{
			Folder: "partners",
			Key:    func(p *models.Partner) string { return p.LogoKey },
			Set:    func(p *models.Partner, f StoredFile) { p.LogoURL, p.LogoKey = f.URL, f.Key },
		},
	}
}

func NewNavbarService(db *gorm.DB) *CrudService[models.NavbarItem] {
	crud := NewCrudService(db, "sort_order ASC, id ASC", func(n models.NavbarItem) []string {
		return []string{n.Label, n.Href}
	})
	crud.Sort = func(n *models.NavbarItem) *int { return &n.SortOrder }
	return crud
}

func NewSidebarService(db *gorm.DB) *CrudService[models.AdminSidebarItem] {
	crud := NewCrudService(db, "sort_order ASC, id ASC", func(n models.AdminSidebarItem) []string {
		return []string{n.Label, n.Href}
	})
	crud.Sort = func(n *models.AdminSidebarItem) *int { return &n.SortOrder }
	return crud
}
