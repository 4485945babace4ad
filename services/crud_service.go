package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("record not found")

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

// CrudService คือ list/get/create/update/delete/swap ที่ทุกโมดูลหลังบ้านใช้ร่วมกัน
type CrudService[T any] struct {
	DB      *gorm.DB
	OrderBy string
	Preload []string

	// Fields คืนค่าข้อความที่ใช้กรองแบบ substring (หนึ่งหรือสองฟิลด์)
	Fields func(T) []string

	// Sort ชี้ไปที่ฟิลด์ sort_order ของแถว (nil = entity ไม่มีลำดับ)
	Sort func(*T) *int
}

func NewCrudService[T any](db *gorm.DB, orderBy string, fields func(T) []string) *CrudService[T] {
	return &CrudService[T]{DB: db, OrderBy: orderBy, Fields: fields}
}

func (s *CrudService[T]) query(ctx context.Context) *gorm.DB {
	tx := s.DB.WithContext(ctx)
	for _, p := range s.Preload {
		tx = tx.Preload(p)
	}
	return tx
}

// List ดึงทั้งหมดตามลำดับ แล้วกรองในหน่วยความจำเมื่อ q ไม่ว่าง
func (s *CrudService[T]) List(ctx context.Context, q string) ([]T, error) {
	items := make([]T, 0)
	tx := s.query(ctx)
	if s.OrderBy != "" {
		tx = tx.Order(s.OrderBy)
	}
	if err := tx.Find(&items).Error; err != nil {
		return nil, err
	}
	return FilterItems(items, q, s.Fields), nil
}

func (s *CrudService[T]) Get(ctx context.Context, id uint) (*T, error) {
	var item T
	if err := s.query(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create แถวที่มีลำดับแต่ส่ง sort_order มาเป็น 0 จะถูกวางท้ายสุด
func (s *CrudService[T]) Create(ctx context.Context, item *T) error {
	if s.Sort != nil {
		if p := s.Sort(item); *p == 0 {
			next, err := s.NextSortOrder(ctx)
			if err != nil {
				return err
			}
			*p = next
		}
	}
	return s.DB.WithContext(ctx).Create(item).Error
}

// Update โหลดแถวเดิม ให้ apply แก้ แล้ว Save ทับทั้งแถว (ไม่แตะ association)
func (s *CrudService[T]) Update(ctx context.Context, id uint, apply func(*T) error) (*T, error) {
	var item T
	if err := s.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if apply != nil {
		if err := apply(&item); err != nil {
			return nil, err
		}
	}
	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CrudService[T]) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CrudService[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(new(T)).Count(&n).Error
	return n, err
}

// NextSortOrder = max(sort_order)+1 สำหรับแถวใหม่
func (s *CrudService[T]) NextSortOrder(ctx context.Context) (int, error) {
	var max int
	err := s.DB.WithContext(ctx).Model(new(T)).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	return max + 1, err
}

type sortRow struct {
	ID        uint
	SortOrder int
}

// Swap สลับ sort_order ของสองแถว ใน transaction เดียว ไม่จัดเลขใหม่
func (s *CrudService[T]) Swap(ctx context.Context, idA, idB uint) error {
	if idA == idB {
		return fmt.Errorf("cannot swap a row with itself")
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []sortRow
		if err := tx.Model(new(T)).
			Select("id, sort_order").
			Where("id IN ?", []uint{idA, idB}).
			Scan(&rows).Error; err != nil {
			return err
		}
		if len(rows) != 2 {
			return ErrNotFound
		}
		orders := map[uint]int{rows[0].ID: rows[0].SortOrder, rows[1].ID: rows[1].SortOrder}

		if err := tx.Model(new(T)).Where("id = ?", idA).
			UpdateColumn("sort_order", orders[idB]).Error; err != nil {
			return err
		}
		return tx.Model(new(T)).Where("id = ?", idB).
			UpdateColumn("sort_order", orders[idA]).Error
	})
}

// FilterItems กรองแบบ case-insensitive substring บนฟิลด์ที่ fields คืนมา
func FilterItems[T any](items []T, q string, fields func(T) []string) []T {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" || fields == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
