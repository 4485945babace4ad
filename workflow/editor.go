// Package workflow จำลองหน้าจอหลังบ้านหนึ่งโมดูล (รายการ + รายละเอียด + ฟอร์ม) เป็น state ชัดเจน
package workflow

import (
	"context"
	"errors"

	"foundation-backend/services"
)

type Mode int

const (
	Idle Mode = iota
	Viewing
	Editing
)

func (m Mode) String() string {
	switch m {
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	default:
		return "idle"
	}
}

var (
	ErrNotEditing   = errors.New("no form is open")
	ErrEditing      = errors.New("a form is open; save or cancel first")
	ErrNotConfirmed = errors.New("delete not confirmed")
	ErrNotInList    = errors.New("row is not in the loaded list")
)

// Store คือส่วนของ CrudService ที่ editor ใช้
type Store[T any] interface {
	List(ctx context.Context, q string) ([]T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id uint, apply func(*T) error) (*T, error)
	Delete(ctx context.Context, id uint) error
}

type Options[T any] struct {
	ID       func(T) uint
	Validate func(T) error    // nil = ไม่ตรวจ
	Fields   func(T) []string // ใช้กับ Filter
}

// Editor ไม่ thread-safe: หนึ่ง instance ต่อหนึ่งหน้าจอ
type Editor[T any] struct {
	store Store[T]
	opts  Options[T]

	mode      Mode
	items     []T
	selected  uint
	draft     *T
	editingID uint // 0 = สร้างใหม่
}

func New[T any](store Store[T], opts Options[T]) *Editor[T] {
	return &Editor[T]{store: store, opts: opts, items: []T{}}
}

func (e *Editor[T]) Mode() Mode { return e.mode }
func (e *Editor[T]) Items() []T { return e.items }
func (e *Editor[T]) Draft() *T { return e.draft }
func (e *Editor[T]) Selected() uint { return e.selected }

// Load ดึงรายการทั้งหมดใหม่ (ไม่ patch ทีละแถว)
func (e *Editor[T]) Load(ctx context.Context) error {
	items, err := e.store.List(ctx, "")
	if err != nil {
		return err
	}
	e.items = items
	if e.selected != 0 && e.indexOf(e.selected) < 0 {
		e.selected = 0
		if e.mode == Viewing {
			e.mode = Idle
		}
	}
	return nil
}

func (e *Editor[T]) indexOf(id uint) int {
	for i, item := range e.items {
		if e.opts.ID(item) == id {
			return i
		}
	}
	return -1
}

func (e *Editor[T]) Select(id uint) error {
	if e.mode == Editing {
		return ErrEditing
	}
	if e.indexOf(id) < 0 {
		return ErrNotInList
	}
	e.selected = id
	e.mode = Viewing
	return nil
}

// BeginCreate เปิดฟอร์มว่าง
func (e *Editor[T]) BeginCreate() *T {
	e.draft = new(T)
	e.editingID = 0
	e.mode = Editing
	return e.draft
}

// BeginEdit เปิดฟอร์มที่เติมค่าจากแถวเดิม (สำเนา ไม่ใช่ตัวเดียวกับใน list)
func (e *Editor[T]) BeginEdit(id uint) (*T, error) {
	i := e.indexOf(id)
	if i < 0 {
		return nil, ErrNotInList
	}
	row := e.items[i]
	e.draft = &row
	e.editingID = id
	e.mode = Editing
	return e.draft, nil
}

func (e *Editor[T]) Cancel() {
	e.draft = nil
	e.editingID = 0
	if e.selected != 0 {
		e.mode = Viewing
	} else {
		e.mode = Idle
	}
}

// Save ตรวจ -> เขียน -> โหลดใหม่ทั้งหมด -> ปิดฟอร์ม ถ้าตรวจไม่ผ่านฟอร์มยังเปิดอยู่
func (e *Editor[T]) Save(ctx context.Context) error {
	if e.mode != Editing || e.draft == nil {
		return ErrNotEditing
	}
	if e.opts.Validate != nil {
		if err := e.opts.Validate(*e.draft); err != nil {
			return err
		}
	}

	draft := *e.draft
	if e.editingID == 0 {
		if err := e.store.Create(ctx, &draft); err != nil {
			return err
		}
	} else {
		if _, err := e.store.Update(ctx, e.editingID, func(row *T) error {
			*row = draft
			return nil
		}); err != nil {
			return err
		}
	}

	e.draft = nil
	e.editingID = 0
	e.selected = 0
	e.mode = Idle
	return e.Load(ctx)
}

// Delete ต้อง confirm ก่อน ถ้าแถวที่ลบถูกเลือกอยู่ selection จะหายไป
func (e *Editor[T]) Delete(ctx context.Context, id uint, confirm bool) error {
	if !confirm {
		return ErrNotConfirmed
	}
	if err := e.store.Delete(ctx, id); err != nil {
		return err
	}
	if e.selected == id {
		e.selected = 0
		if e.mode == Viewing {
			e.mode = Idle
		}
	}
	return e.Load(ctx)
}

// Filter กรองรายการที่โหลดไว้แล้ว ไม่ยิง DB
func (e *Editor[T]) Filter(q string) []T {
	return services.FilterItems(e.items, q, e.opts.Fields)
}
