package controllers

import (
	"context"
	"mime/multipart"
	"net/http"

	"foundation-backend/services"
	"foundation-backend/utils"

	"github.com/gin-gonic/gin"
)

type crudStore[T any] interface {
	List(ctx context.Context, q string) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id uint, apply func(*T) error) (*T, error)
	Delete(ctx context.Context, id uint) error
	Swap(ctx context.Context, idA, idB uint) error
}

type imageStore[T any] interface {
	CreateWithImage(ctx context.Context, item *T, fh *multipart.FileHeader) error
	SetImage(ctx context.Context, id uint, fh *multipart.FileHeader) (*T, error)
}

// CrudController ให้ handler list/get/create/update/delete/reorder กับทุกโมดูลหลังบ้าน
// D คือ request body ของ create/update, Apply คัดลอกค่าจาก D ลงแถว
type CrudController[T any, D any] struct {
	Store  crudStore[T]
	Images imageStore[T]
	Apply  func(D, *T) error
}

func NewCrudController[T any, D any](store crudStore[T], apply func(D, *T) error) *CrudController[T, D] {
	ctl := &CrudController[T, D]{Store: store, Apply: apply}
	if img, ok := store.(imageStore[T]); ok {
		ctl.Images = img
	}
	return ctl
}

// plain ปรับ apply ที่ไม่มี error ให้เข้ากับ CrudController
func plain[D any, T any](f func(D, *T)) func(D, *T) error {
	return func(in D, row *T) error {
		f(in, row)
		return nil
	}
}

// respondMutation ตอบแถวที่เพิ่งแก้ พร้อม list ใหม่ทั้งหมด
func (ctl *CrudController[T, D]) respondMutation(c *gin.Context, code int, item any) {
	items, err := ctl.Store.List(c.Request.Context(), "")
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, code, gin.H{"item": item, "items": items})
}

// GET /?q=
func (ctl *CrudController[T, D]) List(c *gin.Context) {
	items, err := ctl.Store.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

// GET /:id
func (ctl *CrudController[T, D]) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := ctl.Store.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

// POST / รับได้ทั้ง JSON และ multipart (field ไฟล์ "image")
func (ctl *CrudController[T, D]) Create(c *gin.Context) {
	var in D
	if err := c.ShouldBind(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	var item T
	if err := ctl.Apply(in, &item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var err error
	if ctl.Images != nil {
		err = ctl.Images.CreateWithImage(c.Request.Context(), &item, optionalFile(c, "image"))
	} else {
		err = ctl.Store.Create(c.Request.Context(), &item)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	ctl.respondMutation(c, http.StatusCreated, &item)
}

// PUT /:id เขียนทับฟิลด์ที่แก้ได้ทั้งหมด
func (ctl *CrudController[T, D]) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in D
	if err := c.ShouldBind(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	var applyErr error
	item, err := ctl.Store.Update(c.Request.Context(), id, func(row *T) error {
		applyErr = ctl.Apply(in, row)
		return applyErr
	})
	if applyErr != nil {
		utils.JSONError(c, http.StatusBadRequest, applyErr.Error())
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	ctl.respondMutation(c, http.StatusOK, item)
}

// DELETE /:id?confirm=true
func (ctl *CrudController[T, D]) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !confirmed(c) {
		return
	}
	if err := ctl.Store.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	ctl.respondMutation(c, http.StatusOK, gin.H{"id": id})
}

// POST /reorder {"id_a":1,"id_b":2} สลับ sort_order สองแถว
func (ctl *CrudController[T, D]) Reorder(c *gin.Context) {
	var in SwapInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if in.IDA == in.IDB {
		utils.JSONError(c, http.StatusBadRequest, "id_a and id_b must differ")
		return
	}
	if err := ctl.Store.Swap(c.Request.Context(), in.IDA, in.IDB); err != nil {
		writeError(c, err)
		return
	}
	ctl.respondMutation(c, http.StatusOK, gin.H{"id_a": in.IDA, "id_b": in.IDB})
}

// POST /:id/image (multipart field "image")
func (ctl *CrudController[T, D]) UploadImage(c *gin.Context) {
	if ctl.Images == nil {
		utils.JSONError(c, http.StatusNotFound, "module has no image")
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	fh := optionalFile(c, "image")
	if fh == nil {
		writeError(c, services.ErrEmptyUpload)
		return
	}
	item, err := ctl.Images.SetImage(c.Request.Context(), id, fh)
	if err != nil {
		writeError(c, err)
		return
	}
	ctl.respondMutation(c, http.StatusOK, item)
}
