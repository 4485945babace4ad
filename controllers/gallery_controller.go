package controllers

import (
	"net/http"

	"foundation-backend/models"
	"foundation-backend/services"
	"foundation-backend/utils"

	"github.com/gin-gonic/gin"
)

// ----------------------------------------------------------------------
// ข่าว (แกลเลอรีหลายรูป)
// ----------------------------------------------------------------------

type NewsController struct {
	*CrudController[models.NewsItem, NewsInput]
	Svc *services.NewsService
}

func NewNewsController(svc *services.NewsService) *NewsController {
	return &NewsController{
		CrudController: NewCrudController[models.NewsItem, NewsInput](svc, NewsInput.apply),
		Svc:            svc,
	}
}

// Create POST multipart: ฟิลด์ข่าว + ไฟล์ "images" หลายไฟล์
func (ctl *NewsController) Create(c *gin.Context) {
	var in NewsInput
	if err := c.ShouldBind(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	var item models.NewsItem
	if err := in.apply(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	failed, err := ctl.Svc.CreateWithGallery(c.Request.Context(), &item, formFiles(c, "images"))
	if err != nil {
		writeError(c, err)
		return
	}
	items, err := ctl.Svc.List(c.Request.Context(), "")
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"item": item, "items": items, "failed": failed})
}

// POST /:id/images
func (ctl *NewsController) AddImages(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	images, failed, err := ctl.Svc.AddImages(c.Request.Context(), id, formFiles(c, "images"))
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"images": images, "failed": failed})
}

// DELETE /:id/images/:imageId?confirm=true
func (ctl *NewsController) DeleteImage(c *gin.Context) {
	parentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	id, ok := parseID(c, "imageId")
	if !ok || !confirmed(c) {
		return
	}
	if err := ctl.Svc.DeleteImage(c.Request.Context(), parentID, id); err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}

// ----------------------------------------------------------------------
// ความภาคภูมิใจ
// ----------------------------------------------------------------------

type PrideController struct {
	*CrudController[models.PrideTopic, PrideTopicInput]
	Svc *services.PrideService
}

func NewPrideController(svc *services.PrideService) *PrideController {
	return &PrideController{
		CrudController: NewCrudController[models.PrideTopic, PrideTopicInput](svc, plain(PrideTopicInput.apply)),
		Svc:            svc,
	}
}

// Create POST multipart: title, description, ไฟล์ "images" และ "captions" เรียงตามไฟล์
func (ctl *PrideController) Create(c *gin.Context) {
	var in PrideTopicInput
	if err := c.ShouldBind(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	var topic models.PrideTopic
	in.apply(&topic)

	failed, err := ctl.Svc.CreateWithImages(c.Request.Context(), &topic, formFiles(c, "images"), c.PostFormArray("captions"))
	if err != nil {
		writeError(c, err)
		return
	}
	items, err := ctl.Svc.List(c.Request.Context(), "")
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"item": topic, "items": items, "failed": failed})
}

func (ctl *PrideController) AddImages(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	images, failed, err := ctl.Svc.AddImages(c.Request.Context(), id, formFiles(c, "images"), c.PostFormArray("captions"))
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"images": images, "failed": failed})
}

func (ctl *PrideController) DeleteImage(c *gin.Context) {
	parentID, ok := parseID(c, "id")
	if !ok {
		return
	}
	id, ok := parseID(c, "imageId")
	if !ok || !confirmed(c) {
		return
	}
	if err := ctl.Svc.DeleteImage(c.Request.Context(), parentID, id); err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}

// ----------------------------------------------------------------------
// รูปโครงการ
// ----------------------------------------------------------------------

type ProgramController struct {
	*CrudController[models.ProgramImage, struct{}]
	Svc *services.ProgramService
}

func NewProgramController(svc *services.ProgramService) *ProgramController {
	noop := func(struct{}, *models.ProgramImage) error { return nil }
	return &ProgramController{
		CrudController: NewCrudController[models.ProgramImage, struct{}](svc, noop),
		Svc:            svc,
	}
}

// Upload POST multipart "images": ไฟล์ที่ไม่ผ่านถูกรายงานใน failed ไฟล์อื่นยังบันทึก
func (ctl *ProgramController) Upload(c *gin.Context) {
	created, failed, err := ctl.Svc.AddImages(c.Request.Context(), formFiles(c, "images"))
	if err != nil {
		writeError(c, err)
		return
	}
	items, err := ctl.Svc.List(c.Request.Context(), "")
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"created": created, "failed": failed, "items": items})
}

// ReplaceImage POST /:id/image ลบไฟล์เดิมก่อนแล้วอัปโหลดใหม่
func (ctl *ProgramController) ReplaceImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	fh := optionalFile(c, "image")
	if fh == nil {
		writeError(c, services.ErrEmptyUpload)
		return
	}
	img, err := ctl.Svc.ReplaceImage(c.Request.Context(), id, fh)
	if err != nil {
		writeError(c, err)
		return
	}
	ctl.respondMutation(c, http.StatusOK, img)
}
