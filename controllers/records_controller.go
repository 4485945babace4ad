package controllers

import (
	"bytes"
	"net/http"
	"time"

	"foundation-backend/models"
	"foundation-backend/services"
	"foundation-backend/utils"

	"github.com/gin-gonic/gin"
)

// ----------------------------------------------------------------------
// ข้อความติดต่อ
// ----------------------------------------------------------------------

type ContactController struct {
	*CrudController[models.ContactMessage, struct{}]
	Svc *services.ContactService
}

func NewContactController(svc *services.ContactService) *ContactController {
	noop := func(struct{}, *models.ContactMessage) error { return nil }
	return &ContactController{
		CrudController: NewCrudController[models.ContactMessage, struct{}](svc, noop),
		Svc:            svc,
	}
}

// PATCH /:id/read
func (ctl *ContactController) MarkRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	msg, err := ctl.Svc.MarkRead(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	ctl.respondMutation(c, http.StatusOK, msg)
}

// ----------------------------------------------------------------------
// ใบสมัครทุน
// ----------------------------------------------------------------------

type ScholarshipController struct {
	*CrudController[models.ScholarshipApplication, ScholarshipInput]
	Svc   *services.ScholarshipService
	Print *services.PrintService
	Now   func() time.Time
}

func NewScholarshipController(svc *services.ScholarshipService, printer *services.PrintService) *ScholarshipController {
	return &ScholarshipController{
		CrudController: NewCrudController[models.ScholarshipApplication, ScholarshipInput](svc, plain(ScholarshipInput.apply)),
		Svc:            svc,
		Print:          printer,
		Now:            time.Now,
	}
}

// PATCH /:id/status {"status":"กำลังพิจารณา"} เดินได้ทีละขั้นไปข้างหน้าเท่านั้น
func (ctl *ScholarshipController) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in StatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	app, err := ctl.Svc.ChangeStatus(c.Request.Context(), id, in.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	ctl.respondMutation(c, http.StatusOK, app)
}

// GET /export?q= ดาวน์โหลด CSV ตามรายการที่กรองอยู่
func (ctl *ScholarshipController) Export(c *gin.Context) {
	apps, err := ctl.Svc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := services.ExportScholarshipCSV(&buf, apps); err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+services.ScholarshipCSVFilename(ctl.Now()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// GET /:id/print
func (ctl *ScholarshipController) PrintForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	app, err := ctl.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	renderHTML(c, func(buf *bytes.Buffer) error { return ctl.Print.ScholarshipForm(buf, app) })
}

// ----------------------------------------------------------------------
// เงินบริจาค
// ----------------------------------------------------------------------

type DonationController struct {
	*CrudController[models.Donation, DonationEdit]
	Svc   *services.DonationService
	Print *services.PrintService
}

func NewDonationController(svc *services.DonationService, printer *services.PrintService) *DonationController {
	return &DonationController{
		CrudController: NewCrudController[models.Donation, DonationEdit](svc, DonationEdit.apply),
		Svc:            svc,
		Print:          printer,
	}
}

// PATCH /:id/status {"status":"paid"}
func (ctl *DonationController) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in StatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	d, err := ctl.Svc.SetStatus(c.Request.Context(), id, in.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	ctl.respondMutation(c, http.StatusOK, d)
}

func (ctl *DonationController) PrintReceipt(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	d, err := ctl.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	renderHTML(c, func(buf *bytes.Buffer) error { return ctl.Print.DonationReceipt(buf, d) })
}

// ----------------------------------------------------------------------
// นักเรียน
// ----------------------------------------------------------------------

type StudentController struct {
	*CrudController[models.Student, StudentEdit]
	Svc   *services.StudentService
	Print *services.PrintService
}

func NewStudentController(svc *services.StudentService, printer *services.PrintService) *StudentController {
	return &StudentController{
		CrudController: NewCrudController[models.Student, StudentEdit](svc, plain(StudentEdit.apply)),
		Svc:            svc,
		Print:          printer,
	}
}

// PATCH /:id/status {"deposit_status":"paid"} ส่งเฉพาะฟิลด์ที่จะเปลี่ยน
func (ctl *StudentController) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.PaymentStatus
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	st, err := ctl.Svc.SetStatus(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	ctl.respondMutation(c, http.StatusOK, st)
}

func (ctl *StudentController) PrintForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	st, err := ctl.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	renderHTML(c, func(buf *bytes.Buffer) error { return ctl.Print.StudentForm(buf, st) })
}

// renderHTML เรนเดอร์ลง buffer ก่อน เพื่อให้ตอบ error เป็น JSON ได้ถ้า template พัง
func renderHTML(c *gin.Context, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
