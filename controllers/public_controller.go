package controllers

import (
	"net/http"
	"strings"

	"foundation-backend/models"
	"foundation-backend/services"
	"foundation-backend/utils"

	"github.com/gin-gonic/gin"
)

// StudentRegisterURL หน้าให้ผู้ที่ยังไม่เคยสมัครไปกรอกใบสมัคร
const StudentRegisterURL = "/student/register"

// PublicController คือ endpoint ที่หน้าเว็บสาธารณะเรียก (อ่าน + ส่งฟอร์ม) ไม่ต้อง login
type PublicController struct {
	Slides       *services.ImageCrudService[models.SlideImage]
	News         *services.NewsService
	Programs     *services.ProgramService
	Staff        *services.ImageCrudService[models.Staff]
	Teachers     *services.ImageCrudService[models.Teacher]
	Partners     *services.ImageCrudService[models.Partner]
	Pride        *services.PrideService
	Navbar       *services.CrudService[models.NavbarItem]
	Settings     *services.SettingsService
	Contacts     *services.ContactService
	Scholarships *services.ScholarshipService
	Donations    *services.DonationService
	Students     *services.StudentService
}

func listing[T any](c *gin.Context, items []T, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

// ----------------------------------------------------------------------
// อ่านอย่างเดียว
// ----------------------------------------------------------------------

func (p *PublicController) ListSlides(c *gin.Context) {
	items, err := p.Slides.List(c.Request.Context(), "")
	listing(c, items, err)
}

func (p *PublicController) ListNews(c *gin.Context) {
	items, err := p.News.List(c.Request.Context(), c.Query("q"))
	listing(c, items, err)
}

func (p *PublicController) GetNews(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := p.News.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

func (p *PublicController) ListPrograms(c *gin.Context) {
	items, err := p.Programs.List(c.Request.Context(), "")
	listing(c, items, err)
}

// StaffDirectory จัดกลุ่มตาม group_level แล้ว sort_order
func (p *PublicController) StaffDirectory(c *gin.Context) {
	items, err := p.Staff.List(c.Request.Context(), "")
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.GroupMembers(items))
}

func (p *PublicController) TeacherDirectory(c *gin.Context) {
	items, err := p.Teachers.List(c.Request.Context(), "")
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, services.GroupMembers(items))
}

func (p *PublicController) ListPartners(c *gin.Context) {
	items, err := p.Partners.List(c.Request.Context(), "")
	listing(c, items, err)
}

func (p *PublicController) ListPrideTopics(c *gin.Context) {
	items, err := p.Pride.List(c.Request.Context(), "")
	listing(c, items, err)
}

func (p *PublicController) ListNavbar(c *gin.Context) {
	items, err := p.Navbar.List(c.Request.Context(), "")
	listing(c, items, err)
}

func (p *PublicController) GetSetting(c *gin.Context) {
	row, err := p.Settings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, row)
}

// GET /api/public/statistics ตัวเลขหน้าแรก
func (p *PublicController) Statistics(c *gin.Context) {
	stats, err := p.Settings.Statistics(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// ----------------------------------------------------------------------
// ส่งฟอร์ม
// ----------------------------------------------------------------------

func (p *PublicController) SubmitContact(c *gin.Context) {
	var in ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	msg := models.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
	}
	if err := p.Contacts.Submit(c.Request.Context(), &msg); err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, msg)
}

func (p *PublicController) SubmitScholarship(c *gin.Context) {
	var in ScholarshipInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	var app models.ScholarshipApplication
	in.apply(&app)
	if err := p.Scholarships.Submit(c.Request.Context(), &app); err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{"application": app, "message": services.AckMessage})
}

// SubmitDonation multipart: ฟิลด์ฟอร์ม + สลิป "receipt" (ไม่บังคับ)
func (p *PublicController) SubmitDonation(c *gin.Context) {
	var in DonationForm
	if err := c.ShouldBind(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	amount, err := utils.ParseAmount(in.Amount)
	if err != nil {
		writeError(c, err)
		return
	}
	date, err := parseDate(in.DonationDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	d := models.Donation{
		FullName:        strings.TrimSpace(in.FullName),
		CitizenID:       strings.TrimSpace(in.CitizenID),
		Address:         in.Address,
		Phone:           in.Phone,
		Email:           in.Email,
		DonationDate:    date,
		Amount:          amount,
		PaymentMethod:   in.PaymentMethod,
		DeliveryType:    in.DeliveryType,
		ShippingAddress: in.ShippingAddress,
	}
	if err := p.Donations.Submit(c.Request.Context(), &d, optionalFile(c, "receipt")); err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, d)
}

func (p *PublicController) RegisterStudent(c *gin.Context) {
	var in StudentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	var st models.Student
	in.apply(&st)
	if err := p.Students.Register(c.Request.Context(), &st); err != nil {
		writeError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, st)
}

// StudentSummary สิ่งที่หน้าเช็คสถานะแสดง (ไม่คืนข้อมูลครอบครัว)
type StudentSummary struct {
	ID             uint   `json:"id"`
	FullName       string `json:"full_name"`
	AppliedLevel   string `json:"applied_level"`
	AppliedProgram string `json:"applied_program"`
	DepositStatus  string `json:"deposit_status"`
	TuitionStatus  string `json:"tuition_status"`
}

// StudentStatus GET ?id_card= ไม่พบไม่ใช่ error แต่ชี้ไปหน้าสมัคร
func (p *PublicController) StudentStatus(c *gin.Context) {
	st, err := p.Students.FindByIDCard(c.Request.Context(), c.Query("id_card"))
	if err != nil {
		writeError(c, err)
		return
	}
	if st == nil {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"found": false, "register_url": StudentRegisterURL})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"found": true, "student": StudentSummary{
		ID:             st.ID,
		FullName:       st.FullName(),
		AppliedLevel:   st.AppliedLevel,
		AppliedProgram: st.AppliedProgram,
		DepositStatus:  st.DepositStatus,
		TuitionStatus:  st.TuitionStatus,
	}})
}
