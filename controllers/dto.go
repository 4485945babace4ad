package controllers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"foundation-backend/models"
)

// ----------------------------------------------------------------------
// request bodies (json สำหรับ JSON, form สำหรับ multipart)
// ----------------------------------------------------------------------

type SlideInput struct {
	Title       string `json:"title" form:"title" binding:"required,notblank"`
	Subtitle    string `json:"subtitle" form:"subtitle"`
	Description string `json:"description" form:"description"`
	Button1Text string `json:"button1_text" form:"button1_text"`
	Button1Link string `json:"button1_link" form:"button1_link"`
	Button2Text string `json:"button2_text" form:"button2_text"`
	Button2Link string `json:"button2_link" form:"button2_link"`
}

func (in SlideInput) apply(s *models.SlideImage) {
	s.Title = strings.TrimSpace(in.Title)
	s.Subtitle = in.Subtitle
	s.Description = in.Description
	s.Button1Text, s.Button1Link = in.Button1Text, in.Button1Link
	s.Button2Text, s.Button2Link = in.Button2Text, in.Button2Link
}

type DirectoryInput struct {
	Name       string `json:"name" form:"name" binding:"required,notblank"`
	Position   string `json:"position" form:"position" binding:"required,notblank"`
	GroupName  string `json:"group_name" form:"group_name"`
	GroupLevel int    `json:"group_level" form:"group_level" binding:"gte=0"`
	SortOrder  int    `json:"sort_order" form:"sort_order"`
}

func (in DirectoryInput) applyMember(m *models.DirectoryMember) {
	m.Name = strings.TrimSpace(in.Name)
	m.Position = strings.TrimSpace(in.Position)
	m.GroupName = in.GroupName
	m.GroupLevel = in.GroupLevel
	m.SortOrder = in.SortOrder
}

func (in DirectoryInput) applyStaff(s *models.Staff) { in.applyMember(&s.DirectoryMember) }

type TeacherInput struct {
	DirectoryInput
	Email string `json:"email" form:"email" binding:"omitempty,email"`
}

func (in TeacherInput) apply(t *models.Teacher) {
	in.applyMember(&t.DirectoryMember)
	t.Email = strings.TrimSpace(in.Email)
}

type PartnerInput struct {
	Name       string `json:"name" form:"name" binding:"required,notblank"`
	WebsiteURL string `json:"website_url" form:"website_url"`
}

func (in PartnerInput) apply(p *models.Partner) {
	p.Name = strings.TrimSpace(in.Name)
	p.WebsiteURL = strings.TrimSpace(in.WebsiteURL)
}

type NavItemInput struct {
	Label string `json:"label" binding:"required,notblank"`
	Href  string `json:"href" binding:"required,notblank"`
}

func (in NavItemInput) apply(n *models.NavbarItem) {
	n.Label, n.Href = strings.TrimSpace(in.Label), strings.TrimSpace(in.Href)
}

type SidebarItemInput struct {
	Label    string `json:"label" binding:"required,notblank"`
	Href     string `json:"href" binding:"required,notblank"`
	IconName string `json:"icon_name"`
}

func (in SidebarItemInput) apply(n *models.AdminSidebarItem) {
	n.Label, n.Href = strings.TrimSpace(in.Label), strings.TrimSpace(in.Href)
	n.IconName = in.IconName
}

type PrideTopicInput struct {
	Title       string `json:"title" form:"title" binding:"required,notblank"`
	Description string `json:"description" form:"description"`
}

func (in PrideTopicInput) apply(t *models.PrideTopic) {
	t.Title = strings.TrimSpace(in.Title)
	t.Description = in.Description
}

type NewsInput struct {
	Title       string `json:"title" form:"title" binding:"required,notblank"`
	Category    string `json:"category" form:"category"`
	Excerpt     string `json:"excerpt" form:"excerpt"`
	Content     string `json:"content" form:"content"`
	PublishedAt string `json:"published_at" form:"published_at"`
}

func (in NewsInput) apply(n *models.NewsItem) error {
	published, err := parseDate(in.PublishedAt)
	if err != nil {
		return err
	}
	n.Title = strings.TrimSpace(in.Title)
	n.Category = strings.TrimSpace(in.Category)
	n.Excerpt = in.Excerpt
	n.Content = in.Content
	n.PublishedAt = published
	return nil
}

type ContactInput struct {
	Name    string `json:"name" binding:"required,notblank"`
	Email   string `json:"email" binding:"required,notblank"`
	Subject string `json:"subject" binding:"required,notblank"`
	Message string `json:"message" binding:"required,notblank"`
}

// ใบสมัครทุน: ทุกช่องไม่บังคับ
type ScholarshipInput struct {
	FullName     string `json:"full_name"`
	Nickname     string `json:"nickname"`
	Gender       string `json:"gender"`
	BirthDate    string `json:"birth_date"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	SchoolName   string `json:"school_name"`
	GradeLevel   string `json:"grade_level"`
	GPA          string `json:"gpa"`
	FamilyIncome string `json:"family_income"`
	Reason       string `json:"reason"`
}

func (in ScholarshipInput) apply(a *models.ScholarshipApplication) {
	a.FullName, a.Nickname, a.Gender, a.BirthDate = in.FullName, in.Nickname, in.Gender, in.BirthDate
	a.Phone, a.Email, a.Address = in.Phone, in.Email, in.Address
	a.SchoolName, a.GradeLevel, a.GPA = in.SchoolName, in.GradeLevel, in.GPA
	a.FamilyIncome, a.Reason = in.FamilyIncome, in.Reason
}

// DonationForm มาจากฟอร์มบริจาค (multipart) ยอดเงินเป็นข้อความ เช่น "1,500.50"
type DonationForm struct {
	FullName        string `form:"full_name" binding:"required,notblank"`
	CitizenID       string `form:"citizen_id"`
	Address         string `form:"address"`
	Phone           string `form:"phone"`
	Email           string `form:"email"`
	DonationDate    string `form:"donation_date"`
	Amount          string `form:"amount" binding:"required,notblank"`
	PaymentMethod   string `form:"payment_method"`
	DeliveryType    string `form:"delivery_type"`
	ShippingAddress string `form:"shipping_address"`
}

// DonationEdit ใช้ตอนแอดมินแก้ไขรายการ
type DonationEdit struct {
	FullName        string  `json:"full_name" binding:"required,notblank"`
	CitizenID       string  `json:"citizen_id"`
	Address         string  `json:"address"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	DonationDate    string  `json:"donation_date"`
	Amount          float64 `json:"amount" binding:"gte=0"`
	PaymentMethod   string  `json:"payment_method"`
	DeliveryType    string  `json:"delivery_type"`
	ShippingAddress string  `json:"shipping_address"`
}

func (in DonationEdit) apply(d *models.Donation) error {
	date, err := parseDate(in.DonationDate)
	if err != nil {
		return err
	}
	d.FullName = strings.TrimSpace(in.FullName)
	d.CitizenID, d.Address, d.Phone, d.Email = in.CitizenID, in.Address, in.Phone, in.Email
	d.DonationDate = date
	d.Amount = in.Amount
	d.PaymentMethod, d.DeliveryType, d.ShippingAddress = in.PaymentMethod, in.DeliveryType, in.ShippingAddress
	return nil
}

// StudentInput คือ schema ใบสมัครเรียน: required ตามด้านล่าง ที่เหลือไม่บังคับ
type StudentInput struct {
	Prefix      string `json:"prefix"`
	FirstName   string `json:"first_name" binding:"required,notblank"`
	LastName    string `json:"last_name" binding:"required,notblank"`
	Nickname    string `json:"nickname"`
	IDCard      string `json:"id_card" binding:"required,thaiid"`
	BirthDate   string `json:"birth_date"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
	Religion    string `json:"religion"`
	Phone       string `json:"phone" binding:"required,notblank"`
	Email       string `json:"email" binding:"omitempty,email"`
	Address     string `json:"address"`
	PhotoURL    string `json:"photo_url"`

	FatherName         string `json:"father_name"`
	FatherOccupation   string `json:"father_occupation"`
	FatherPhone        string `json:"father_phone"`
	MotherName         string `json:"mother_name"`
	MotherOccupation   string `json:"mother_occupation"`
	MotherPhone        string `json:"mother_phone"`
	GuardianName       string `json:"guardian_name"`
	GuardianRelation   string `json:"guardian_relation"`
	GuardianOccupation string `json:"guardian_occupation"`
	GuardianPhone      string `json:"guardian_phone"`

	PreviousSchool         string `json:"previous_school"`
	PreviousSchoolProvince string `json:"previous_school_province"`
	PreviousLevel          string `json:"previous_level"`
	PreviousGPA            string `json:"previous_gpa"`
	GraduationYear         string `json:"graduation_year"`

	AppliedLevel   string `json:"applied_level" binding:"required,notblank"`
	AppliedProgram string `json:"applied_program"`
	RecruiterName  string `json:"recruiter_name"`

	DocIDCard            bool `json:"doc_id_card"`
	DocHouseRegistration bool `json:"doc_house_registration"`
	DocTranscript        bool `json:"doc_transcript"`
	DocPhoto             bool `json:"doc_photo"`
	DocCertificate       bool `json:"doc_certificate"`
}

func (in StudentInput) apply(s *models.Student) {
	s.Prefix, s.FirstName, s.LastName, s.Nickname = in.Prefix, strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName), in.Nickname
	s.IDCard, s.BirthDate, s.Gender = in.IDCard, in.BirthDate, in.Gender
	s.Nationality, s.Religion = in.Nationality, in.Religion
	s.Phone, s.Email, s.Address, s.PhotoURL = in.Phone, in.Email, in.Address, in.PhotoURL

	s.FatherName, s.FatherOccupation, s.FatherPhone = in.FatherName, in.FatherOccupation, in.FatherPhone
	s.MotherName, s.MotherOccupation, s.MotherPhone = in.MotherName, in.MotherOccupation, in.MotherPhone
	s.GuardianName, s.GuardianRelation = in.GuardianName, in.GuardianRelation
	s.GuardianOccupation, s.GuardianPhone = in.GuardianOccupation, in.GuardianPhone

	s.PreviousSchool, s.PreviousSchoolProvince = in.PreviousSchool, in.PreviousSchoolProvince
	s.PreviousLevel, s.PreviousGPA, s.GraduationYear = in.PreviousLevel, in.PreviousGPA, in.GraduationYear

	s.AppliedLevel, s.AppliedProgram = in.AppliedLevel, in.AppliedProgram
	s.RecruiterName = strings.TrimSpace(in.RecruiterName)

	s.DocIDCard, s.DocHouseRegistration, s.DocTranscript = in.DocIDCard, in.DocHouseRegistration, in.DocTranscript
	s.DocPhoto, s.DocCertificate = in.DocPhoto, in.DocCertificate
}

type StudentEdit struct {
	StudentInput
	Note string `json:"note"`
}

func (in StudentEdit) apply(s *models.Student) {
	in.StudentInput.apply(s)
	s.Note = in.Note
}

type StatusInput struct {
	Status string `json:"status" binding:"required,notblank"`
}

type SwapInput struct {
	IDA uint `json:"id_a" binding:"required"`
	IDB uint `json:"id_b" binding:"required"`
}

type SettingInput struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required,notblank"`
	Password string `json:"password" binding:"required"`
}

type AccessCodeInput struct {
	Code string `json:"code" binding:"required,notblank"`
}

// parseDate รับ "2006-01-02" หรือ RFC3339 ค่าว่าง = nil
func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", raw)
}
