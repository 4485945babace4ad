package services

import (
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"foundation-backend/models"
)

// PrintService สร้างหน้า HTML ขนาด A4 สำหรับสั่งพิมพ์/บันทึก PDF จากเบราว์เซอร์ ไม่เก็บไฟล์
type PrintService struct {
	OrgName string
	LogoURL string
	Now     func() time.Time
	tmpl    *template.Template
}

func NewPrintService(orgName, logoURL string) *PrintService {
	funcs := template.FuncMap{
		"thaiDate":  formatThaiDate,
		"thaiDateP": formatThaiDatePtr,
		"baht":      formatBaht,
		"dash":      dash,
		"check":     checkbox,
	}
	t := template.Must(template.New("layout").Funcs(funcs).Parse(printLayout))
	template.Must(t.New("donation").Parse(donationBody))
	template.Must(t.New("scholarship").Parse(scholarshipBody))
	template.Must(t.New("student").Parse(studentBody))
	return &PrintService{OrgName: orgName, LogoURL: logoURL, Now: time.Now, tmpl: t}
}

type printPage struct {
	Title     string
	OrgName   string
	LogoURL   string
	PrintedAt time.Time
	Body      string
	Data      any
}

func (s *PrintService) render(w io.Writer, body, title string, data any) error {
	return s.tmpl.ExecuteTemplate(w, "layout", printPage{
		Title:     title,
		OrgName:   s.OrgName,
		LogoURL:   s.LogoURL,
		PrintedAt: s.Now(),
		Body:      body,
		Data:      data,
	})
}

func (s *PrintService) DonationReceipt(w io.Writer, d *models.Donation) error {
	return s.render(w, "donation", "ใบอนุโมทนาบัตร / ใบเสร็จรับเงินบริจาค", d)
}

func (s *PrintService) ScholarshipForm(w io.Writer, a *models.ScholarshipApplication) error {
	return s.render(w, "scholarship", "ใบสมัครขอรับทุนการศึกษา", a)
}

func (s *PrintService) StudentForm(w io.Writer, st *models.Student) error {
	return s.render(w, "student", "ใบสมัครเข้าเรียน", st)
}

func formatThaiDatePtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatThaiDate(*t)
}

func checkbox(b bool) string {
	if b {
		return "☑"
	}
	return "☐"
}

func dash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// formatBaht เช่น 1500.5 -> "1,500.50"
func formatBaht(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := fmt.Sprintf("%s.%s", b.String(), frac)
	if neg {
		out = "-" + out
	}
	return out
}

// ----------------------------------------------------------------
// templates
// ----------------------------------------------------------------

const printLayout = `<!doctype html>
<html lang="th">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: A4; margin: 18mm 16mm; }
body { font-family: "Sarabun", "TH Sarabun New", Tahoma, sans-serif; font-size: 15px; color: #111; }
.header { display: flex; align-items: center; gap: 14px; border-bottom: 2px solid #333; padding-bottom: 10px; }
.header img { height: 64px; }
.org { font-size: 20px; font-weight: 700; }
h1 { font-size: 19px; text-align: center; margin: 18px 0; }
h2 { font-size: 16px; margin: 16px 0 6px; border-bottom: 1px solid #ccc; }
table.fields { width: 100%; border-collapse: collapse; }
table.fields td { padding: 4px 6px; vertical-align: top; }
table.fields td.label { width: 34%; font-weight: 700; }
.signatures { display: flex; justify-content: space-around; margin-top: 56px; }
.sign { text-align: center; width: 40%; }
.sign .line { border-bottom: 1px dotted #333; height: 36px; margin-bottom: 6px; }
.footer { margin-top: 24px; font-size: 12px; color: #666; text-align: right; }
@media print { .noprint { display: none; } }
</style>
</head>
<body onload="window.print()">
<div class="header">
  {{if .LogoURL}}<img src="{{.LogoURL}}" alt="logo">{{end}}
  <div class="org">{{.OrgName}}</div>
</div>
<h1>{{.Title}}</h1>
{{if eq .Body "donation"}}{{template "donation" .Data}}{{end}}
{{if eq .Body "scholarship"}}{{template "scholarship" .Data}}{{end}}
{{if eq .Body "student"}}{{template "student" .Data}}{{end}}
<div class="footer">พิมพ์เมื่อ {{thaiDate .PrintedAt}}</div>
</body>
</html>`

const donationBody = `<table class="fields">
<tr><td class="label">เลขที่</td><td>{{.ID}}</td></tr>
<tr><td class="label">ได้รับเงินจาก</td><td>{{dash .FullName}}</td></tr>
<tr><td class="label">เลขประจำตัวผู้เสียภาษี / บัตรประชาชน</td><td>{{dash .CitizenID}}</td></tr>
<tr><td class="label">ที่อยู่</td><td>{{dash .Address}}</td></tr>
<tr><td class="label">โทรศัพท์</td><td>{{dash .Phone}}</td></tr>
<tr><td class="label">วันที่บริจาค</td><td>{{thaiDateP .DonationDate}}</td></tr>
<tr><td class="label">จำนวนเงิน</td><td>{{baht .Amount}} บาท</td></tr>
<tr><td class="label">ช่องทางชำระ</td><td>{{dash .PaymentMethod}}</td></tr>
<tr><td class="label">การจัดส่งใบเสร็จ</td><td>{{dash .DeliveryType}} {{.ShippingAddress}}</td></tr>
<tr><td class="label">สถานะ</td><td>{{.Status}}</td></tr>
</table>
<div class="signatures">
  <div class="sign"><div class="line"></div>ผู้รับเงิน</div>
  <div class="sign"><div class="line"></div>ประธานมูลนิธิ</div>
</div>`

const scholarshipBody = `<h2>ข้อมูลผู้สมัคร</h2>
<table class="fields">
<tr><td class="label">ชื่อ-นามสกุล</td><td>{{dash .FullName}}</td></tr>
<tr><td class="label">ชื่อเล่น</td><td>{{dash .Nickname}}</td></tr>
<tr><td class="label">เพศ</td><td>{{dash .Gender}}</td></tr>
<tr><td class="label">วันเกิด</td><td>{{dash .BirthDate}}</td></tr>
<tr><td class="label">เบอร์โทรศัพท์</td><td>{{dash .Phone}}</td></tr>
<tr><td class="label">อีเมล</td><td>{{dash .Email}}</td></tr>
<tr><td class="label">ที่อยู่</td><td>{{dash .Address}}</td></tr>
</table>
<h2>ข้อมูลการศึกษา</h2>
<table class="fields">
<tr><td class="label">โรงเรียน</td><td>{{dash .SchoolName}}</td></tr>
<tr><td class="label">ระดับชั้น</td><td>{{dash .GradeLevel}}</td></tr>
<tr><td class="label">เกรดเฉลี่ย</td><td>{{dash .GPA}}</td></tr>
<tr><td class="label">รายได้ครอบครัว</td><td>{{dash .FamilyIncome}}</td></tr>
<tr><td class="label">เหตุผลที่ขอรับทุน</td><td>{{dash .Reason}}</td></tr>
<tr><td class="label">สถานะ</td><td>{{.Status}}</td></tr>
<tr><td class="label">วันที่สมัคร</td><td>{{thaiDate .CreatedAt}}</td></tr>
</table>
<div class="signatures">
  <div class="sign"><div class="line"></div>ผู้สมัคร</div>
  <div class="sign"><div class="line"></div>เจ้าหน้าที่ผู้รับเรื่อง</div>
</div>`

const studentBody = `<h2>ข้อมูลนักเรียน</h2>
<table class="fields">
<tr><td class="label">ชื่อ-นามสกุล</td><td>{{.Prefix}}{{.FirstName}} {{.LastName}}</td></tr>
<tr><td class="label">ชื่อเล่น</td><td>{{dash .Nickname}}</td></tr>
<tr><td class="label">เลขประจำตัวประชาชน</td><td>{{dash .IDCard}}</td></tr>
<tr><td class="label">วันเกิด</td><td>{{dash .BirthDate}}</td></tr>
<tr><td class="label">เพศ / สัญชาติ / ศาสนา</td><td>{{dash .Gender}} / {{dash .Nationality}} / {{dash .Religion}}</td></tr>
<tr><td class="label">โทรศัพท์ / อีเมล</td><td>{{dash .Phone}} / {{dash .Email}}</td></tr>
<tr><td class="label">ที่อยู่</td><td>{{dash .Address}}</td></tr>
</table>
<h2>ข้อมูลผู้ปกครอง</h2>
<table class="fields">
<tr><td class="label">บิดา</td><td>{{dash .FatherName}} ({{dash .FatherOccupation}}) {{.FatherPhone}}</td></tr>
<tr><td class="label">มารดา</td><td>{{dash .MotherName}} ({{dash .MotherOccupation}}) {{.MotherPhone}}</td></tr>
<tr><td class="label">ผู้ปกครอง</td><td>{{dash .GuardianName}} {{.GuardianRelation}} ({{dash .GuardianOccupation}}) {{.GuardianPhone}}</td></tr>
</table>
<h2>ประวัติการศึกษา / การสมัคร</h2>
<table class="fields">
<tr><td class="label">โรงเรียนเดิม</td><td>{{dash .PreviousSchool}} {{.PreviousSchoolProvince}}</td></tr>
<tr><td class="label">ระดับชั้นเดิม / เกรดเฉลี่ย</td><td>{{dash .PreviousLevel}} / {{dash .PreviousGPA}}</td></tr>
<tr><td class="label">ปีที่จบ</td><td>{{dash .GraduationYear}}</td></tr>
<tr><td class="label">ระดับชั้นที่สมัคร</td><td>{{dash .AppliedLevel}}</td></tr>
<tr><td class="label">แผนการเรียน</td><td>{{dash .AppliedProgram}}</td></tr>
<tr><td class="label">ครูผู้แนะนำ</td><td>{{dash .RecruiterName}}</td></tr>
</table>
<h2>เอกสารประกอบ</h2>
<p>{{check .DocIDCard}} สำเนาบัตรประชาชน &nbsp; {{check .DocHouseRegistration}} สำเนาทะเบียนบ้าน &nbsp;
{{check .DocTranscript}} ใบแสดงผลการเรียน &nbsp; {{check .DocPhoto}} รูปถ่าย &nbsp; {{check .DocCertificate}} ใบรับรอง</p>
<div class="signatures">
  <div class="sign"><div class="line"></div>ผู้สมัคร</div>
  <div class="sign"><div class="line"></div>ผู้ปกครอง</div>
</div>`
