package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"foundation-backend/models"
)

// ตรงกับคอลัมน์ที่เจ้าหน้าที่ใช้ใน Excel
var scholarshipCSVHeader = []string{
	"ชื่อ-นามสกุล", "ชื่อเล่น", "เพศ", "วันเกิด", "เบอร์โทรศัพท์", "อีเมล", "ที่อยู่",
	"โรงเรียน", "ระดับชั้น", "เกรดเฉลี่ย", "รายได้ครอบครัว", "เหตุผล", "สถานะ", "วันที่สมัคร",
}

// utf8BOM ทำให้ Excel เปิดภาษาไทยถูก
const utf8BOM = "\ufeff"

// ExportScholarshipCSV เขียน header + หนึ่งแถวต่อใบสมัคร ตามลำดับที่ส่งเข้ามา
func ExportScholarshipCSV(w io.Writer, apps []models.ScholarshipApplication) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(scholarshipCSVHeader); err != nil {
		return err
	}
	for _, a := range apps {
		row := []string{
			a.FullName, a.Nickname, a.Gender, a.BirthDate, a.Phone, a.Email, a.Address,
			a.SchoolName, a.GradeLevel, a.GPA, a.FamilyIncome, a.Reason, a.Status,
			formatThaiDate(a.CreatedAt),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ScholarshipCSVFilename(now time.Time) string {
	return fmt.Sprintf("scholarship_applications_%d.csv", now.UnixMilli())
}

// formatThaiDate แสดงวันที่แบบ วัน/เดือน/ปี พ.ศ.
func formatThaiDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year()+543)
}
