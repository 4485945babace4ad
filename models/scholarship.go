package models

import "time"

// สถานะใบสมัครทุน ตามลำดับ workflow
const (
	ScholarshipPending     = "รอดำเนินการ"
	ScholarshipUnderReview = "กำลังพิจารณา"
	ScholarshipApproved    = "อนุมัติ"
)

type ScholarshipApplication struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"size:255" json:"full_name"`
	Nickname     string    `gorm:"size:100" json:"nickname"`
	Gender       string    `gorm:"size:20" json:"gender"`
	BirthDate    string    `gorm:"size:20" json:"birth_date"`
	Phone        string    `gorm:"size:30" json:"phone"`
	Email        string    `gorm:"size:150" json:"email"`
	Address      string    `gorm:"type:text" json:"address"`
	SchoolName   string    `gorm:"size:255" json:"school_name"`
	GradeLevel   string    `gorm:"size:50" json:"grade_level"`
	GPA          string    `gorm:"column:gpa;size:10" json:"gpa"`
	FamilyIncome string    `gorm:"size:50" json:"family_income"`
	Reason       string    `gorm:"type:text" json:"reason"`
	Status       string    `gorm:"size:50;index" json:"status"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
