package models

import "time"

// Student ใบสมัครเรียนจากหน้าลงทะเบียนสาธารณะ
// RecruiterName อ้างถึง Teacher.Name ด้วยค่า ไม่ใช่ foreign key
type Student struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// ข้อมูลผู้สมัคร
	Prefix      string `gorm:"size:20" json:"prefix"`
	FirstName   string `gorm:"size:100" json:"first_name"`
	LastName    string `gorm:"size:100" json:"last_name"`
	Nickname    string `gorm:"size:50" json:"nickname"`
	IDCard      string `gorm:"column:id_card;size:13;index" json:"id_card"`
	BirthDate   string `gorm:"size:20" json:"birth_date"`
	Gender      string `gorm:"size:20" json:"gender"`
	Nationality string `gorm:"size:50" json:"nationality"`
	Religion    string `gorm:"size:50" json:"religion"`
	Phone       string `gorm:"size:30" json:"phone"`
	Email       string `gorm:"size:150" json:"email"`
	Address     string `gorm:"type:text" json:"address"`
	PhotoURL    string `gorm:"type:text" json:"photo_url"`

	// บิดา / มารดา / ผู้ปกครอง
	FatherName         string `gorm:"size:255" json:"father_name"`
	FatherOccupation   string `gorm:"size:100" json:"father_occupation"`
	FatherPhone        string `gorm:"size:30" json:"father_phone"`
	MotherName         string `gorm:"size:255" json:"mother_name"`
	MotherOccupation   string `gorm:"size:100" json:"mother_occupation"`
	MotherPhone        string `gorm:"size:30" json:"mother_phone"`
	GuardianName       string `gorm:"size:255" json:"guardian_name"`
	GuardianRelation   string `gorm:"size:50" json:"guardian_relation"`
	GuardianOccupation string `gorm:"size:100" json:"guardian_occupation"`
	GuardianPhone      string `gorm:"size:30" json:"guardian_phone"`

	// ประวัติการศึกษา
	PreviousSchool         string `gorm:"size:255" json:"previous_school"`
	PreviousSchoolProvince string `gorm:"size:100" json:"previous_school_province"`
	PreviousLevel          string `gorm:"size:50" json:"previous_level"`
	PreviousGPA            string `gorm:"column:previous_gpa;size:10" json:"previous_gpa"`
	GraduationYear         string `gorm:"size:10" json:"graduation_year"`

	// ระดับที่สมัคร
	AppliedLevel   string `gorm:"size:50" json:"applied_level"`
	AppliedProgram string `gorm:"size:100" json:"applied_program"`
	RecruiterName  string `gorm:"size:255;index" json:"recruiter_name"`

	// เอกสารประกอบ
	DocIDCard            bool `json:"doc_id_card"`
	DocHouseRegistration bool `json:"doc_house_registration"`
	DocTranscript        bool `json:"doc_transcript"`
	DocPhoto             bool `json:"doc_photo"`
	DocCertificate       bool `json:"doc_certificate"`

	DepositStatus string `gorm:"size:20;default:pending" json:"deposit_status"`
	TuitionStatus string `gorm:"size:20;default:pending" json:"tuition_status"`
	Note          string `gorm:"type:text" json:"note"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s Student) FullName() string {
	name := s.Prefix + s.FirstName
	if s.LastName != "" {
		name += " " + s.LastName
	}
	return name
}
