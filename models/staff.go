package models

import "time"

// DirectoryMember คือฟิลด์ร่วมของบุคลากรและครู (แสดงผลแบบจัดกลุ่มตาม GroupLevel)
type DirectoryMember struct {
	Name       string `gorm:"size:255" json:"name"`
	Position   string `gorm:"size:255" json:"position"`
	ImageURL   string `gorm:"type:text" json:"image_url"`
	ImageKey   string `gorm:"size:255" json:"-"`
	GroupName  string `gorm:"size:255" json:"group_name"`
	GroupLevel int    `gorm:"index" json:"group_level"` // 1 = ระดับสูงสุด
	SortOrder  int    `json:"sort_order"`
}

type Staff struct {
	ID uint `gorm:"primaryKey" json:"id"`
	DirectoryMember
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Teacher struct {
	ID uint `gorm:"primaryKey" json:"id"`
	DirectoryMember
	Email string `gorm:"size:150" json:"email"`

	// รหัสเข้าใช้งานแดชบอร์ดครู เก็บเฉพาะ hash
	AccessCodeHash      *string    `gorm:"size:64;uniqueIndex" json:"-"`
	AccessCodeExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Member คืนค่าฟิลด์ร่วม ใช้ตอนจัดกลุ่มหน้า directory
func (s Staff) Member() DirectoryMember   { return s.DirectoryMember }
func (t Teacher) Member() DirectoryMember { return t.DirectoryMember }
