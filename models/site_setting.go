package models

import (
	"time"

	"gorm.io/datatypes"
)

// SiteSetting หนึ่งแถวต่อหนึ่งชื่อการตั้งค่า เช่น "statistics"
type SiteSetting struct {
	ID        string         `gorm:"primaryKey;size:100" json:"id"`
	Value     datatypes.JSON `json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Statistic เป็นรูปแบบ value ของ setting "statistics"
type Statistic struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}
