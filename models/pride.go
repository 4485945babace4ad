package models

import "time"

// PrideTopic หัวข้อ "ความภาคภูมิใจ" พร้อมแกลเลอรีรูป
type PrideTopic struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Title       string       `gorm:"size:255" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	SortOrder   int          `gorm:"index" json:"sort_order"`
	Images      []PrideImage `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type PrideImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TopicID   uint      `gorm:"index;not null" json:"topic_id"`
	ImageURL  string    `gorm:"type:text" json:"image_url"`
	ImageKey  string    `gorm:"size:255" json:"-"`
	Caption   string    `gorm:"size:255" json:"caption"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}
