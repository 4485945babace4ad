package models

import "time"

// SlideImage คือสไลด์ hero บนหน้าแรก เรียงตาม SortOrder
type SlideImage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ImageURL    string    `gorm:"type:text" json:"image_url"`
	ImageKey    string    `gorm:"size:255" json:"-"`
	Title       string    `gorm:"size:255" json:"title"`
	Subtitle    string    `gorm:"size:255" json:"subtitle"`
	Description string    `gorm:"type:text" json:"description"`
	Button1Text string    `gorm:"column:button1_text;size:100" json:"button1_text"`
	Button1Link string    `gorm:"column:button1_link;size:255" json:"button1_link"`
	Button2Text string    `gorm:"column:button2_text;size:100" json:"button2_text"`
	Button2Link string    `gorm:"column:button2_link;size:255" json:"button2_link"`
	SortOrder   int       `gorm:"index" json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
