package models

import "time"

type ProgramImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ImageURL  string    `gorm:"type:text" json:"image_url"`
	ImageKey  string    `gorm:"size:255" json:"-"`
	SortOrder int       `gorm:"index" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
