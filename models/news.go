package models

import "time"

type NewsItem struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Title       string      `gorm:"size:255" json:"title"`
	Category    string      `gorm:"size:100;index" json:"category"`
	Excerpt     string      `gorm:"type:text" json:"excerpt"`
	Content     string      `gorm:"type:text" json:"content"`
	PublishedAt *time.Time  `gorm:"index" json:"published_at"`
	Images      []NewsImage `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type NewsImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	NewsID    uint      `gorm:"index;not null" json:"news_id"`
	ImageURL  string    `gorm:"type:text" json:"image_url"`
	ImageKey  string    `gorm:"size:255" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
