package models

import "time"

type Partner struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255" json:"name"`
	LogoURL    string    `gorm:"type:text" json:"logo_url"`
	LogoKey    string    `gorm:"size:255" json:"-"`
	WebsiteURL string    `gorm:"size:255" json:"website_url"`
	SortOrder  int       `gorm:"index" json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
