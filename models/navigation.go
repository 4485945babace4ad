package models

import "time"

type NavbarItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Label     string    `gorm:"size:100" json:"label"`
	Href      string    `gorm:"size:255" json:"href"`
	SortOrder int       `gorm:"index" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AdminSidebarItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Label     string    `gorm:"size:100" json:"label"`
	Href      string    `gorm:"size:255" json:"href"`
	IconName  string    `gorm:"size:100" json:"icon_name"`
	SortOrder int       `gorm:"index" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
