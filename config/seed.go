package config

import (
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"foundation-backend/models"
)

// ---------------------------------------------------
// SeedDatabase ใส่ข้อมูลตั้งต้นเฉพาะตอนตารางยังว่าง
// ---------------------------------------------------
func SeedDatabase(db *gorm.DB, cfg *Config, log *zap.Logger) {
	// ---------------- Admins ----------------
	var adminCount int64
	db.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 && cfg.Admin.Password != "" {
		admin, err := models.NewAdmin(cfg.Admin.Name, cfg.Admin.Username, cfg.Admin.Password)
		if err != nil {
			log.Warn("invalid default admin", zap.Error(err))
		} else if err := db.Create(admin).Error; err != nil {
			log.Warn("failed to create default admin", zap.Error(err))
		} else {
			log.Info("default admin seeded", zap.String("username", admin.Username))
		}
	}

	// ---------------- Statistics ----------------
	var stat models.SiteSetting
	if err := db.Where("id = ?", "statistics").First(&stat).Error; err != nil {
		value, _ := json.Marshal([]models.Statistic{
			{Number: "0", Label: "นักเรียนทุน"},
			{Number: "0", Label: "โครงการ"},
			{Number: "0", Label: "ผู้บริจาค"},
		})
		stat = models.SiteSetting{ID: "statistics", Value: datatypes.JSON(value)}
		if err := db.Create(&stat).Error; err != nil {
			log.Warn("failed to seed statistics setting", zap.Error(err))
		}
	}

	// ---------------- Navbar ----------------
	var navCount int64
	db.Model(&models.NavbarItem{}).Count(&navCount)
	if navCount == 0 {
		items := []models.NavbarItem{
			{Label: "หน้าแรก", Href: "/", SortOrder: 1},
			{Label: "เกี่ยวกับเรา", Href: "/about", SortOrder: 2},
			{Label: "โครงการ", Href: "/programs", SortOrder: 3},
			{Label: "ข่าวสาร", Href: "/news", SortOrder: 4},
			{Label: "ทุนการศึกษา", Href: "/scholarship", SortOrder: 5},
			{Label: "บริจาค", Href: "/donate", SortOrder: 6},
			{Label: "ติดต่อเรา", Href: "/contact", SortOrder: 7},
		}
		if err := db.Create(&items).Error; err != nil {
			log.Warn("failed to seed navbar", zap.Error(err))
		}
	}

	// ---------------- Admin sidebar ----------------
	var sideCount int64
	db.Model(&models.AdminSidebarItem{}).Count(&sideCount)
	if sideCount == 0 {
		items := []models.AdminSidebarItem{
			{Label: "ภาพรวม", Href: "/admin", IconName: "LayoutDashboard", SortOrder: 1},
			{Label: "สไลด์", Href: "/admin/slides", IconName: "Image", SortOrder: 2},
			{Label: "ข่าวสาร", Href: "/admin/news", IconName: "Newspaper", SortOrder: 3},
			{Label: "บุคลากร", Href: "/admin/staff", IconName: "Users", SortOrder: 4},
			{Label: "การบริจาค", Href: "/admin/donations", IconName: "HandCoins", SortOrder: 5},
			{Label: "ทุนการศึกษา", Href: "/admin/scholarships", IconName: "GraduationCap", SortOrder: 6},
			{Label: "นักเรียน", Href: "/admin/students", IconName: "School", SortOrder: 7},
			{Label: "ข้อความติดต่อ", Href: "/admin/messages", IconName: "Mail", SortOrder: 8},
			{Label: "ตั้งค่า", Href: "/admin/settings", IconName: "Settings", SortOrder: 9},
		}
		if err := db.Create(&items).Error; err != nil {
			log.Warn("failed to seed sidebar", zap.Error(err))
		}
	}

	log.Info("seed ensured")
}
