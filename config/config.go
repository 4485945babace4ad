package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type AppConfig struct {
	Port        string `koanf:"port"`
	Env         string `koanf:"env"`
	CorsOrigins string `koanf:"cors_origins"`
	PublicURL   string `koanf:"public_url"`
}

type DBConfig struct {
	Driver   string `koanf:"driver"` // mysql | postgres | sqlite
	URL      string `koanf:"url"`
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	User     string `koanf:"user"`
	Pass     string `koanf:"pass"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"sslmode"`
	LogLevel string `koanf:"log_level"`
}

type JWTConfig struct {
	Secret   string `koanf:"secret"`
	TTLHours int    `koanf:"ttl_hours"`
}

type StorageConfig struct {
	Driver        string `koanf:"driver"` // local | oss
	Dir           string `koanf:"dir"`
	PublicBase    string `koanf:"public_base"`
	OSSEndpoint   string `koanf:"oss_endpoint"`
	OSSAccessKey  string `koanf:"oss_access_key"`
	OSSSecretKey  string `koanf:"oss_secret_key"`
	OSSBucket     string `koanf:"oss_bucket"`
	MaxImageWidth int    `koanf:"max_image_width"`
}

type PrintConfig struct {
	OrgName string `koanf:"org_name"`
	LogoURL string `koanf:"logo_url"`
}

type TeacherConfig struct {
	CodeTTLHours int `koanf:"code_ttl_hours"`
}

type AdminSeedConfig struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
}

type Config struct {
	App     AppConfig       `koanf:"app"`
	DB      DBConfig        `koanf:"db"`
	JWT     JWTConfig       `koanf:"jwt"`
	Storage StorageConfig   `koanf:"storage"`
	Print   PrintConfig     `koanf:"print"`
	Teacher TeacherConfig   `koanf:"teacher"`
	Admin   AdminSeedConfig `koanf:"admin"`
}

var defaults = map[string]any{
	"app.port":                "8080",
	"app.env":                 "dev",
	"app.cors_origins":        "*",
	"app.public_url":          "http://localhost:8080",
	"db.driver":               "mysql",
	"db.host":                 "127.0.0.1",
	"db.port":                 "3306",
	"db.user":                 "root",
	"db.name":                 "foundation_db",
	"db.sslmode":              "disable",
	"db.log_level":            "warn",
	"jwt.ttl_hours":           12,
	"storage.driver":          "local",
	"storage.dir":             "uploads",
	"storage.max_image_width": 1920,
	"print.org_name":          "มูลนิธิเพื่อการศึกษา",
	"teacher.code_ttl_hours":  24 * 30,
	"admin.username":          "admin@foundation.local",
	"admin.name":              "Admin User",
}

var sections = map[string]bool{
	"app": true, "db": true, "jwt": true, "storage": true,
	"print": true, "teacher": true, "admin": true,
}

// envKey: DB_DRIVER -> db.driver, STORAGE_OSS_BUCKET -> storage.oss_bucket
// ตัวแปรที่ไม่ได้ขึ้นต้นด้วยชื่อ section (PATH, HOME, ...) คืน "" = ข้าม
func envKey(s string) string {
	parts := strings.SplitN(strings.ToLower(s), "_", 2)
	if len(parts) != 2 || !sections[parts[0]] || parts[1] == "" {
		return ""
	}
	return parts[0] + "." + parts[1]
}

// Load อ่าน .env (ถ้ามี) แล้ว map environment เข้า Config
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found; continuing with environment variables")
	}
	return LoadFromEnv()
}

// LoadFromEnv เหมือน Load แต่ไม่แตะไฟล์ .env
func LoadFromEnv() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// PaaS ส่วนใหญ่ส่ง PORT มาแทน APP_PORT
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" && os.Getenv("APP_PORT") == "" {
		cfg.App.Port = port
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported db driver %q", c.DB.Driver)
	}
	switch c.Storage.Driver {
	case "local", "oss":
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	if c.JWT.Secret == "" {
		if !c.IsDev() {
			return fmt.Errorf("JWT_SECRET is required when APP_ENV=%s", c.App.Env)
		}
		c.JWT.Secret = "dev-secret"
	}
	if c.JWT.TTLHours <= 0 {
		c.JWT.TTLHours = 12
	}
	if c.Teacher.CodeTTLHours <= 0 {
		c.Teacher.CodeTTLHours = 24 * 30
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.App.Env == "" || c.App.Env == "dev"
}

// CorsOrigins แยก APP_CORS_ORIGINS แบบคั่นด้วย comma; ว่าง = "*"
func (c *Config) CorsOrigins() []string {
	raw := strings.TrimSpace(c.App.CorsOrigins)
	if raw == "" {
		return []string{"*"}
	}
	origins := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
