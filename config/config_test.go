package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "db.driver", envKey("DB_DRIVER"))
	assert.Equal(t, "storage.oss_bucket", envKey("STORAGE_OSS_BUCKET"))
	assert.Equal(t, "teacher.code_ttl_hours", envKey("TEACHER_CODE_TTL_HOURS"))
	assert.Equal(t, "", envKey("PATH"))
	assert.Equal(t, "", envKey("HOME_DIR"))
	assert.Equal(t, "", envKey("DB_"))
}

func TestLoadFromEnvDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("PORT", "")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, 1920, cfg.Storage.MaxImageWidth)
	assert.Equal(t, "dev-secret", cfg.JWT.Secret)
	assert.Equal(t, 12, cfg.JWT.TTLHours)
	assert.Equal(t, 720, cfg.Teacher.CodeTTLHours)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("STORAGE_OSS_BUCKET", "foundation")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 2, cfg.JWT.TTLHours)
	assert.Equal(t, "foundation", cfg.Storage.OSSBucket)
	assert.False(t, cfg.IsDev())
}

func TestValidate(t *testing.T) {
	cfg := &Config{App: AppConfig{Env: "production"}, DB: DBConfig{Driver: "mysql"}, Storage: StorageConfig{Driver: "local"}}
	assert.Error(t, cfg.Validate())

	cfg.JWT.Secret = "x"
	require.NoError(t, cfg.Validate())

	cfg.DB.Driver = "oracle"
	assert.Error(t, cfg.Validate())

	cfg.DB.Driver = "postgres"
	cfg.Storage.Driver = "s3"
	assert.Error(t, cfg.Validate())
}

func TestCorsOrigins(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins())

	cfg.App.CorsOrigins = " https://a.th , ,https://b.th"
	assert.Equal(t, []string{"https://a.th", "https://b.th"}, cfg.CorsOrigins())

	cfg.App.CorsOrigins = " , "
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins())
}

func TestMySQLDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	dsn, err := MySQLDSN(DBConfig{URL: "mysql://user:pw@db.local/foundation"})
	require.NoError(t, err)
	assert.Contains(t, dsn, "user:pw@tcp(db.local:3306)/foundation")
	assert.Contains(t, dsn, "parseTime=true")

	_, err = MySQLDSN(DBConfig{URL: "mysql://user:pw@db.local/"})
	assert.Error(t, err)

	dsn, err = MySQLDSN(DBConfig{Host: "127.0.0.1", Port: "3307", User: "root", Name: "x"})
	require.NoError(t, err)
	assert.Contains(t, dsn, "root@tcp(127.0.0.1:3307)/x")
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	dsn := PostgresDSN(DBConfig{Host: "pg", User: "u", Pass: "p", Name: "n", Port: "3306", SSLMode: "disable"})
	assert.Contains(t, dsn, "port=5432")
	assert.Contains(t, dsn, "host=pg")

	assert.Equal(t, "postgres://x", PostgresDSN(DBConfig{URL: "postgres://x"}))
}
