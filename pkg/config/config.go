package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Log     LogConfig
	Audit   AuditConfig
	Portal  PortalConfig
	Reports ReportsConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// AuditConfig locates the append-only action log store.
type AuditConfig struct {
	DBPath string
}

// PortalConfig carries the enrollment and credential policy knobs.
type PortalConfig struct {
	MaxEnrollment int
	BcryptCost    int
}

// ReportsConfig controls where rendered exports are written.
type ReportsConfig struct {
	StorageDir string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// With an explicit config file viper reports absence as a path
		// error, not ConfigFileNotFoundError.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Audit = AuditConfig{
		DBPath: v.GetString("AUDIT_DB_PATH"),
	}

	cfg.Portal = PortalConfig{
		MaxEnrollment: v.GetInt("PORTAL_MAX_ENROLLMENT"),
		BcryptCost:    v.GetInt("PORTAL_BCRYPT_COST"),
	}
	if cfg.Portal.MaxEnrollment <= 0 {
		cfg.Portal.MaxEnrollment = 4
	}

	cfg.Reports = ReportsConfig{
		StorageDir: v.GetString("REPORTS_STORAGE_DIR"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("AUDIT_DB_PATH", "./portal_audit.db")

	v.SetDefault("PORTAL_MAX_ENROLLMENT", 4)
	v.SetDefault("PORTAL_BCRYPT_COST", 10)

	v.SetDefault("REPORTS_STORAGE_DIR", "./exports")
}
