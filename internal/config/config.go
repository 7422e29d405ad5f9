package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/socampo/folio-core/internal/pkg/mail"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort            = 3777
	defaultEnv             = "development"
	defaultUploadMaxSizeMB = 25
	defaultStaticDir       = "static"
)

// AppConfig holds runtime startup configuration loaded from YAML, with
// selected secrets overridable from the environment (.env supported).
type AppConfig struct {
	Port           int           `yaml:"port"`
	Env            string        `yaml:"env"` // "development" | "production"
	DSN            string        `yaml:"dsn"` // MySQL DSN
	RedisURL       string        `yaml:"redis_url"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	JWTSecret      string        `yaml:"jwt_secret"`
	AdminEmails    []string      `yaml:"admin_emails"`
	Upload         UploadOptions `yaml:"upload"`
	Mail           mail.Config   `yaml:"mail"`
}

// UploadOptions controls the media upload passthrough.
type UploadOptions struct {
	MaxSizeMB int       `yaml:"max_size_mb"`
	StaticDir string    `yaml:"static_dir"` // local blob fallback
	PublicURL string    `yaml:"public_url"` // base URL for locally stored blobs
	S3        S3Options `yaml:"s3"`
}

// S3Options configures the S3-compatible blob backend. Empty bucket disables
// S3 and falls back to local disk.
type S3Options struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Endpoint        string `yaml:"endpoint"`
	PathStyleAccess bool   `yaml:"path_style_access"`
	CustomDomain    string `yaml:"custom_domain"`
}

// Load reads the YAML config file, applies .env / environment overrides,
// and fills defaults.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && path == DefaultConfigPath:
		// Default path missing is fine; run on env + defaults.
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	_ = godotenv.Load()
	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	overrideString(&cfg.DSN, "FOLIO_DSN")
	overrideString(&cfg.RedisURL, "FOLIO_REDIS_URL")
	overrideString(&cfg.JWTSecret, "FOLIO_JWT_SECRET")
	overrideString(&cfg.Upload.S3.AccessKeyID, "FOLIO_S3_ACCESS_KEY_ID")
	overrideString(&cfg.Upload.S3.SecretAccessKey, "FOLIO_S3_SECRET_ACCESS_KEY")
	overrideString(&cfg.Mail.Pass, "FOLIO_MAIL_PASS")
	overrideString(&cfg.Mail.ResendKey, "FOLIO_RESEND_KEY")

	if v := strings.TrimSpace(os.Getenv("FOLIO_ADMIN_EMAILS")); v != "" {
		cfg.AdminEmails = splitCSV(v)
	}
	if v := strings.TrimSpace(os.Getenv("FOLIO_PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port <= 0 {
		cfg.Port = defaultPort
	}
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = defaultEnv
	}
	if cfg.Upload.MaxSizeMB <= 0 {
		cfg.Upload.MaxSizeMB = defaultUploadMaxSizeMB
	}
	if strings.TrimSpace(cfg.Upload.StaticDir) == "" {
		cfg.Upload.StaticDir = defaultStaticDir
	}
	cleaned := make([]string, 0, len(cfg.AdminEmails))
	for _, e := range cfg.AdminEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			cleaned = append(cleaned, e)
		}
	}
	cfg.AdminEmails = cleaned
}

func (c *AppConfig) validate() error {
	if len(c.AdminEmails) == 0 {
		return fmt.Errorf("config: admin_emails must list at least one address")
	}
	return nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development")
}

// IsAdminEmail reports whether email is on the configured allow-list.
// Comparison is case-insensitive on the normalized address.
func (c *AppConfig) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, admin := range c.AdminEmails {
		if admin == email {
			return true
		}
	}
	return false
}

func overrideString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
