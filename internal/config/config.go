package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Log     LogConfig
	CORS    CORSConfig
	Parser  ParserConfig
	Prefill PrefillConfig
	Email   EmailConfig
	S3      S3Config
	Loader  LoaderConfig
	Admin   AdminConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ParserConfig holds the corp-line scan bounds. These are tuned empirical
// limits, not format guarantees, so they stay adjustable per deployment.
type ParserConfig struct {
	StateZipWindow       int `mapstructure:"state_zip_window"`
	AgentMarkerWindow    int `mapstructure:"agent_marker_window"`
	MaxOfficerNameTokens int `mapstructure:"max_officer_name_tokens"`
	MaxCityTokens        int `mapstructure:"max_city_tokens"`
}

// PrefillConfig holds prefill-link token settings.
type PrefillConfig struct {
	Secret        string        `mapstructure:"secret"`
	Issuer        string        `mapstructure:"issuer"`
	TokenExpiry   time.Duration `mapstructure:"token_expiry"`
	PublicBaseURL string        `mapstructure:"public_base_url"`
}

// EmailConfig holds prefill-link email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// S3Config holds the object-store settings for bulk-load sources.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// LoaderConfig holds bulk-load settings for the Corporate Data File.
type LoaderConfig struct {
	Source    string `mapstructure:"source"`
	BatchSize int    `mapstructure:"batch_size"`
}

// AdminConfig holds admin API authentication settings. APIKeyHash is a
// bcrypt hash of the shared admin key; the plaintext never lives in config.
type AdminConfig struct {
	APIKeyHash string `mapstructure:"api_key_hash"`
}

// Load reads configuration from environment variables with the SUNBIZ_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SUNBIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "sunbiz")
	v.SetDefault("db.password", "sunbiz_secret")
	v.SetDefault("db.name", "sunbiz_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Parser defaults: the tuned scan bounds
	v.SetDefault("parser.state_zip_window", 140)
	v.SetDefault("parser.agent_marker_window", 160)
	v.SetDefault("parser.max_officer_name_tokens", 14)
	v.SetDefault("parser.max_city_tokens", 3)

	// Prefill defaults
	v.SetDefault("prefill.secret", "change-me-in-production")
	v.SetDefault("prefill.issuer", "florida-renewals")
	v.SetDefault("prefill.token_expiry", "720h")
	v.SetDefault("prefill.public_base_url", "https://corporateformfiling.com/renew")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "renewals@corporateformfiling.com")
	v.SetDefault("email.from_name", "Corporate Form Filing")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "sunbiz-exports")
	v.SetDefault("s3.endpoint", "")

	// Loader defaults
	v.SetDefault("loader.source", "cordata.txt")
	v.SetDefault("loader.batch_size", 10000)

	// Admin defaults
	v.SetDefault("admin.api_key_hash", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "SUNBIZ_SERVER_PORT",
		"server.read_timeout":            "SUNBIZ_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "SUNBIZ_SERVER_WRITE_TIMEOUT",
		"server.environment":             "SUNBIZ_SERVER_ENVIRONMENT",
		"db.host":                        "SUNBIZ_DB_HOST",
		"db.port":                        "SUNBIZ_DB_PORT",
		"db.user":                        "SUNBIZ_DB_USER",
		"db.password":                    "SUNBIZ_DB_PASSWORD",
		"db.name":                        "SUNBIZ_DB_NAME",
		"db.sslmode":                     "SUNBIZ_DB_SSLMODE",
		"db.max_open":                    "SUNBIZ_DB_MAX_OPEN",
		"db.max_idle":                    "SUNBIZ_DB_MAX_IDLE",
		"log.level":                      "SUNBIZ_LOG_LEVEL",
		"log.format":                     "SUNBIZ_LOG_FORMAT",
		"cors.allowed_origins":           "SUNBIZ_CORS_ALLOWED_ORIGINS",
		"parser.state_zip_window":        "SUNBIZ_PARSER_STATE_ZIP_WINDOW",
		"parser.agent_marker_window":     "SUNBIZ_PARSER_AGENT_MARKER_WINDOW",
		"parser.max_officer_name_tokens": "SUNBIZ_PARSER_MAX_OFFICER_NAME_TOKENS",
		"parser.max_city_tokens":         "SUNBIZ_PARSER_MAX_CITY_TOKENS",
		"prefill.secret":                 "SUNBIZ_PREFILL_SECRET",
		"prefill.issuer":                 "SUNBIZ_PREFILL_ISSUER",
		"prefill.token_expiry":           "SUNBIZ_PREFILL_TOKEN_EXPIRY",
		"prefill.public_base_url":        "SUNBIZ_PREFILL_PUBLIC_BASE_URL",
		"email.provider":                 "SUNBIZ_EMAIL_PROVIDER",
		"email.region":                   "SUNBIZ_EMAIL_REGION",
		"email.from_address":             "SUNBIZ_EMAIL_FROM_ADDRESS",
		"email.from_name":                "SUNBIZ_EMAIL_FROM_NAME",
		"s3.region":                      "SUNBIZ_S3_REGION",
		"s3.bucket":                      "SUNBIZ_S3_BUCKET",
		"s3.endpoint":                    "SUNBIZ_S3_ENDPOINT",
		"s3.access_key":                  "SUNBIZ_S3_ACCESS_KEY",
		"s3.secret_key":                  "SUNBIZ_S3_SECRET_KEY",
		"loader.source":                  "SUNBIZ_LOADER_SOURCE",
		"loader.batch_size":              "SUNBIZ_LOADER_BATCH_SIZE",
		"admin.api_key_hash":             "SUNBIZ_ADMIN_API_KEY_HASH",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SUNBIZ_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SUNBIZ_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Parser = ParserConfig{
		StateZipWindow:       v.GetInt("parser.state_zip_window"),
		AgentMarkerWindow:    v.GetInt("parser.agent_marker_window"),
		MaxOfficerNameTokens: v.GetInt("parser.max_officer_name_tokens"),
		MaxCityTokens:        v.GetInt("parser.max_city_tokens"),
	}
	cfg.Prefill = PrefillConfig{
		Secret:        v.GetString("prefill.secret"),
		Issuer:        v.GetString("prefill.issuer"),
		TokenExpiry:   v.GetDuration("prefill.token_expiry"),
		PublicBaseURL: v.GetString("prefill.public_base_url"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Loader = LoaderConfig{
		Source:    v.GetString("loader.source"),
		BatchSize: v.GetInt("loader.batch_size"),
	}
	cfg.Admin = AdminConfig{
		APIKeyHash: v.GetString("admin.api_key_hash"),
	}

	return cfg, nil
}
