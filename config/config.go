package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example ENV:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_DB=tradelens
//	UPLOAD_DIR=./uploads
//	OCR_LANG=eng
//	OCR_TIMEOUT=30s
//	EXTRA_SYMBOLS=NAS100,GER40
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Uploads  UploadConfig
	OCR      OCRConfig
	Symbols  SymbolsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string
	RequestTimeout     time.Duration // per-request deadline; 0 disables it
	RateLimitPerMinute int           // per client IP; 0 disables limiting
	Timezone           string        // IANA name used for form dates and period stats
}

// PostgresConfig defines connection details for PostgreSQL. URL is the
// computed DSN used by database/sql.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// UploadConfig controls where screenshots are stored.
type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

// OCRConfig maps to the tesseract invocation.
type OCRConfig struct {
	Binary      string
	Lang        string
	PSM         int
	OEM         int
	TessdataDir string
	Timeout     time.Duration
}

// SymbolsConfig adjusts the instrument list used by the extractor. Known
// replaces the built-in list when non-empty; Extra is appended either way.
type SymbolsConfig struct {
	Known []string
	Extra []string
}

// AppConfig is the globally accessible configuration instance, populated
// once via LoadConfig().
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Missing required values terminate the process (see validateConfig).
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REQUEST_TIMEOUT", "60s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	viper.SetDefault("TIMEZONE", "Local")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "tradelens")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("MAX_UPLOAD_MB", 10)

	viper.SetDefault("OCR_BINARY", "tesseract")
	viper.SetDefault("OCR_LANG", "eng")
	viper.SetDefault("OCR_PSM", 6)
	viper.SetDefault("OCR_OEM", 0)
	viper.SetDefault("OCR_TESSDATA_DIR", "")
	viper.SetDefault("OCR_TIMEOUT", "30s")

	viper.SetDefault("KNOWN_SYMBOLS", "")
	viper.SetDefault("EXTRA_SYMBOLS", "")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RequestTimeout:     viper.GetDuration("REQUEST_TIMEOUT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			Timezone:           viper.GetString("TIMEZONE"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Uploads: UploadConfig{
			Dir:      viper.GetString("UPLOAD_DIR"),
			MaxBytes: viper.GetInt64("MAX_UPLOAD_MB") << 20,
		},
		OCR: OCRConfig{
			Binary:      viper.GetString("OCR_BINARY"),
			Lang:        viper.GetString("OCR_LANG"),
			PSM:         viper.GetInt("OCR_PSM"),
			OEM:         viper.GetInt("OCR_OEM"),
			TessdataDir: viper.GetString("OCR_TESSDATA_DIR"),
			Timeout:     viper.GetDuration("OCR_TIMEOUT"),
		},
		Symbols: SymbolsConfig{
			Known: SplitList(viper.GetString("KNOWN_SYMBOLS")),
			Extra: SplitList(viper.GetString("EXTRA_SYMBOLS")),
		},
	}

	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	validateConfig()
}

// Location resolves Server.Timezone, falling back to the local zone.
func (c Config) Location() *time.Location {
	if c.Server.Timezone == "" || strings.EqualFold(c.Server.Timezone, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Server.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// SplitList splits a comma or whitespace separated list, dropping empties.
func SplitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
}

// validateConfig terminates the application when required variables are
// missing or malformed.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if AppConfig.Uploads.Dir == "" {
		missing = append(missing, "UPLOAD_DIR")
	}
	if AppConfig.Uploads.MaxBytes <= 0 {
		missing = append(missing, "MAX_UPLOAD_MB")
	}
	if AppConfig.OCR.Binary == "" {
		missing = append(missing, "OCR_BINARY")
	}
	if AppConfig.OCR.Lang == "" {
		missing = append(missing, "OCR_LANG")
	}
	if AppConfig.OCR.Timeout <= 0 {
		missing = append(missing, "OCR_TIMEOUT")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}
