package app

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/attachments"
	"github.com/aussiebroadwan/garage/internal/garage/qraccess"
	"github.com/aussiebroadwan/garage/internal/garage/service"
	"github.com/aussiebroadwan/garage/pkg/jwtx"
	"github.com/aussiebroadwan/garage/pkg/qrx"
)

type Config struct {
	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 8080)

	DatabaseFile string // Path to SQLite database file (default: ./garage.db)
	PepperFile   string // Path to file containing the password pepper (default: ./pepper)

	JWTSecret      string        // Optional: HS256 secret, generated at startup when empty
	JWTIssuer      string        // Issuer claim for owner sessions (default: garage)
	AccessTokenTTL time.Duration // Owner session length (default: 24h)

	QRTokenTTL     time.Duration // Workshop access code lifetime (default: 120m)
	QRCodeLength   int           // Symbols per code, separator excluded (default: 8)
	QRCodeAlphabet string        // Code alphabet (default: qraccess.DefaultAlphabet)
	QRImageSize    int           // PNG side in pixels (default: 256)

	WorkshopBaseURL string // Public prefix of the workshop submission link
	UploadsDir      string // Attachment directory (default: ./uploads)
	MaxUploadBytes  int64  // Attachment size limit (default: 5 MiB)

	ReminderWindow       time.Duration // Reminder look-ahead (default: 72h)
	HousekeepingInterval time.Duration // Sweep and reminder interval (default: 1h)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 8080),

		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "garage.db"),
		PepperFile:   getEnvOrDefault("PEPPER_FILE", "pepper"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTIssuer:      getEnvOrDefault("JWT_ISSUER", "garage"),
		AccessTokenTTL: getEnvDurationOrDefault("ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),

		QRTokenTTL:     getEnvDurationOrDefault("QR_TOKEN_TTL", qraccess.DefaultTTL),
		QRCodeLength:   getEnvIntOrDefault("QR_CODE_LENGTH", qraccess.DefaultLength),
		QRCodeAlphabet: getEnvOrDefault("QR_CODE_ALPHABET", qraccess.DefaultAlphabet),
		QRImageSize:    getEnvIntOrDefault("QR_IMAGE_SIZE", qrx.DefaultSize),

		WorkshopBaseURL: getEnvOrDefault("WORKSHOP_BASE_URL", "http://localhost:8080/v1/maintenance"),
		UploadsDir:      getEnvOrDefault("UPLOADS_DIR", "uploads"),
		MaxUploadBytes:  int64(getEnvIntOrDefault("MAX_UPLOAD_BYTES", attachments.DefaultMaxBytes)),

		ReminderWindow:       getEnvDurationOrDefault("REMINDER_WINDOW", service.DefaultReminderWindow),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", time.Hour),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate rejects settings the application cannot start with.
func (c Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.QRTokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("QR_TOKEN_TTL must be positive, got %s", c.QRTokenTTL))
	}
	gen := qraccess.Generator{Alphabet: c.QRCodeAlphabet, Length: c.QRCodeLength}
	if c.QRCodeLength < 2 {
		errs = append(errs, fmt.Errorf("QR_CODE_LENGTH must be at least 2, got %d", c.QRCodeLength))
	} else if err := gen.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("QR_CODE_ALPHABET: %w", err))
	}
	if c.QRImageSize < qrx.MinSize || c.QRImageSize > qrx.MaxSize {
		errs = append(errs, fmt.Errorf("QR_IMAGE_SIZE must be between %d and %d", qrx.MinSize, qrx.MaxSize))
	}
	if u, err := url.Parse(c.WorkshopBaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("WORKSHOP_BASE_URL %q is not an absolute http(s) URL", c.WorkshopBaseURL))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_BYTES must be positive"))
	}
	if c.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("ACCESS_TOKEN_TTL must be positive"))
	}
	if c.ReminderWindow <= 0 {
		errs = append(errs, errors.New("REMINDER_WINDOW must be positive"))
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < jwtx.MinSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", jwtx.MinSecretLength))
	}

	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
