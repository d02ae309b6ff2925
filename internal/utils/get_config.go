package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort      string `yaml:"APP_PORT"`
	AppURL       string `yaml:"APP_URL"`
	LogFile      string `yaml:"LOG_FILE"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`
	JWTIssuer string `yaml:"JWT_ISSUER"`

	// Recipes
	DefaultCategoryID uint `yaml:"DEFAULT_CATEGORY_ID"`

	// Upload storage
	StorageDriver string `yaml:"STORAGE_DRIVER"`
	UploadDir     string `yaml:"UPLOAD_DIR"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

// DefaultConfig mirrors the local development setup.
func DefaultConfig() Config {
	return Config{
		AppPort:           "3000",
		AppURL:            "http://localhost:3000",
		RateLimitMax:      20,
		DBDriver:          "postgres",
		DBHost:            "localhost",
		DBPort:            "5432",
		DBName:            "pick_my_dish",
		DBPath:            "pick_my_dish.db",
		JWTIssuer:         "PICK-MY-DISH",
		DefaultCategoryID: 1,
		StorageDriver:     "local",
		UploadDir:         "uploads",
	}
}

// LoadConfig reads path (a missing file is not an error), then applies
// environment overrides using the same keys as the yaml file.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if config.DefaultCategoryID == 0 {
		return nil, fmt.Errorf("DEFAULT_CATEGORY_ID must be a positive integer")
	}
	return &config, nil
}

func (c *Config) stringFields() map[string]*string {
	return map[string]*string{
		"APP_PORT":           &c.AppPort,
		"APP_URL":            &c.AppURL,
		"LOG_FILE":           &c.LogFile,
		"DB_DRIVER":          &c.DBDriver,
		"DB_USER":            &c.DBUser,
		"DB_NAME":            &c.DBName,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_PORT":            &c.DBPort,
		"DB_HOST":            &c.DBHost,
		"DB_PATH":            &c.DBPath,
		"JWT_SECRET":         &c.JWTSecret,
		"JWT_ISSUER":         &c.JWTIssuer,
		"STORAGE_DRIVER":     &c.StorageDriver,
		"UPLOAD_DIR":         &c.UploadDir,
		"SMTP_HOST":          &c.SMTPHost,
		"SMTP_PORT":          &c.SMTPPort,
		"SMTP_SENDER_NAME":   &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":    &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD": &c.SMTPAuthPassword,
		"AWS_S3_BUCKET":      &c.AWSS3Bucket,
		"AWS_S3_REGION":      &c.AWSS3Region,
		"AWS_ACCESS_KEY":     &c.AWSAccessKey,
		"AWS_SECRET_KEY":     &c.AWSSecretKey,
	}
}

func (c *Config) applyEnv() error {
	for key, field := range c.stringFields() {
		if value, ok := os.LookupEnv(key); ok {
			*field = value
		}
	}

	if value, ok := os.LookupEnv("RATE_LIMIT_MAX"); ok {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_MAX: %w", err)
		}
		c.RateLimitMax = n
	}

	if value, ok := os.LookupEnv("DEFAULT_CATEGORY_ID"); ok {
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil || n == 0 {
			return fmt.Errorf("DEFAULT_CATEGORY_ID must be a positive integer, got %q", value)
		}
		c.DefaultCategoryID = uint(n)
	}
	return nil
}

// MailEnabled reports whether SMTP settings are complete enough to send mail.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPPort != "" && c.SMTPAuthEmail != ""
}
