// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultJWTSecret is the signing key used when none is configured. It is
// public, so tokens signed with it can be forged.
const DefaultJWTSecret = "your-secret-key"

type Config struct {
	Database struct {
		Driver     string `yaml:"driver"`
		Host       string `yaml:"host"`
		Port       string `yaml:"port"`
		User       string `yaml:"user"`
		Password   string `yaml:"password"`
		Name       string `yaml:"name"`
		SSLMode    string `yaml:"sslmode"`
		SearchPath string `yaml:"schema"`
		Path       string `yaml:"path"`
	} `yaml:"database"`
	JWT struct {
		Secret       string        `yaml:"secret"`
		ExpiryPeriod time.Duration `yaml:"expiry_period"`
	} `yaml:"jwt"`
	Server struct {
		Port         string        `yaml:"port"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		AllowOrigins []string      `yaml:"allow_origins"`
	} `yaml:"server"`
	Storage struct {
		Driver string `yaml:"driver"`
		Dir    string `yaml:"dir"`
		Minio  struct {
			Endpoint  string `yaml:"endpoint"`
			AccessKey string `yaml:"access_key"`
			SecretKey string `yaml:"secret_key"`
			Bucket    string `yaml:"bucket"`
			Secure    bool   `yaml:"secure"`
		} `yaml:"minio"`
	} `yaml:"storage"`
	Mail struct {
		Provider string `yaml:"provider"`
		From     string `yaml:"from"`
		FromName string `yaml:"from_name"`
		Sendgrid struct {
			APIKey string `yaml:"api_key"`
		} `yaml:"sendgrid"`
		SMTP struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Username string `yaml:"username"`
			Password string `yaml:"password"`
		} `yaml:"smtp"`
	} `yaml:"mail"`
	Phone struct {
		DefaultRegion string `yaml:"default_region"`
	} `yaml:"phone"`
	// MaxResumeBytes caps uploaded resume size.
	MaxResumeBytes int64 `yaml:"max_resume_bytes"`
}

// Load builds the configuration from defaults, an optional YAML file named
// by GIUSON_CONFIG and the environment, in increasing precedence. A .env
// file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := defaults()

	if path := os.Getenv("GIUSON_CONFIG"); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}

	cfg.Database.Driver = "postgres"
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Name = "giuson"
	cfg.Database.SSLMode = "disable"
	cfg.Database.SearchPath = "public"
	cfg.Database.Path = "giuson.db"

	cfg.JWT.Secret = DefaultJWTSecret
	cfg.JWT.ExpiryPeriod = time.Hour

	cfg.Server.Port = "8080"
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15
	cfg.Server.AllowOrigins = []string{"*"}

	cfg.Storage.Driver = "local"
	cfg.Storage.Dir = "uploads/resumes"
	cfg.Storage.Minio.Bucket = "resumes"

	cfg.Mail.Provider = "none"
	cfg.Mail.FromName = "Giuson"
	cfg.Mail.SMTP.Port = 587

	cfg.Phone.DefaultRegion = "IL"
	cfg.MaxResumeBytes = 10 << 20

	return cfg
}

// UsesDefaultJWTSecret reports whether tokens would be signed with
// DefaultJWTSecret.
func (c *Config) UsesDefaultJWTSecret() bool {
	return c.JWT.Secret == DefaultJWTSecret
}

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	// Database configuration
	c.Database.Driver = getEnv("DB_DRIVER", c.Database.Driver)
	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = getEnv("DB_PORT", c.Database.Port)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.Name = getEnv("DB_NAME", c.Database.Name)
	c.Database.SSLMode = getEnv("DB_SSLMODE", c.Database.SSLMode)
	c.Database.SearchPath = getEnv("DB_SCHEMA", c.Database.SearchPath)
	c.Database.Path = getEnv("DB_PATH", c.Database.Path)

	// JWT configuration
	c.JWT.Secret = getEnv("JWT_SECRET", c.JWT.Secret)
	c.JWT.ExpiryPeriod = getEnvDuration("JWT_EXPIRY", c.JWT.ExpiryPeriod)

	// Server configuration
	c.Server.Port = getEnv("SERVER_PORT", c.Server.Port)
	c.Server.ReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", c.Server.WriteTimeout)

	// Resume storage
	c.Storage.Driver = getEnv("STORAGE_DRIVER", c.Storage.Driver)
	c.Storage.Dir = getEnv("STORAGE_DIR", c.Storage.Dir)
	c.Storage.Minio.Endpoint = getEnv("MINIO_ENDPOINT", c.Storage.Minio.Endpoint)
	c.Storage.Minio.AccessKey = getEnv("MINIO_ACCESS_KEY", c.Storage.Minio.AccessKey)
	c.Storage.Minio.SecretKey = getEnv("MINIO_SECRET_KEY", c.Storage.Minio.SecretKey)
	c.Storage.Minio.Bucket = getEnv("MINIO_BUCKET", c.Storage.Minio.Bucket)
	c.Storage.Minio.Secure = getEnvBool("MINIO_SECURE", c.Storage.Minio.Secure)

	// Mail configuration
	c.Mail.Provider = getEnv("MAIL_PROVIDER", c.Mail.Provider)
	c.Mail.From = getEnv("MAIL_FROM", c.Mail.From)
	c.Mail.FromName = getEnv("MAIL_FROM_NAME", c.Mail.FromName)
	c.Mail.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", c.Mail.Sendgrid.APIKey)
	c.Mail.SMTP.Host = getEnv("SMTP_HOST", c.Mail.SMTP.Host)
	c.Mail.SMTP.Port = getEnvInt("SMTP_PORT", c.Mail.SMTP.Port)
	c.Mail.SMTP.Username = getEnv("SMTP_USERNAME", c.Mail.SMTP.Username)
	c.Mail.SMTP.Password = getEnv("SMTP_PASSWORD", c.Mail.SMTP.Password)

	c.Phone.DefaultRegion = getEnv("PHONE_DEFAULT_REGION", c.Phone.DefaultRegion)
	c.MaxResumeBytes = int64(getEnvInt("MAX_RESUME_BYTES", int(c.MaxResumeBytes)))
}

// Validate checks the values that have a closed set of options.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	switch c.Storage.Driver {
	case "local", "minio":
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	switch c.Mail.Provider {
	case "none", "sendgrid", "smtp":
	default:
		return fmt.Errorf("unsupported mail provider %q", c.Mail.Provider)
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt secret must not be empty")
	}
	if c.JWT.ExpiryPeriod <= 0 {
		return errors.New("jwt expiry must be positive")
	}
	return nil
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
