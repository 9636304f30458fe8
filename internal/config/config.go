package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const defaultJWTSecret = "blog_secret_change_me"

// Config holds everything the server needs at startup.
type Config struct {
	DBDriver   string
	DBURL      string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	CORSOrigins []string
	Port        string

	JWTSecret string
	JWTExpiry time.Duration

	LogLevel      string
	AppEnv        string
	SeedDemoUsers bool
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, reading config from environment")
	}

	cfg := &Config{
		DBDriver:   strings.ToLower(os.Getenv("DATABASE_DRIVER")),
		DBURL:      os.Getenv("DATABASE_URL"),
		DBUser:     os.Getenv("DATABASE_USER"),
		DBPassword: os.Getenv("DATABASE_PASSWORD"),
		DBHost:     os.Getenv("DATABASE_HOST"),
		DBPort:     os.Getenv("DATABASE_PORT"),
		DBName:     os.Getenv("DATABASE_NAME"),
		Port:       os.Getenv("PORT"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		AppEnv:     os.Getenv("APP_ENV"),
	}

	if cfg.DBDriver == "" {
		cfg.DBDriver = "mysql"
	}
	if cfg.DBDriver != "mysql" && cfg.DBDriver != "postgres" {
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DBDriver)
	}
	if cfg.DBUser == "" {
		cfg.DBUser = "root"
	}
	if cfg.DBPassword == "" {
		cfg.DBPassword = "123456"
	}
	if cfg.DBHost == "" {
		cfg.DBHost = "localhost"
	}
	if cfg.DBPort == "" {
		if cfg.DBDriver == "postgres" {
			cfg.DBPort = "5432"
		} else {
			cfg.DBPort = "3306"
		}
	}
	if _, err := strconv.Atoi(cfg.DBPort); err != nil {
		return nil, fmt.Errorf("invalid DATABASE_PORT %q: %w", cfg.DBPort, err)
	}
	if cfg.DBName == "" {
		cfg.DBName = "my_blog"
	}

	cfg.CORSOrigins = splitList(os.Getenv("BACKEND_CORS_ORIGINS"))
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"http://localhost:3000", "http://localhost"}
	}

	if cfg.Port == "" {
		cfg.Port = "8888"
	}

	if cfg.JWTSecret == "" {
		logrus.Warn("JWT_SECRET not set, using development default")
		cfg.JWTSecret = defaultJWTSecret
	}
	expiryHours := 24
	if v := os.Getenv("JWT_EXPIRE_HOURS"); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil || h <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRE_HOURS %q", v)
		}
		expiryHours = h
	}
	cfg.JWTExpiry = time.Duration(expiryHours) * time.Hour

	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	cfg.SeedDemoUsers, _ = strconv.ParseBool(os.Getenv("SEED_DEMO_USERS"))

	return cfg, nil
}

// DSN builds the driver specific connection string. DATABASE_URL wins when set.
func (c *Config) DSN() string {
	if c.DBURL != "" {
		return c.DBURL
	}
	if c.DBDriver == "postgres" {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
