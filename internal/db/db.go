package db

import (
	"context"
	"fmt"
	"time"

	"myblog/internal/config"
	"myblog/internal/models"
	"myblog/internal/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database and sizes the pool.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "mysql":
		dialector = mysql.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	gormLogger := logger.Default.LogMode(logger.Warn)
	if cfg.LogLevel == "debug" {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	logrus.WithField("driver", cfg.DBDriver).Info("Database connection established")
	return gdb, nil
}

// Migrate creates or updates the articles and users tables.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&models.Article{}, &models.User{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logrus.Info("Database migration completed")
	return nil
}

type demoUser struct {
	Username string
	Name     string
	Age      int
	Phone    string
	Email    string
	Status   models.UserStatus
}

// SeedDemoUsers 在用户表为空时写入演示账号，密码统一为 123456
func SeedDemoUsers(ctx context.Context, gdb *gorm.DB) error {
	var count int64
	if err := gdb.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		logrus.Infof("Users already present (%d), skipping demo seed", count)
		return nil
	}

	hash, err := utils.HashPassword("123456")
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	demo := []demoUser{
		{"admin", "管理员", 30, "13800138000", "admin@example.com", models.UserStatusActive},
		{"user1", "张三", 25, "13800138001", "zhangsan@example.com", models.UserStatusActive},
		{"user2", "李四", 28, "13800138002", "lisi@example.com", models.UserStatusInactive},
		{"user3", "王五", 32, "13800138003", "wangwu@example.com", models.UserStatusDeleted},
		{"user4", "赵六", 26, "13800138004", "zhaoliu@example.com", models.UserStatusActive},
	}

	users := make([]models.User, 0, len(demo))
	for _, d := range demo {
		email := d.Email
		users = append(users, models.User{
			Username: d.Username,
			Password: hash,
			Name:     d.Name,
			Age:      d.Age,
			Phone:    d.Phone,
			Email:    &email,
			Status:   d.Status,
		})
	}
	if err := gdb.WithContext(ctx).Create(&users).Error; err != nil {
		return fmt.Errorf("seed demo users: %w", err)
	}
	logrus.Infof("Seeded %d demo users", len(users))
	return nil
}
