package repository

import (
	"context"
	"errors"
	"fmt"

	"myblog/internal/models"

	"gorm.io/gorm"
)

// UserRepository 定义用户的存取操作
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	// FindByUsername 未找到时返回 ErrNotFound
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// Create 用户名重复时返回 ErrDuplicateEntry
	Create(ctx context.Context, user *models.User) error
	// ListActive 返回未删除用户的一页数据以及未删除用户总数
	ListActive(ctx context.Context, offset, limit int) ([]models.User, int64, error)
	UpdateStatus(ctx context.Context, id uint, status models.UserStatus) (*models.User, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	if db == nil {
		panic("database connection cannot be nil for GormUserRepository")
	}
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("gorm: find user by id %d: %w", id, err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("gorm: find user by username '%s': %w", username, err)
	}
	return &user, nil
}

func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: create user '%s': %w", user.Username, err)
	}
	return nil
}

func (r *GormUserRepository) ListActive(ctx context.Context, offset, limit int) ([]models.User, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("status <> ?", models.UserStatusDeleted).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("gorm: count users: %w", err)
	}

	var users []models.User
	err := query.
		Order("status ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("gorm: list users: %w", err)
	}
	return users, total, nil
}

func (r *GormUserRepository) UpdateStatus(ctx context.Context, id uint, status models.UserStatus) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("status", status).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("gorm: update status of user %d: %w", id, err)
	}
	user.Status = status
	return &user, nil
}
