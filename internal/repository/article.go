package repository

import (
	"context"
	"errors"
	"fmt"

	"myblog/internal/models"

	"gorm.io/gorm"
)

// ArticleRepository 定义文章的存取操作
type ArticleRepository interface {
	// Latest 按创建时间倒序返回最多 limit 篇文章
	Latest(ctx context.Context, limit int) ([]models.Article, error)
	// FindByID 未找到时返回 ErrNotFound
	FindByID(ctx context.Context, id uint) (*models.Article, error)
	Create(ctx context.Context, article *models.Article) error
	// Save 覆盖写入所有字段
	Save(ctx context.Context, article *models.Article) error
	// Delete 返回是否真的删除了一行
	Delete(ctx context.Context, id uint) (bool, error)
}

type GormArticleRepository struct {
	db *gorm.DB
}

func NewGormArticleRepository(db *gorm.DB) *GormArticleRepository {
	if db == nil {
		panic("database connection cannot be nil for GormArticleRepository")
	}
	return &GormArticleRepository{db: db}
}

func (r *GormArticleRepository) Latest(ctx context.Context, limit int) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list latest articles: %w", err)
	}
	return articles, nil
}

func (r *GormArticleRepository) FindByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("gorm: find article %d: %w", id, err)
	}
	return &article, nil
}

func (r *GormArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return fmt.Errorf("gorm: create article: %w", err)
	}
	return nil
}

func (r *GormArticleRepository) Save(ctx context.Context, article *models.Article) error {
	// 用 map 写入，nil content 会落成 NULL，updated_at 由调用方决定
	result := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("id = ?", article.ID).
		UpdateColumns(map[string]interface{}{
			"title":      article.Title,
			"summary":    article.Summary,
			"content":    article.Content,
			"updated_at": article.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("gorm: save article %d: %w", article.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormArticleRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Article{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("gorm: delete article %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
