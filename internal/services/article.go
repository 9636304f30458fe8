package services

import (
	"context"
	"errors"
	"time"

	"myblog/internal/models"
	"myblog/internal/repository"
	"myblog/internal/utils"

	"github.com/sirupsen/logrus"
)

// LatestArticleLimit 首页最新文章数量
const LatestArticleLimit = 10

// RenderedArticle 是渲染为 HTML 后的文章
type RenderedArticle struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	HTML      string    `json:"html"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ArticleService struct {
	repo repository.ArticleRepository
	now  func() time.Time
}

func NewArticleService(repo repository.ArticleRepository) *ArticleService {
	if repo == nil {
		panic("ArticleRepository cannot be nil for ArticleService")
	}
	return &ArticleService{repo: repo, now: time.Now}
}

// timestamp 截断到毫秒，保证各数据库回读后与内存值一致
func (s *ArticleService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *ArticleService) GetLatest(ctx context.Context) ([]models.Article, error) {
	articles, err := s.repo.Latest(ctx, LatestArticleLimit)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []models.Article{}
	}
	return articles, nil
}

func (s *ArticleService) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return article, nil
}

// Create stores a new article; created_at and updated_at start equal.
func (s *ArticleService) Create(ctx context.Context, title, summary string, content *string) (*models.Article, error) {
	now := s.timestamp()
	article := &models.Article{
		Title:     title,
		Summary:   summary,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, article); err != nil {
		logrus.WithError(err).Error("Failed to create article")
		return nil, err
	}
	logrus.WithField("article_id", article.ID).Info("Article created")
	return article, nil
}

// Update 无条件覆盖 title、summary、content 三个字段
func (s *ArticleService) Update(ctx context.Context, id uint, title, summary string, content *string) (*models.Article, error) {
	article, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.timestamp()
	if !now.After(article.UpdatedAt) {
		now = article.UpdatedAt.Add(time.Millisecond)
	}

	article.Title = title
	article.Summary = summary
	article.Content = content
	article.UpdatedAt = now

	if err := s.repo.Save(ctx, article); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		logrus.WithError(err).WithField("article_id", id).Error("Failed to update article")
		return nil, err
	}
	return article, nil
}

// Delete reports whether a row existed and was removed.
func (s *ArticleService) Delete(ctx context.Context, id uint) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("article_id", id).Error("Failed to delete article")
		return false, err
	}
	if deleted {
		logrus.WithField("article_id", id).Info("Article deleted")
	}
	return deleted, nil
}

// RenderHTML renders the article content as sanitized Markdown.
func (s *ArticleService) RenderHTML(ctx context.Context, id uint) (*RenderedArticle, error) {
	article, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var html string
	if article.Content != nil {
		html = string(utils.RenderMarkdown(*article.Content))
	}
	return &RenderedArticle{
		ID:        article.ID,
		Title:     article.Title,
		Summary:   article.Summary,
		HTML:      html,
		UpdatedAt: article.UpdatedAt,
	}, nil
}
