package services_test

import (
	"context"

	"myblog/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockArticleRepo struct {
	mock.Mock
}

func (m *mockArticleRepo) Latest(ctx context.Context, limit int) ([]models.Article, error) {
	args := m.Called(ctx, limit)
	articles, _ := args.Get(0).([]models.Article)
	return articles, args.Error(1)
}

func (m *mockArticleRepo) FindByID(ctx context.Context, id uint) (*models.Article, error) {
	args := m.Called(ctx, id)
	article, _ := args.Get(0).(*models.Article)
	return article, args.Error(1)
}

func (m *mockArticleRepo) Create(ctx context.Context, article *models.Article) error {
	return m.Called(ctx, article).Error(0)
}

func (m *mockArticleRepo) Save(ctx context.Context, article *models.Article) error {
	return m.Called(ctx, article).Error(0)
}

func (m *mockArticleRepo) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) ListActive(ctx context.Context, offset, limit int) ([]models.User, int64, error) {
	args := m.Called(ctx, offset, limit)
	users, _ := args.Get(0).([]models.User)
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepo) UpdateStatus(ctx context.Context, id uint, status models.UserStatus) (*models.User, error) {
	args := m.Called(ctx, id, status)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}
