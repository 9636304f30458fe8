package repository

import (
	"context"
	"testing"
	"time"

	"myblog/internal/db"
	"myblog/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func strPtr(s string) *string { return &s }

func TestGormArticleRepository_CRUD(t *testing.T) {
	repo := NewGormArticleRepository(newTestDB(t))
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Millisecond)
	a := &models.Article{Title: "t1", Summary: "s1", Content: strPtr("c1"), CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, a))
	require.NotZero(t, a.ID)

	got, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "t1", got.Title)
	require.NotNil(t, got.Content)
	assert.Equal(t, "c1", *got.Content)

	got.Title = "t2"
	got.Content = nil
	got.UpdatedAt = now.Add(time.Second)
	require.NoError(t, repo.Save(ctx, got))

	reloaded, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "t2", reloaded.Title)
	assert.Nil(t, reloaded.Content)
	assert.True(t, reloaded.UpdatedAt.After(reloaded.CreatedAt))

	deleted, err := repo.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.FindByID(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Save(ctx, &models.Article{ID: 999, Title: "x", Summary: "y", UpdatedAt: now})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormArticleRepository_Latest(t *testing.T) {
	repo := NewGormArticleRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		ts := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(ctx, &models.Article{
			Title: "a", Summary: "s", CreatedAt: ts, UpdatedAt: ts,
		}))
	}

	latest, err := repo.Latest(ctx, 10)
	require.NoError(t, err)
	require.Len(t, latest, 10)
	for i := 1; i < len(latest); i++ {
		assert.True(t, latest[i-1].CreatedAt.After(latest[i].CreatedAt))
	}
	assert.Equal(t, uint(12), latest[0].ID)
}

func TestGormUserRepository(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	ctx := context.Background()

	mk := func(name string, status models.UserStatus) *models.User {
		u := &models.User{Username: name, Password: "hash", Status: status}
		require.NoError(t, repo.Create(ctx, u))
		return u
	}
	alice := mk("alice", models.UserStatusInactive)
	mk("bob", models.UserStatusActive)
	mk("carol", models.UserStatusDeleted)
	mk("dave", models.UserStatusActive)

	err := repo.Create(ctx, &models.User{Username: "alice", Password: "x", Status: models.UserStatusActive})
	assert.ErrorIs(t, err, ErrDuplicateEntry)

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	users, total, err := repo.ListActive(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, users, 3)
	assert.Equal(t, "bob", users[0].Username)
	assert.Equal(t, "dave", users[1].Username)
	assert.Equal(t, "alice", users[2].Username)

	users, total, err = repo.ListActive(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, users, 1)

	updated, err := repo.UpdateStatus(ctx, alice.ID, models.UserStatusDeleted)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusDeleted, updated.Status)

	_, total, err = repo.ListActive(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, err = repo.UpdateStatus(ctx, 999, models.UserStatusActive)
	assert.ErrorIs(t, err, ErrNotFound)
}
