package db

import (
	"context"
	"testing"

	"myblog/internal/config"
	"myblog/internal/models"
	"myblog/internal/utils"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, Migrate(gdb))
	return gdb
}

func TestSeedDemoUsers(t *testing.T) {
	gdb := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, SeedDemoUsers(ctx, gdb))

	var users []models.User
	require.NoError(t, gdb.Order("id").Find(&users).Error)
	require.Len(t, users, 5)
	assert.Equal(t, "admin", users[0].Username)
	assert.True(t, utils.CheckPasswordHash("123456", users[0].Password))
	assert.Equal(t, models.UserStatusDeleted, users[3].Status)

	// second run is a no-op
	require.NoError(t, SeedDemoUsers(ctx, gdb))
	var count int64
	gdb.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(5), count)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}
