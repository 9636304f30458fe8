package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStatus_Valid(t *testing.T) {
	assert.True(t, UserStatusActive.Valid())
	assert.True(t, UserStatusInactive.Valid())
	assert.True(t, UserStatusDeleted.Valid())
	assert.False(t, UserStatus(0).Valid())
	assert.False(t, UserStatus(4).Valid())
	assert.Equal(t, "unknown", UserStatus(9).String())
}

func TestUser_PasswordNeverSerialized(t *testing.T) {
	u := User{ID: 1, Username: "alice", Password: "$2a$10$hash", Status: UserStatusActive}
	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password")
	assert.NotContains(t, string(b), "$2a$10$hash")
	assert.Contains(t, string(b), `"status":1`)
}
