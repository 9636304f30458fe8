package models

import (
	"time"
)

// UserStatus 用户状态
type UserStatus int

const (
	UserStatusActive   UserStatus = 1 // 正常
	UserStatusInactive UserStatus = 2 // 停用
	UserStatusDeleted  UserStatus = 3 // 删除（仅标记，不物理删除）
)

// Valid reports whether s is one of the known statuses.
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusDeleted:
		return true
	}
	return false
}

func (s UserStatus) String() string {
	switch s {
	case UserStatusActive:
		return "active"
	case UserStatusInactive:
		return "inactive"
	case UserStatusDeleted:
		return "deleted"
	}
	return "unknown"
}

type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password  string     `gorm:"size:100;not null" json:"-"` // Hash
	Name      string     `gorm:"size:50" json:"name"`
	Age       int        `json:"age"`
	Phone     string     `gorm:"size:20" json:"phone"`
	Email     *string    `gorm:"size:100" json:"email"`
	Status    UserStatus `gorm:"not null;default:1;index" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
