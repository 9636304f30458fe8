package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"myblog/internal/models"
	"myblog/internal/repository"

	"github.com/sirupsen/logrus"
)

const (
	MaxPageSize = 100
	TokenType   = "bearer"

	// bcrypt 只接受 72 字节以内的密码
	MaxPasswordBytes = 72
)

// PasswordHasher 抽象密码哈希与令牌签发，便于测试替换
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) bool
	IssueToken(userID uint, username string) (string, error)
}

// RegisterInput 注册所需字段
type RegisterInput struct {
	Username string
	Password string
	Name     string
	Phone    string
	Email    *string
	Age      int
}

// LoginResult 登录成功后的返回
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
}

// UserPage 分页结果
type UserPage struct {
	Users      []models.User `json:"users"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

type UserService struct {
	repo  repository.UserRepository
	creds PasswordHasher
}

func NewUserService(repo repository.UserRepository, creds PasswordHasher) *UserService {
	if repo == nil {
		panic("UserRepository cannot be nil for UserService")
	}
	if creds == nil {
		panic("PasswordHasher cannot be nil for UserService")
	}
	return &UserService{repo: repo, creds: creds}
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// CreateUser 注册新用户，初始状态固定为 active
func (s *UserService) CreateUser(ctx context.Context, in RegisterInput) (*models.User, error) {
	logCtx := logrus.WithField("username", in.Username)

	if len(in.Password) > MaxPasswordBytes {
		return nil, fmt.Errorf("%w: password exceeds %d bytes", ErrInvalidInput, MaxPasswordBytes)
	}

	_, err := s.repo.FindByUsername(ctx, in.Username)
	if err == nil {
		logCtx.Warn("Registration failed: username already exists")
		return nil, ErrConflict
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := s.creds.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: in.Username,
		Password: hash,
		Name:     in.Name,
		Phone:    in.Phone,
		Email:    in.Email,
		Age:      in.Age,
		Status:   models.UserStatusActive,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// 并发注册时由唯一索引兜底
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.Warn("Registration failed: username taken by concurrent request")
			return nil, ErrConflict
		}
		return nil, err
	}

	logCtx.WithField("user_id", user.ID).Info("User registered successfully")
	return user, nil
}

// Authenticate returns nil without error when the username is unknown or
// the password does not match.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !s.creds.VerifyPassword(password, user.Password) {
		return nil, nil
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	logCtx := logrus.WithField("username", username)

	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logCtx.Warn("Login attempt failed: bad credentials")
		return nil, ErrUnauthorized
	}
	if user.Status != models.UserStatusActive {
		logCtx.WithField("status", user.Status.String()).Warn("Login attempt failed: account not active")
		return nil, ErrForbidden
	}

	token, err := s.creds.IssueToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	logCtx.WithField("user_id", user.ID).Info("User logged in successfully")
	return &LoginResult{
		AccessToken: token,
		TokenType:   TokenType,
		UserID:      user.ID,
		Username:    user.Username,
	}, nil
}

// GetUsersPaginated 返回未删除用户，按 status 升序
func (s *UserService) GetUsersPaginated(ctx context.Context, page, pageSize int) (*UserPage, error) {
	if page < 1 || pageSize < 1 || pageSize > MaxPageSize {
		return nil, fmt.Errorf("%w: page=%d page_size=%d", ErrInvalidInput, page, pageSize)
	}

	// 超出范围的页码只会得到空页
	offset := math.MaxInt
	if page-1 <= math.MaxInt/pageSize {
		offset = (page - 1) * pageSize
	}
	users, total, err := s.repo.ListActive(ctx, offset, pageSize)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}

	return &UserPage{
		Users:      users,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

// UpdateUserStatus sets any of the three known statuses; transitions are unrestricted.
func (s *UserService) UpdateUserStatus(ctx context.Context, id uint, status models.UserStatus) (*models.User, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, status)
	}
	user, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": id, "status": status.String()}).Info("User status updated")
	return user, nil
}
