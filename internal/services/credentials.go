package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"myblog/internal/utils"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims 是登录令牌携带的声明
type TokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *TokenClaims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid subject %q", c.Subject)
	}
	return uint(id), nil
}

// Credentials hashes and verifies passwords and issues HS256 bearer tokens.
type Credentials struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewCredentials(secret string, expiry time.Duration) (*Credentials, error) {
	if secret == "" {
		return nil, errors.New("JWT secret key cannot be empty")
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &Credentials{secret: []byte(secret), expiry: expiry, now: time.Now}, nil
}

func (c *Credentials) HashPassword(password string) (string, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

func (c *Credentials) VerifyPassword(password, hash string) bool {
	return utils.CheckPasswordHash(password, hash)
}

// IssueToken 生成包含用户 ID 与用户名的访问令牌
func (c *Credentials) IssueToken(userID uint, username string) (string, error) {
	now := c.now()
	claims := TokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.expiry)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// ParseToken validates signature and expiry and returns the claims.
func (c *Credentials) ParseToken(tokenStr string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}
