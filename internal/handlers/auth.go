package handlers

import (
	"net/http"

	"myblog/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string  `json:"username" binding:"required,max=50"`
	Password string  `json:"password" binding:"required,max=72"`
	Name     string  `json:"name" binding:"max=50"`
	Phone    string  `json:"phone" binding:"max=20"`
	Email    *string `json:"email" binding:"omitempty,email,max=100"`
	Age      int     `json:"age" binding:"min=0"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register - POST /api/users/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RenderBindError(c, err)
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), services.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Age:      req.Age,
	})
	if err != nil {
		RenderServiceError(c, err, msgUserNotFound, "注册失败")
		return
	}

	// models.User 的 password 字段不会被序列化
	c.JSON(http.StatusOK, user)
}

// Login - POST /api/users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RenderBindError(c, err)
		return
	}

	result, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		RenderServiceError(c, err, msgUserNotFound, "登录失败")
		return
	}
	c.JSON(http.StatusOK, result)
}

