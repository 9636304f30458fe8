package handlers

import (
	"net/http"
	"strconv"

	"myblog/internal/middleware"
	"myblog/internal/models"
	"myblog/internal/services"

	"github.com/gin-gonic/gin"
)

const msgUserNotFound = "用户不存在"

var statusMessages = map[models.UserStatus]string{
	models.UserStatusActive:   "用户已启用",
	models.UserStatusInactive: "用户已停用",
	models.UserStatusDeleted:  "用户已删除",
}

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// ListUsersQuery 分页参数
type ListUsersQuery struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=10" binding:"min=1,max=100"`
}

// List - GET /api/users/list?page=&page_size=
func (h *UserHandler) List(c *gin.Context) {
	var q ListUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		RenderBindError(c, err)
		return
	}

	page, err := h.users.GetUsersPaginated(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		RenderServiceError(c, err, msgUserNotFound, "获取用户列表失败")
		return
	}
	c.JSON(http.StatusOK, page)
}

// UpdateStatus - PUT /api/users/:id/status?status=
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	raw, err := strconv.Atoi(c.Query("status"))
	if err != nil {
		RenderError(c, http.StatusBadRequest, "status 参数无效")
		return
	}
	status := models.UserStatus(raw)

	if _, err := h.users.UpdateUserStatus(c.Request.Context(), id, status); err != nil {
		RenderServiceError(c, err, msgUserNotFound, "更新用户状态失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": statusMessages[status], "user_id": id})
}

// Me - GET /api/users/me，需要 Bearer token
func (h *UserHandler) Me(c *gin.Context) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		RenderError(c, http.StatusUnauthorized, "未登录")
		return
	}
	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		RenderServiceError(c, err, msgUserNotFound, "获取用户失败")
		return
	}
	c.JSON(http.StatusOK, user)
}
