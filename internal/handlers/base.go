package handlers

import (
	"errors"
	"net/http"

	"myblog/internal/services"
	"myblog/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RenderError writes the error body shape the frontend expects.
func RenderError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"detail": message})
}

// RenderServiceError maps service errors to status codes. notFound is the
// message for a missing resource, failed the generic 500 message; the internal
// error text is logged, never returned.
func RenderServiceError(c *gin.Context, err error, notFound, failed string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		RenderError(c, http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrConflict):
		RenderError(c, http.StatusBadRequest, "用户名已存在")
	case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrInvalidInput):
		RenderError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		c.Header("WWW-Authenticate", "Bearer")
		RenderError(c, http.StatusUnauthorized, "用户名或密码错误")
	case errors.Is(err, services.ErrForbidden):
		RenderError(c, http.StatusForbidden, "用户账户已被停用或删除")
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("Unhandled internal server error")
		RenderError(c, http.StatusInternalServerError, failed)
	}
}

// RenderBindError reports malformed request bodies or query strings.
func RenderBindError(c *gin.Context, err error) {
	logrus.WithError(err).WithField("path", c.FullPath()).Debug("Invalid request input")
	RenderError(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
}

// pathID reads a positive numeric path parameter, writing a 400 when invalid.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, ok := utils.ParseID(c.Param(name))
	if !ok {
		RenderError(c, http.StatusBadRequest, "无效的ID")
		return 0, false
	}
	return id, true
}
