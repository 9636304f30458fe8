package router

import (
	"net/http"
	"time"

	"myblog/internal/config"
	"myblog/internal/handlers"
	"myblog/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handlers bundles everything RegisterRoutes wires up.
type Handlers struct {
	Articles *handlers.ArticleHandler
	Auth     *handlers.AuthHandler
	Users    *handlers.UserHandler
	Tokens   middleware.TokenParser
}

// NewEngine builds a gin engine with recovery, request logging and CORS.
func NewEngine(cfg *config.Config, log *logrus.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*", "Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	return r
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Blog API is running!"})
	})

	api := r.Group("/api")

	// 文章 (Articles)
	articles := api.Group("/articles")
	{
		articles.GET("/latest", h.Articles.Latest)     // 最新 10 篇
		articles.GET("/:id", h.Articles.Get)           // 文章详情
		articles.GET("/:id/html", h.Articles.Rendered) // 渲染后的正文
		articles.POST("", h.Articles.Create)           // 创建文章
		articles.POST("/", h.Articles.Create)
		articles.PUT("/:id", h.Articles.Update)    // 整体覆盖更新
		articles.DELETE("/:id", h.Articles.Delete) // 删除文章
	}

	// 用户 (Users)
	users := api.Group("/users")
	{
		users.POST("/register", h.Auth.Register)       // 注册
		users.POST("/login", h.Auth.Login)             // 登录
		users.GET("/list", h.Users.List)               // 分页列表
		users.PUT("/:id/status", h.Users.UpdateStatus) // 修改状态

		users.GET("/me", middleware.AuthRequired(h.Tokens), h.Users.Me) // 当前登录用户
	}
}
