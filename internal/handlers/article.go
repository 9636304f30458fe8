package handlers

import (
	"net/http"

	"myblog/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	msgArticleNotFound = "文章不存在"
)

type ArticleHandler struct {
	articles *services.ArticleService
}

func NewArticleHandler(articles *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// ArticleRequest 创建与更新共用；user_id 等未知字段被忽略
type ArticleRequest struct {
	Title   string  `json:"title" binding:"required,max=255"`
	Summary string  `json:"summary" binding:"required"`
	Content *string `json:"content"`
}

// Latest - GET /api/articles/latest
func (h *ArticleHandler) Latest(c *gin.Context) {
	articles, err := h.articles.GetLatest(c.Request.Context())
	if err != nil {
		RenderServiceError(c, err, msgArticleNotFound, "获取文章失败")
		return
	}
	c.JSON(http.StatusOK, articles)
}

// Get - GET /api/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	article, err := h.articles.GetByID(c.Request.Context(), id)
	if err != nil {
		RenderServiceError(c, err, msgArticleNotFound, "获取文章失败")
		return
	}
	c.JSON(http.StatusOK, article)
}

// Rendered - GET /api/articles/:id/html
func (h *ArticleHandler) Rendered(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rendered, err := h.articles.RenderHTML(c.Request.Context(), id)
	if err != nil {
		RenderServiceError(c, err, msgArticleNotFound, "渲染文章失败")
		return
	}
	c.JSON(http.StatusOK, rendered)
}

// Create - POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RenderBindError(c, err)
		return
	}
	article, err := h.articles.Create(c.Request.Context(), req.Title, req.Summary, req.Content)
	if err != nil {
		RenderServiceError(c, err, msgArticleNotFound, "创建文章失败")
		return
	}
	c.JSON(http.StatusOK, article)
}

// Update - PUT /api/articles/:id，三个字段整体覆盖
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RenderBindError(c, err)
		return
	}
	article, err := h.articles.Update(c.Request.Context(), id, req.Title, req.Summary, req.Content)
	if err != nil {
		RenderServiceError(c, err, msgArticleNotFound, "更新文章失败")
		return
	}
	c.JSON(http.StatusOK, article)
}

// Delete - DELETE /api/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.articles.Delete(c.Request.Context(), id)
	if err != nil {
		RenderServiceError(c, err, msgArticleNotFound, "删除文章失败")
		return
	}
	if !deleted {
		RenderError(c, http.StatusNotFound, msgArticleNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "文章删除成功"})
}
