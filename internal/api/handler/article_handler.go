package handler

import (
	"DevSpace/internal/api/dto"
	"DevSpace/internal/pkg/response"
	"DevSpace/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleSvc service.ArticleService
}

func NewArticleHandler(articleSvc service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleSvc: articleSvc}
}

// CreateArticle 发布文章
func (s *ArticleHandler) CreateArticle(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var req dto.ArticleBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	articleID, err := s.articleSvc.CreateArticle(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"id": articleID})
}

// UpdateArticle 编辑文章
func (s *ArticleHandler) UpdateArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	var req dto.ArticleBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.articleSvc.UpdateArticle(c.Request.Context(), articleID, userID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteArticle 删除文章
func (s *ArticleHandler) DeleteArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	if err := s.articleSvc.DeleteArticle(c.Request.Context(), articleID, userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetAuthorArticles 作者的文章列表
func (s *ArticleHandler) GetAuthorArticles(c *gin.Context) {
	authorID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || authorID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	articles, err := s.articleSvc.ListArticlesByAuthor(c.Request.Context(), authorID, page.Page, page.Size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, articles)
}

// GetArticle 文章详情，阅读即计一次浏览
func (s *ArticleHandler) GetArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerID := c.GetUint64("user_id")

	article, err := s.articleSvc.GetArticleByID(c.Request.Context(), articleID, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}
