package handler

import (
	"DevSpace/internal/api/dto"
	"DevSpace/internal/pkg/response"
	"DevSpace/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

// AddComment 发表评论，写入是异步的
func (s *CommentHandler) AddComment(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CommentAddDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.commentSvc.AddComment(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteComment 删除评论及其直接回复
func (s *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	if err := s.commentSvc.DeleteComment(c.Request.Context(), commentID, userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetCommentTree 整棵评论树
func (s *CommentHandler) GetCommentTree(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	tree, err := s.commentSvc.GetCommentTree(c.Request.Context(), articleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tree)
}

// GetCommentPage 分页评论
func (s *CommentHandler) GetCommentPage(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.commentSvc.GetCommentPage(c.Request.Context(), articleID, page.Page, page.Size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
