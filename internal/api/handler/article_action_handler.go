package handler

import (
	"DevSpace/internal/api/dto"
	"DevSpace/internal/pkg/response"
	"DevSpace/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type ArticleActionHandler struct {
	articleSvc service.ArticleService
	commentSvc service.CommentService
}

func NewArticleActionHandler(articleSvc service.ArticleService, commentSvc service.CommentService) *ArticleActionHandler {
	return &ArticleActionHandler{
		articleSvc: articleSvc,
		commentSvc: commentSvc,
	}
}

// LikeArticle 点赞/取消点赞文章
func (s *ArticleActionHandler) LikeArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	var req dto.ArticleActionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if req.Action == 1 {
		err = s.articleSvc.LikeArticle(c.Request.Context(), articleID, userID)
	} else {
		err = s.articleSvc.UnlikeArticle(c.Request.Context(), articleID, userID)
	}

	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// CollectArticle 收藏/取消收藏文章
func (s *ArticleActionHandler) CollectArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	var req dto.ArticleActionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if req.Action == 1 {
		err = s.articleSvc.CollectArticle(c.Request.Context(), articleID, userID)
	} else {
		err = s.articleSvc.UncollectArticle(c.Request.Context(), articleID, userID)
	}

	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetActionState 获取文章的互动状态与计数
func (s *ArticleActionHandler) GetActionState(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	ctx := c.Request.Context()
	state := &dto.ArticleActionStateDTO{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		state.LikeCount, _ = s.articleSvc.GetArticleLikeCount(gCtx, articleID)
		return nil
	})
	g.Go(func() error {
		state.CollectCount, _ = s.articleSvc.GetArticleCollectCount(gCtx, articleID)
		return nil
	})
	g.Go(func() error {
		state.CommentCount, _ = s.commentSvc.GetCommentCount(gCtx, articleID)
		return nil
	})
	if userID != 0 {
		g.Go(func() error {
			state.Liked, _ = s.articleSvc.IsArticleLikedByUser(gCtx, articleID, userID)
			return nil
		})
		g.Go(func() error {
			state.Collected, _ = s.articleSvc.IsArticleCollectedByUser(gCtx, articleID, userID)
			return nil
		})
	}

	_ = g.Wait()
	response.Success(c, state)
}
