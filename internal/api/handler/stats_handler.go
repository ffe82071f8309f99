package handler

import (
	"DevSpace/internal/pkg/response"
	"DevSpace/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsSvc service.StatsService
}

func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// GetArticleStats 文章统计，按日补零
func (s *StatsHandler) GetArticleStats(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))

	stats, err := s.statsSvc.GetArticleStats(c.Request.Context(), articleID, days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

// GetTrending 趋势榜单
func (s *StatsHandler) GetTrending(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	trending, err := s.statsSvc.GetTrendingArticles(c.Request.Context(), days, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trending)
}
