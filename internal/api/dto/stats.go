package dto

// DailyStatsDTO 单日统计，无快照的日期补零
type DailyStatsDTO struct {
	Date         string `json:"date"`
	ViewCount    int    `json:"view_count"`
	LikeCount    int    `json:"like_count"`
	CollectCount int    `json:"collect_count"`
	CommentCount int    `json:"comment_count"`
}

// ArticleStatsDTO 文章统计汇总
type ArticleStatsDTO struct {
	ArticleID    uint64 `json:"article_id"`
	TotalViews   int64  `json:"total_views"`
	TotalLikes   int64  `json:"total_likes"`
	TotalCollect int64  `json:"total_collects"`
	TotalComment int64  `json:"total_comments"`

	// 最近七天与前七天的环比百分比
	ViewsWeekOverWeek    float64 `json:"views_week_over_week"`
	LikesWeekOverWeek    float64 `json:"likes_week_over_week"`
	CollectsWeekOverWeek float64 `json:"collects_week_over_week"`

	Daily []*DailyStatsDTO `json:"daily"`
}

// TrendingArticleDTO 趋势榜单条目
type TrendingArticleDTO struct {
	ArticleID  uint64 `json:"article_id"`
	Title      string `json:"title"`
	TotalViews int64  `json:"total_views"`
}
