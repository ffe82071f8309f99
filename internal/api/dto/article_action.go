package dto

// ArticleActionDTO 互动请求，Action 1 为执行，0 为取消
type ArticleActionDTO struct {
	Action int8 `json:"action"`
}

// ArticleActionStateDTO 文章互动状态
type ArticleActionStateDTO struct {
	Liked        bool  `json:"liked"`
	Collected    bool  `json:"collected"`
	LikeCount    int64 `json:"like_count"`
	CollectCount int64 `json:"collect_count"`
	CommentCount int64 `json:"comment_count"`
}
