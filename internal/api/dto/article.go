package dto

// ArticleBaseDTO 文章 - 新增或修改
type ArticleBaseDTO struct {
	Title   string `json:"title" binding:"required" validate:"min=1,max=200"`
	Summary string `json:"summary" validate:"max=500"`
	Content string `json:"content" binding:"required" validate:"min=1"`
}

// ArticleSummaryDTO 文章列表条目，不含正文与计数
type ArticleSummaryDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	AuthorID  uint64 `json:"author_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ArticleDTO 文章详情，计数来自互动数据
type ArticleDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Content   string `json:"content"`
	AuthorID  uint64 `json:"author_id"`
	Status    int8   `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	ViewCount    int64 `json:"view_count"`
	LikeCount    int64 `json:"like_count"`
	CollectCount int64 `json:"collect_count"`
	CommentCount int64 `json:"comment_count"`
}
