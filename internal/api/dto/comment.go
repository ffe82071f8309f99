package dto

// CommentAddDTO 评论 - 新增
type CommentAddDTO struct {
	ArticleID uint64  `json:"article_id" binding:"required"`
	Content   string  `json:"content" binding:"required" validate:"min=1,max=1000"`
	ParentID  *uint64 `json:"parent_id"`
}

// CommentDTO 评论节点，Replies 为直接回复
type CommentDTO struct {
	ID        uint64        `json:"id"`
	ArticleID uint64        `json:"article_id"`
	UserID    uint64        `json:"user_id"`
	Content   string        `json:"content"`
	ParentID  *uint64       `json:"parent_id,omitempty"`
	CreatedAt string        `json:"created_at"`
	Replies   []*CommentDTO `json:"replies"`
}

// CommentPageDTO 分页评论，只带一级评论及其直接回复
type CommentPageDTO struct {
	Total int64         `json:"total"`
	List  []*CommentDTO `json:"list"`
}
