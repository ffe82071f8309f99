package dto

// 互动消息体，生产与消费两端共用

type LikeMessage struct {
	ArticleID uint64 `json:"articleId"`
	UserID    uint64 `json:"userId"`
	IsAdd     bool   `json:"isAdd"`
}

type CollectMessage struct {
	ArticleID uint64 `json:"articleId"`
	UserID    uint64 `json:"userId"`
	IsAdd     bool   `json:"isAdd"`
}

type CommentMessage struct {
	ArticleID uint64  `json:"articleId"`
	UserID    uint64  `json:"userId"`
	Content   string  `json:"content"`
	ParentID  *uint64 `json:"parentId"`
}
