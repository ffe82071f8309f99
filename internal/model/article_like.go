package model

import (
	"time"
)

// ArticleLike 点赞记录。(article_id, user_id) 的唯一性由消费者的
// 存在性检查保证，不依赖数据库唯一约束
type ArticleLike struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ArticleID uint64    `gorm:"not null;index:idx_article_id" json:"articleId"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ArticleLike) TableName() string {
	return "article_likes"
}
