package model

import (
	"time"
)

// ArticleCollect 收藏记录，唯一性约定同 ArticleLike
type ArticleCollect struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ArticleID uint64    `gorm:"not null;index:idx_article_id" json:"articleId"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ArticleCollect) TableName() string {
	return "article_collects"
}
