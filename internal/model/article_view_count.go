package model

import (
	"time"
)

// ArticleViewCount 浏览量落库快照。热值在 Redis，定时任务回写，
// 两次同步之间数据库值允许落后于缓存值
type ArticleViewCount struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ArticleID uint64    `gorm:"not null;index:idx_article_id,unique" json:"articleId"`
	ViewCount int64     `gorm:"not null;default:0" json:"viewCount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ArticleViewCount) TableName() string {
	return "article_view_counts"
}
