package model

import (
	"time"
)

// ArticleDailyStats 每日统计快照，一篇文章一天一行，仅由统计任务 upsert
type ArticleDailyStats struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	ArticleID    uint64    `gorm:"not null;index:idx_article_date,unique" json:"articleId"`
	StatDate     time.Time `gorm:"not null;index:idx_article_date,unique;column:stat_date" json:"statDate"`
	ViewCount    int       `gorm:"not null;default:0" json:"viewCount"`
	LikeCount    int       `gorm:"not null;default:0" json:"likeCount"`
	CollectCount int       `gorm:"not null;default:0" json:"collectCount"`
	CommentCount int       `gorm:"not null;default:0" json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (ArticleDailyStats) TableName() string {
	return "article_daily_stats"
}
