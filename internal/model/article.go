package model

import (
	"time"
)

const (
	ArticleStatusDraft     int8 = 0
	ArticleStatusPublished int8 = 1
	ArticleStatusDeleted   int8 = 2
)

type Article struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Summary   string    `gorm:"type:varchar(500)" json:"summary"`
	Content   string    `gorm:"type:longtext;not null" json:"content"`
	AuthorID  uint64    `gorm:"not null;index:idx_author_id" json:"authorId"`
	Status    int8      `gorm:"not null;default:0;index:idx_status" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Article) TableName() string {
	return "articles"
}

// IsDeleted 软删除判定，状态 2 表示已删除
func (s *Article) IsDeleted() bool {
	return s.Status == ArticleStatusDeleted
}
