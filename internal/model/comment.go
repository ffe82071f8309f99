package model

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ArticleID uint64    `gorm:"not null;index:idx_article_id" json:"articleId"`
	UserID    uint64    `gorm:"not null" json:"userId"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	ParentID  *uint64   `gorm:"index:idx_parent_id" json:"parentId"` // nil 表示一级评论
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}

// IsRoot 是否为一级评论
func (s *Comment) IsRoot() bool {
	return s.ParentID == nil
}
