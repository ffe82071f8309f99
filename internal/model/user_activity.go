package model

import (
	"time"
)

// 用户活动类型
const (
	ActivityCreateArticle  = "CREATE_ARTICLE"
	ActivityEditArticle    = "EDIT_ARTICLE"
	ActivityViewArticle    = "VIEW_ARTICLE"
	ActivityLikeArticle    = "LIKE_ARTICLE"
	ActivityCollectArticle = "COLLECT_ARTICLE"
	ActivityComment        = "COMMENT"
)

// UserActivity 活动流水，只追加，本系统不更新不删除
type UserActivity struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	UserID       uint64    `gorm:"not null;index:idx_user_id" json:"userId"`
	ActivityType string    `gorm:"type:varchar(32);not null;index:idx_activity_type" json:"activityType"`
	TargetID     uint64    `gorm:"not null;index:idx_target_id" json:"targetId"`
	ExtraData    string    `gorm:"type:varchar(512)" json:"extraData"` // 附加信息，JSON 字符串
	CreatedAt    time.Time `json:"createdAt"`
}

func (UserActivity) TableName() string {
	return "user_activities"
}
