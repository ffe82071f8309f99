package dto

// ActivityDTO 用户活动流水
type ActivityDTO struct {
	ID           uint64 `json:"id"`
	UserID       uint64 `json:"user_id"`
	ActivityType string `json:"activity_type"`
	TargetID     uint64 `json:"target_id"`
	ExtraData    string `json:"extra_data,omitempty"`
	CreatedAt    string `json:"created_at"`
}
