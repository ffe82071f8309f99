package repository

import (
	"DevSpace/internal/model"
	"context"

	"gorm.io/gorm"
)

type ActivityRepo interface {
	Create(ctx context.Context, activity *model.UserActivity) error
	FindByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.UserActivity, error)
	FindByUserAndType(ctx context.Context, userID uint64, activityType string, limit, offset int) ([]*model.UserActivity, error)
	FindByTarget(ctx context.Context, targetID uint64, limit, offset int) ([]*model.UserActivity, error)
}

type ActivityRepoImpl struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) ActivityRepo {
	return &ActivityRepoImpl{db}
}

func (s *ActivityRepoImpl) Create(ctx context.Context, activity *model.UserActivity) error {
	return s.db.WithContext(ctx).Create(activity).Error
}

func (s *ActivityRepoImpl) FindByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.UserActivity, error) {
	var activities []*model.UserActivity
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&activities).Error
	return activities, err
}

func (s *ActivityRepoImpl) FindByUserAndType(ctx context.Context, userID uint64, activityType string, limit, offset int) ([]*model.UserActivity, error) {
	var activities []*model.UserActivity
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND activity_type = ?", userID, activityType).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&activities).Error
	return activities, err
}

func (s *ActivityRepoImpl) FindByTarget(ctx context.Context, targetID uint64, limit, offset int) ([]*model.UserActivity, error) {
	var activities []*model.UserActivity
	err := s.db.WithContext(ctx).
		Where("target_id = ?", targetID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&activities).Error
	return activities, err
}
