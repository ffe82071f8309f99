package service

import (
	"DevSpace/internal/model"
	"DevSpace/internal/repository"
	"context"
)

// ActivityService 用户行为流水，只追加
type ActivityService interface {
	RecordActivity(ctx context.Context, userID uint64, activityType string, targetID uint64, extraData string) error
	GetUserActivities(ctx context.Context, userID uint64, page, size int) ([]*model.UserActivity, error)
	GetUserActivitiesByType(ctx context.Context, userID uint64, activityType string, page, size int) ([]*model.UserActivity, error)
	GetArticleActivities(ctx context.Context, articleID uint64, page, size int) ([]*model.UserActivity, error)
}

type ActivityServiceImpl struct {
	activityRepo repository.ActivityRepo
}

func NewActivityService(activityRepo repository.ActivityRepo) ActivityService {
	return &ActivityServiceImpl{activityRepo: activityRepo}
}

func (s *ActivityServiceImpl) RecordActivity(ctx context.Context, userID uint64, activityType string, targetID uint64, extraData string) error {
	activity := &model.UserActivity{
		UserID:       userID,
		ActivityType: activityType,
		TargetID:     targetID,
		ExtraData:    extraData,
	}
	return s.activityRepo.Create(ctx, activity)
}

func (s *ActivityServiceImpl) GetUserActivities(ctx context.Context, userID uint64, page, size int) ([]*model.UserActivity, error) {
	limit, offset := normalizePage(page, size)
	return s.activityRepo.FindByUser(ctx, userID, limit, offset)
}

func (s *ActivityServiceImpl) GetUserActivitiesByType(ctx context.Context, userID uint64, activityType string, page, size int) ([]*model.UserActivity, error) {
	limit, offset := normalizePage(page, size)
	return s.activityRepo.FindByUserAndType(ctx, userID, activityType, limit, offset)
}

func (s *ActivityServiceImpl) GetArticleActivities(ctx context.Context, articleID uint64, page, size int) ([]*model.UserActivity, error) {
	limit, offset := normalizePage(page, size)
	return s.activityRepo.FindByTarget(ctx, articleID, limit, offset)
}
