package repository

import (
	"DevSpace/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type InteractionRepo interface {
	CreateLike(ctx context.Context, like *model.ArticleLike) error
	DeleteLike(ctx context.Context, articleID, userID uint64) error
	CheckLikeExists(ctx context.Context, articleID, userID uint64) (bool, error)
	GetLikeCount(ctx context.Context, articleID uint64) (int64, error)
	CountLikesInRange(ctx context.Context, articleID uint64, start, end time.Time) (int64, error)

	CreateCollect(ctx context.Context, collect *model.ArticleCollect) error
	DeleteCollect(ctx context.Context, articleID, userID uint64) error
	CheckCollectExists(ctx context.Context, articleID, userID uint64) (bool, error)
	GetCollectCount(ctx context.Context, articleID uint64) (int64, error)
	CountCollectsInRange(ctx context.Context, articleID uint64, start, end time.Time) (int64, error)
}

type InteractionRepoImpl struct {
	db *gorm.DB
}

func NewInteractionRepo(db *gorm.DB) InteractionRepo {
	return &InteractionRepoImpl{db}
}

func (s *InteractionRepoImpl) CreateLike(ctx context.Context, like *model.ArticleLike) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *InteractionRepoImpl) DeleteLike(ctx context.Context, articleID, userID uint64) error {
	return s.db.WithContext(ctx).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Delete(&model.ArticleLike{}).Error
}

func (s *InteractionRepoImpl) CheckLikeExists(ctx context.Context, articleID, userID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ArticleLike{}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *InteractionRepoImpl) GetLikeCount(ctx context.Context, articleID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ArticleLike{}).
		Where("article_id = ?", articleID).
		Count(&count).Error
	return count, err
}

// CountLikesInRange 统计 [start, end) 区间内的点赞数
func (s *InteractionRepoImpl) CountLikesInRange(ctx context.Context, articleID uint64, start, end time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ArticleLike{}).
		Where("article_id = ? AND created_at >= ? AND created_at < ?", articleID, start, end).
		Count(&count).Error
	return count, err
}

func (s *InteractionRepoImpl) CreateCollect(ctx context.Context, collect *model.ArticleCollect) error {
	return s.db.WithContext(ctx).Create(collect).Error
}

func (s *InteractionRepoImpl) DeleteCollect(ctx context.Context, articleID, userID uint64) error {
	return s.db.WithContext(ctx).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Delete(&model.ArticleCollect{}).Error
}

func (s *InteractionRepoImpl) CheckCollectExists(ctx context.Context, articleID, userID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ArticleCollect{}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *InteractionRepoImpl) GetCollectCount(ctx context.Context, articleID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ArticleCollect{}).
		Where("article_id = ?", articleID).
		Count(&count).Error
	return count, err
}

func (s *InteractionRepoImpl) CountCollectsInRange(ctx context.Context, articleID uint64, start, end time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ArticleCollect{}).
		Where("article_id = ? AND created_at >= ? AND created_at < ?", articleID, start, end).
		Count(&count).Error
	return count, err
}
