package repository

import (
	"DevSpace/internal/model"
	"context"

	"gorm.io/gorm"
)

type ViewCountRepo interface {
	GetByArticleID(ctx context.Context, articleID uint64) (*model.ArticleViewCount, error)
	Create(ctx context.Context, vc *model.ArticleViewCount) error
	UpdateCount(ctx context.Context, articleID uint64, count int64) error
}

type ViewCountRepoImpl struct {
	db *gorm.DB
}

func NewViewCountRepo(db *gorm.DB) ViewCountRepo {
	return &ViewCountRepoImpl{db}
}

// GetByArticleID 行不存在时返回 gorm.ErrRecordNotFound
func (s *ViewCountRepoImpl) GetByArticleID(ctx context.Context, articleID uint64) (*model.ArticleViewCount, error) {
	var vc model.ArticleViewCount
	err := s.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		First(&vc).Error
	if err != nil {
		return nil, err
	}
	return &vc, nil
}

func (s *ViewCountRepoImpl) Create(ctx context.Context, vc *model.ArticleViewCount) error {
	return s.db.WithContext(ctx).Create(vc).Error
}

func (s *ViewCountRepoImpl) UpdateCount(ctx context.Context, articleID uint64, count int64) error {
	return s.db.WithContext(ctx).Model(&model.ArticleViewCount{}).
		Where("article_id = ?", articleID).
		Update("view_count", count).Error
}
