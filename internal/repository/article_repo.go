package repository

import (
	"DevSpace/internal/model"
	"context"

	"gorm.io/gorm"
)

type ArticleRepo interface {
	Create(ctx context.Context, article *model.Article) error
	Update(ctx context.Context, article *model.Article) error
	SoftDelete(ctx context.Context, articleID uint64) error
	GetByID(ctx context.Context, articleID uint64) (*model.Article, error)
	ExistsActive(ctx context.Context, articleID uint64) (bool, error)
	ListPublished(ctx context.Context) ([]*model.Article, error)
	ListByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Article, error)
}

type ArticleRepoImpl struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) ArticleRepo {
	return &ArticleRepoImpl{db}
}

func (s *ArticleRepoImpl) Create(ctx context.Context, article *model.Article) error {
	return s.db.WithContext(ctx).Create(article).Error
}

func (s *ArticleRepoImpl) Update(ctx context.Context, article *model.Article) error {
	return s.db.WithContext(ctx).Save(article).Error
}

// SoftDelete 逻辑删除，行保留用于历史统计
func (s *ArticleRepoImpl) SoftDelete(ctx context.Context, articleID uint64) error {
	return s.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ?", articleID).
		Update("status", model.ArticleStatusDeleted).Error
}

func (s *ArticleRepoImpl) GetByID(ctx context.Context, articleID uint64) (*model.Article, error) {
	var article model.Article
	err := s.db.WithContext(ctx).
		Where("id = ?", articleID).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// ExistsActive 文章存在且未被逻辑删除
func (s *ArticleRepoImpl) ExistsActive(ctx context.Context, articleID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ? AND status != ?", articleID, model.ArticleStatusDeleted).
		Count(&count).Error
	return count > 0, err
}

func (s *ArticleRepoImpl) ListPublished(ctx context.Context) ([]*model.Article, error) {
	var articles []*model.Article
	err := s.db.WithContext(ctx).
		Where("status = ?", model.ArticleStatusPublished).
		Find(&articles).Error
	return articles, err
}

func (s *ArticleRepoImpl) ListByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Article, error) {
	var articles []*model.Article
	err := s.db.WithContext(ctx).
		Where("author_id = ? AND status != ?", authorID, model.ArticleStatusDeleted).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&articles).Error
	return articles, err
}
