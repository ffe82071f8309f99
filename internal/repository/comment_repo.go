package repository

import (
	"DevSpace/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type CommentRepo interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, commentID uint64) (*model.Comment, error)
	DeleteWithReplies(ctx context.Context, commentID uint64) error
	FindByArticleID(ctx context.Context, articleID uint64) ([]*model.Comment, error)
	FindRootsByArticleID(ctx context.Context, articleID uint64, limit, offset int) ([]*model.Comment, error)
	FindByParentIDs(ctx context.Context, parentIDs []uint64) ([]*model.Comment, error)
	CountByArticleID(ctx context.Context, articleID uint64) (int64, error)
	CountRootsByArticleID(ctx context.Context, articleID uint64) (int64, error)
	CountCommentsInRange(ctx context.Context, articleID uint64, start, end time.Time) (int64, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db}
}

func (s *CommentRepoImpl) Create(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentRepoImpl) GetByID(ctx context.Context, commentID uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).
		Where("id = ?", commentID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteWithReplies 删除评论及其直接回复
func (s *CommentRepoImpl) DeleteWithReplies(ctx context.Context, commentID uint64) error {
	return s.db.WithContext(ctx).
		Where("id = ? OR parent_id = ?", commentID, commentID).
		Delete(&model.Comment{}).Error
}

// FindByArticleID 取文章的全量评论，按创建时间升序
func (s *CommentRepoImpl) FindByArticleID(ctx context.Context, articleID uint64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// FindRootsByArticleID 分页取一级评论，新评论在前
func (s *CommentRepoImpl) FindRootsByArticleID(ctx context.Context, articleID uint64, limit, offset int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Where("article_id = ? AND parent_id IS NULL", articleID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	return comments, err
}

// FindByParentIDs 批量取直接回复，按创建时间升序
func (s *CommentRepoImpl) FindByParentIDs(ctx context.Context, parentIDs []uint64) ([]*model.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Where("parent_id IN ?", parentIDs).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (s *CommentRepoImpl) CountByArticleID(ctx context.Context, articleID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("article_id = ?", articleID).
		Count(&count).Error
	return count, err
}

func (s *CommentRepoImpl) CountRootsByArticleID(ctx context.Context, articleID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("article_id = ? AND parent_id IS NULL", articleID).
		Count(&count).Error
	return count, err
}

func (s *CommentRepoImpl) CountCommentsInRange(ctx context.Context, articleID uint64, start, end time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("article_id = ? AND created_at >= ? AND created_at < ?", articleID, start, end).
		Count(&count).Error
	return count, err
}
