package service

import (
	"DevSpace/internal/api/dto"
	"DevSpace/internal/event"
	"DevSpace/internal/model"
	"DevSpace/internal/repository"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type CommentService interface {
	CommentCountProvider

	AddComment(ctx context.Context, userID uint64, req *dto.CommentAddDTO) error
	DeleteComment(ctx context.Context, commentID, userID uint64) error
	GetCommentTree(ctx context.Context, articleID uint64) ([]*dto.CommentDTO, error)
	GetCommentPage(ctx context.Context, articleID uint64, page, size int) (*dto.CommentPageDTO, error)
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	articleRepo repository.ArticleRepo
	bus         *event.Bus
}

func NewCommentService(commentRepo repository.CommentRepo, articleRepo repository.ArticleRepo, bus *event.Bus) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		bus:         bus,
	}
}

// AddComment 校验通过后投递事件，落库由消费者完成
func (s *CommentServiceImpl) AddComment(ctx context.Context, userID uint64, req *dto.CommentAddDTO) error {
	if strings.TrimSpace(req.Content) == "" {
		return ErrCommentEmpty
	}

	active, err := s.articleRepo.ExistsActive(ctx, req.ArticleID)
	if err != nil {
		return err
	}
	if !active {
		return ErrArticleNotFound
	}

	if req.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *req.ParentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		if err != nil {
			return err
		}
		if parent.ArticleID != req.ArticleID {
			return ErrCommentNotFound
		}
	}

	s.bus.Publish(ctx, event.ArticleCommentEvent{
		ArticleID: req.ArticleID,
		UserID:    userID,
		Content:   req.Content,
		ParentID:  req.ParentID,
	})
	return nil
}

// DeleteComment 删除评论及其直接回复
func (s *CommentServiceImpl) DeleteComment(ctx context.Context, commentID, userID uint64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCommentNotFound
	}
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return ErrNotCommentOwner
	}
	return s.commentRepo.DeleteWithReplies(ctx, commentID)
}

// GetCommentTree 组装整棵评论森林。父节点缺失的评论提升为一级评论，
// 不会被静默丢掉
func (s *CommentServiceImpl) GetCommentTree(ctx context.Context, articleID uint64) ([]*dto.CommentDTO, error) {
	comments, err := s.commentRepo.FindByArticleID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	nodes := make(map[uint64]*dto.CommentDTO, len(comments))
	for _, c := range comments {
		nodes[c.ID] = toCommentDTO(c)
	}

	roots := make([]*dto.CommentDTO, 0)
	for _, c := range comments {
		node := nodes[c.ID]
		if c.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*c.ParentID]
		if !ok {
			roots = append(roots, node)
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}
	return roots, nil
}

// GetCommentPage 分页取一级评论，每条只挂直接回复，不展开更深层级
func (s *CommentServiceImpl) GetCommentPage(ctx context.Context, articleID uint64, page, size int) (*dto.CommentPageDTO, error) {
	limit, offset := normalizePage(page, size)

	total, err := s.commentRepo.CountRootsByArticleID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	rootComments, err := s.commentRepo.FindRootsByArticleID(ctx, articleID, limit, offset)
	if err != nil {
		return nil, err
	}

	roots := make([]*dto.CommentDTO, 0, len(rootComments))
	nodes := make(map[uint64]*dto.CommentDTO, len(rootComments))
	rootIDs := make([]uint64, 0, len(rootComments))
	for _, c := range rootComments {
		node := toCommentDTO(c)
		roots = append(roots, node)
		nodes[c.ID] = node
		rootIDs = append(rootIDs, c.ID)
	}

	replies, err := s.commentRepo.FindByParentIDs(ctx, rootIDs)
	if err != nil {
		return nil, err
	}
	for _, c := range replies {
		if parent, ok := nodes[*c.ParentID]; ok {
			parent.Replies = append(parent.Replies, toCommentDTO(c))
		}
	}

	return &dto.CommentPageDTO{Total: total, List: roots}, nil
}

func (s *CommentServiceImpl) GetCommentCount(ctx context.Context, articleID uint64) (int64, error) {
	return s.commentRepo.CountByArticleID(ctx, articleID)
}

func toCommentDTO(c *model.Comment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		UserID:    c.UserID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt.Format(timeLayout),
		Replies:   make([]*dto.CommentDTO, 0),
	}
}
