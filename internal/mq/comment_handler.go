package mq

import (
	"DevSpace/internal/api/dto"
	"DevSpace/internal/event"
	"DevSpace/internal/model"
	"DevSpace/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

var (
	errCommentArticleMissing = errors.New("comment target article missing or deleted")
	errCommentParentMissing  = errors.New("comment parent missing")
)

type CommentsHandler struct {
	articleRepo repository.ArticleRepo
	commentRepo repository.CommentRepo
	bus         *event.Bus
}

func NewCommentsHandler(articleRepo repository.ArticleRepo, commentRepo repository.CommentRepo, bus *event.Bus) *CommentsHandler {
	return &CommentsHandler{
		articleRepo: articleRepo,
		commentRepo: commentRepo,
		bus:         bus,
	}
}

func (s *CommentsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("article comment consumer setup")
	return nil
}

func (s *CommentsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("article comment consumer cleanup")
	return nil
}

func (s *CommentsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-comment consume claim")
	return consumeEachMessage(session, claim, s.logic)
}

// logic 校验失败的评论直接丢弃，不回流重投
func (s *CommentsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var m dto.CommentMessage
	if err := json.Unmarshal(msg.Value, &m); err != nil {
		return err
	}

	article, err := s.articleRepo.GetByID(ctx, m.ArticleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errCommentArticleMissing
	}
	if err != nil {
		return err
	}
	if article.IsDeleted() {
		return errCommentArticleMissing
	}

	if m.ParentID != nil {
		if _, err := s.commentRepo.GetByID(ctx, *m.ParentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errCommentParentMissing
			}
			return err
		}
	}

	comment := &model.Comment{
		ArticleID: m.ArticleID,
		UserID:    m.UserID,
		Content:   m.Content,
		ParentID:  m.ParentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return err
	}

	s.bus.Publish(ctx, event.UserActivityEvent{
		UserID:       m.UserID,
		ActivityType: model.ActivityComment,
		TargetID:     m.ArticleID,
		ExtraData:    fmt.Sprintf(`{"commentId":%d}`, comment.ID),
	})

	log.InfoContext(ctx, "comment created", "articleId", m.ArticleID, "commentId", comment.ID)
	return nil
}
