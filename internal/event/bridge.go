package event

import (
	"DevSpace/internal/api/dto"
	"DevSpace/internal/pkg/consts"
	"context"
	log "log/slog"
	"strconv"
)

// Publisher 消息队列生产端，负责序列化与投递
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

// InteractionBridge 把总线上的互动事件转发到持久化队列。
// 投递失败只记录日志并丢弃，事件不回流
type InteractionBridge struct {
	pub Publisher
}

func NewInteractionBridge(pub Publisher) *InteractionBridge {
	return &InteractionBridge{pub: pub}
}

// Register 订阅三类互动事件
func (s *InteractionBridge) Register(bus *Bus) {
	bus.Subscribe(NameArticleLike, s.onLike)
	bus.Subscribe(NameArticleCollect, s.onCollect)
	bus.Subscribe(NameArticleComment, s.onComment)
}

func (s *InteractionBridge) onLike(ctx context.Context, e Event) {
	ev, ok := e.(ArticleLikeEvent)
	if !ok {
		return
	}
	msg := dto.LikeMessage{ArticleID: ev.ArticleID, UserID: ev.UserID, IsAdd: ev.IsAdd}
	s.publish(ctx, consts.TopicArticleLike, ev.ArticleID, msg)
}

func (s *InteractionBridge) onCollect(ctx context.Context, e Event) {
	ev, ok := e.(ArticleCollectEvent)
	if !ok {
		return
	}
	msg := dto.CollectMessage{ArticleID: ev.ArticleID, UserID: ev.UserID, IsAdd: ev.IsAdd}
	s.publish(ctx, consts.TopicArticleCollect, ev.ArticleID, msg)
}

func (s *InteractionBridge) onComment(ctx context.Context, e Event) {
	ev, ok := e.(ArticleCommentEvent)
	if !ok {
		return
	}
	msg := dto.CommentMessage{ArticleID: ev.ArticleID, UserID: ev.UserID, Content: ev.Content, ParentID: ev.ParentID}
	s.publish(ctx, consts.TopicArticleComment, ev.ArticleID, msg)
}

// publish 按文章 ID 作为分区键，同一篇文章的互动保序
func (s *InteractionBridge) publish(ctx context.Context, topic string, articleID uint64, payload interface{}) {
	key := strconv.FormatUint(articleID, 10)
	if err := s.pub.Publish(ctx, topic, key, payload); err != nil {
		log.ErrorContext(ctx, "publish interaction message failed", "topic", topic, "articleId", articleID, "err", err)
	}
}
