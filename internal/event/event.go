package event

// 事件名，订阅与分发按名字匹配
const (
	NameArticleLike    = "article.like"
	NameArticleCollect = "article.collect"
	NameArticleComment = "article.comment"
	NameUserActivity   = "user.activity"
)

// Event 进程内事件
type Event interface {
	Name() string
}

// ArticleLikeEvent 点赞或取消点赞
type ArticleLikeEvent struct {
	ArticleID uint64
	UserID    uint64
	IsAdd     bool
}

func (ArticleLikeEvent) Name() string { return NameArticleLike }

// ArticleCollectEvent 收藏或取消收藏
type ArticleCollectEvent struct {
	ArticleID uint64
	UserID    uint64
	IsAdd     bool
}

func (ArticleCollectEvent) Name() string { return NameArticleCollect }

// ArticleCommentEvent 新增评论，ParentID 为空表示一级评论
type ArticleCommentEvent struct {
	ArticleID uint64
	UserID    uint64
	Content   string
	ParentID  *uint64
}

func (ArticleCommentEvent) Name() string { return NameArticleComment }

// UserActivityEvent 用户行为流水
type UserActivityEvent struct {
	UserID       uint64
	ActivityType string
	TargetID     uint64
	ExtraData    string
}

func (UserActivityEvent) Name() string { return NameUserActivity }
