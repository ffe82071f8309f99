package consts

// 互动消息主题，按互动类型划分
const (
	TopicArticleLike    = "article.like"
	TopicArticleCollect = "article.collect"
	TopicArticleComment = "article.comment"
)

// 消费组，每个主题各一组，组内按文章分区保序
const (
	GroupArticleLike    = "article.like.queue"
	GroupArticleCollect = "article.collect.queue"
	GroupArticleComment = "article.comment.queue"
)
