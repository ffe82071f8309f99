package consts

const (
	// ArticleViewsKey 浏览量计数 Hash，field 为文章 ID 的十进制字符串
	ArticleViewsKey = "article_views"

	OnlineUserKey = "online:user:"
)

const (
	InteractionLock = "lock:interaction:"
)
