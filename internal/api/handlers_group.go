package api

import "DevSpace/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	ArticleHandler       *handler.ArticleHandler
	ArticleActionHandler *handler.ArticleActionHandler
	CommentHandler       *handler.CommentHandler
	StatsHandler         *handler.StatsHandler
	ActivityHandler      *handler.ActivityHandler
	UserHandler          *handler.UserHandler
}
