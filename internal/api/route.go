package api

import (
	"DevSpace/internal/api/middleware"
	"DevSpace/internal/pkg/logger"
	"DevSpace/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, onlineSvc service.OnlineUserService) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	identity := middleware.IdentityMiddleware(onlineSvc)
	identityOpt := middleware.IdentityOptionalMiddleware()

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		articleGroup := apiGroup.Group("/article")
		{
			articleGroup.GET("/:article_id", identityOpt, group.ArticleHandler.GetArticle)
			articleGroup.GET("/author/:user_id", group.ArticleHandler.GetAuthorArticles)
			articleGroup.GET("/:article_id/state", identityOpt, group.ArticleActionHandler.GetActionState)
			articleGroup.GET("/:article_id/comments", group.CommentHandler.GetCommentPage)
			articleGroup.GET("/:article_id/comments/tree", group.CommentHandler.GetCommentTree)
			articleGroup.GET("/:article_id/activities", group.ActivityHandler.GetArticleActivities)

			authGroup := articleGroup.Group("")
			authGroup.Use(identity)
			{
				authGroup.POST("", group.ArticleHandler.CreateArticle)
				authGroup.PUT("/:article_id", group.ArticleHandler.UpdateArticle)
				authGroup.DELETE("/:article_id", group.ArticleHandler.DeleteArticle)
				authGroup.POST("/:article_id/like", group.ArticleActionHandler.LikeArticle)
				authGroup.POST("/:article_id/collect", group.ArticleActionHandler.CollectArticle)
			}
		}

		commentGroup := apiGroup.Group("/comment")
		commentGroup.Use(identity)
		{
			commentGroup.POST("", group.CommentHandler.AddComment)
			commentGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
		}

		statsGroup := apiGroup.Group("/stats")
		{
			statsGroup.GET("/article/:article_id", group.StatsHandler.GetArticleStats)
			statsGroup.GET("/trending", group.StatsHandler.GetTrending)
		}

		activityGroup := apiGroup.Group("/activity")
		{
			activityGroup.GET("/user/:user_id", group.ActivityHandler.GetUserActivities)
		}

		userGroup := apiGroup.Group("/user")
		{
			userGroup.GET("/:user_id/online", group.UserHandler.GetOnlineStatus)
			userGroup.POST("/logout", identity, group.UserHandler.Logout)
		}
	}

	return r
}
