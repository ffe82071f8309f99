package middleware

import (
	"DevSpace/internal/pkg/response"
	"DevSpace/internal/service"
	"context"
	log "log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
)

// 身份由前置网关校验后通过请求头下发
const userIDHeader = "X-User-ID"

// IdentityMiddleware 必须携带用户身份的接口
func IdentityMiddleware(onlineSvc service.OnlineUserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.GetHeader(userIDHeader), 10, 64)
		if err != nil || userID == 0 {
			response.Fail(c, response.Unauthorized, "缺少用户身份")
			c.Abort()
			return
		}

		injectUserID(c, userID)
		if err := onlineSvc.MarkOnline(c.Request.Context(), userID); err != nil {
			log.WarnContext(c.Request.Context(), "mark user online failed", "userId", userID, "err", err)
		}
		c.Next()
	}
}

// IdentityOptionalMiddleware 可选身份，缺失或非法时 UID 为 0
func IdentityOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.GetHeader(userIDHeader), 10, 64)
		if err != nil {
			userID = 0
		}
		injectUserID(c, userID)
		c.Next()
	}
}

func injectUserID(c *gin.Context, userID uint64) {
	c.Set("user_id", userID)
	if userID != 0 {
		ctx := context.WithValue(c.Request.Context(), "user_id", userID)
		c.Request = c.Request.WithContext(ctx)
	}
}
