package handler

import (
	"DevSpace/internal/pkg/response"
	"DevSpace/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	onlineSvc service.OnlineUserService
}

func NewUserHandler(onlineSvc service.OnlineUserService) *UserHandler {
	return &UserHandler{onlineSvc: onlineSvc}
}

// GetOnlineStatus 查询用户是否在线
func (s *UserHandler) GetOnlineStatus(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	online, err := s.onlineSvc.IsOnline(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"online": online})
}

// Logout 登出，清除在线记录
func (s *UserHandler) Logout(c *gin.Context) {
	userID := c.GetUint64("user_id")

	if err := s.onlineSvc.Logout(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
