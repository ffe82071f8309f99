package handler

import (
	"DevSpace/internal/api/dto"
	"DevSpace/internal/model"
	"DevSpace/internal/pkg/response"
	"DevSpace/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

const timeLayout = "2006-01-02 15:04:05"

type ActivityHandler struct {
	activitySvc service.ActivityService
}

func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

// GetUserActivities 用户活动流水，可按类型过滤
func (s *ActivityHandler) GetUserActivities(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var activities []*model.UserActivity
	if activityType := c.Query("type"); activityType != "" {
		activities, err = s.activitySvc.GetUserActivitiesByType(c.Request.Context(), userID, activityType, page.Page, page.Size)
	} else {
		activities, err = s.activitySvc.GetUserActivities(c.Request.Context(), userID, page.Page, page.Size)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toActivityDTOs(activities))
}

// GetArticleActivities 单篇文章上的活动流水
func (s *ActivityHandler) GetArticleActivities(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	activities, err := s.activitySvc.GetArticleActivities(c.Request.Context(), articleID, page.Page, page.Size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toActivityDTOs(activities))
}

func toActivityDTOs(activities []*model.UserActivity) []*dto.ActivityDTO {
	result := make([]*dto.ActivityDTO, 0, len(activities))
	for _, a := range activities {
		result = append(result, &dto.ActivityDTO{
			ID:           a.ID,
			UserID:       a.UserID,
			ActivityType: a.ActivityType,
			TargetID:     a.TargetID,
			ExtraData:    a.ExtraData,
			CreatedAt:    a.CreatedAt.Format(timeLayout),
		})
	}
	return result
}
