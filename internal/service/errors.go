package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("参数错误")
	ErrArticleNotFound  = errors.New("文章不存在")
	ErrArticleDeleted   = errors.New("文章已删除")
	ErrCommentNotFound  = errors.New("评论不存在")
	ErrCommentEmpty     = errors.New("评论内容不能为空")
	ErrNotCommentOwner  = errors.New("只能删除自己的评论")
	ErrActivityNotFound = errors.New("活动记录不存在")
	UnauthorizedError   = errors.New("权限不足")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrArticleNotFound:  NotFound,
	ErrArticleDeleted:   NotFound,
	ErrCommentNotFound:  NotFound,
	ErrCommentEmpty:     BadRequest,
	ErrNotCommentOwner:  Unauthorized,
	ErrActivityNotFound: NotFound,
	UnauthorizedError:   Unauthorized,
	UnExpectedError:     InternalServerError,
}
