package service

import (
	"DevSpace/internal/pkg/consts"
)

// normalizePage 归一化分页参数，返回 limit 和 offset
func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = consts.DefaultPageSize
	}
	if size > consts.MaxPageSize {
		size = consts.MaxPageSize
	}
	return size, (page - 1) * size
}
