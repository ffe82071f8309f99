package job

import (
	"DevSpace/internal/pkg/logger"
	"DevSpace/internal/service"
	log "log/slog"

	"github.com/google/uuid"
)

// ViewCountSyncJob 把缓存中的浏览量回写到数据库。
// 同一个任务注册在增量和每日全量两个节奏上
type ViewCountSyncJob struct {
	viewCountSvc service.ViewCountService
}

func NewViewCountSyncJob(viewCountSvc service.ViewCountService) *ViewCountSyncJob {
	return &ViewCountSyncJob{viewCountSvc: viewCountSvc}
}

func (s *ViewCountSyncJob) Run() {
	ctx := logger.NewTraceContext("job-view-sync-" + uuid.NewString())

	if err := s.viewCountSvc.SyncToDatabase(ctx); err != nil {
		log.ErrorContext(ctx, "view count sync error", "err", err)
	}
}
