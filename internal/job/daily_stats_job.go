package job

import (
	"DevSpace/internal/pkg/logger"
	"DevSpace/internal/service"
	log "log/slog"

	"github.com/google/uuid"
)

// DailyStatsJob 每日统计汇总
type DailyStatsJob struct {
	statsSvc service.StatsService
}

func NewDailyStatsJob(statsSvc service.StatsService) *DailyStatsJob {
	return &DailyStatsJob{statsSvc: statsSvc}
}

func (s *DailyStatsJob) Run() {
	ctx := logger.NewTraceContext("job-daily-stats-" + uuid.NewString())

	if err := s.statsSvc.SyncTodayStats(ctx); err != nil {
		log.ErrorContext(ctx, "daily stats sync error", "err", err)
	}
}
