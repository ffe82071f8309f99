package cron

import (
	"DevSpace/internal/api/config"
	"DevSpace/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine           *cron.Cron
	scheduler        config.SchedulerConfig
	viewCountSyncJob *job.ViewCountSyncJob
	dailyStatsJob    *job.DailyStatsJob
}

func NewCronManager(scheduler config.SchedulerConfig, viewCountSyncJob *job.ViewCountSyncJob, dailyStatsJob *job.DailyStatsJob) *Manager {
	return &Manager{
		engine:           cron.New(cron.WithSeconds()),
		scheduler:        scheduler,
		viewCountSyncJob: viewCountSyncJob,
		dailyStatsJob:    dailyStatsJob,
	}
}

// RegisterJobs 注册定时任务。浏览量回写挂两个节奏，
// 增量频繁跑，全量每天兜底一次
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.scheduler.ViewSyncSpec, s.viewCountSyncJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob(s.scheduler.ViewFullSyncSpec, s.viewCountSyncJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob(s.scheduler.StatsSyncSpec, s.dailyStatsJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
