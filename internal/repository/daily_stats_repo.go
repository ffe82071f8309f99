package repository

import (
	"DevSpace/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TrendingRow 趋势榜单的聚合结果
type TrendingRow struct {
	ArticleID  uint64 `gorm:"column:article_id"`
	TotalViews int64  `gorm:"column:total_views"`
}

type DailyStatsRepo interface {
	Upsert(ctx context.Context, stats *model.ArticleDailyStats) error
	FindByArticleAndRange(ctx context.Context, articleID uint64, start, end time.Time) ([]*model.ArticleDailyStats, error)
	FindTrendingByViews(ctx context.Context, start, end time.Time, limit int) ([]*TrendingRow, error)
}

type DailyStatsRepoImpl struct {
	db *gorm.DB
}

func NewDailyStatsRepo(db *gorm.DB) DailyStatsRepo {
	return &DailyStatsRepoImpl{db}
}

// Upsert 同一文章同一天只保留一行，重复写入覆盖计数
func (s *DailyStatsRepoImpl) Upsert(ctx context.Context, stats *model.ArticleDailyStats) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "article_id"}, {Name: "stat_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"view_count",
			"like_count",
			"collect_count",
			"comment_count",
		}),
	}).Create(stats).Error
}

// FindByArticleAndRange 取 [start, end] 区间内的快照，按日期升序
func (s *DailyStatsRepoImpl) FindByArticleAndRange(ctx context.Context, articleID uint64, start, end time.Time) ([]*model.ArticleDailyStats, error) {
	var rows []*model.ArticleDailyStats
	err := s.db.WithContext(ctx).
		Where("article_id = ? AND stat_date >= ? AND stat_date <= ?", articleID, start, end).
		Order("stat_date ASC").
		Find(&rows).Error
	return rows, err
}

// FindTrendingByViews 窗口内浏览量合计前 N，并列时文章 ID 小者在前
func (s *DailyStatsRepoImpl) FindTrendingByViews(ctx context.Context, start, end time.Time, limit int) ([]*TrendingRow, error) {
	var rows []*TrendingRow
	err := s.db.WithContext(ctx).Model(&model.ArticleDailyStats{}).
		Select("article_id, SUM(view_count) AS total_views").
		Where("stat_date >= ? AND stat_date <= ?", start, end).
		Group("article_id").
		Order("total_views DESC, article_id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
