package service

import (
	"DevSpace/internal/api/dto"
	"DevSpace/internal/model"
	"DevSpace/internal/pkg/consts"
	"DevSpace/internal/pkg/util"
	"DevSpace/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type StatsService interface {
	SyncTodayStats(ctx context.Context) error
	GetArticleStats(ctx context.Context, articleID uint64, days int) (*dto.ArticleStatsDTO, error)
	GetTrendingArticles(ctx context.Context, days, limit int) ([]*dto.TrendingArticleDTO, error)
}

type StatsServiceImpl struct {
	articleRepo     repository.ArticleRepo
	interactionRepo repository.InteractionRepo
	commentRepo     repository.CommentRepo
	dailyStatsRepo  repository.DailyStatsRepo
	viewCountSvc    ViewCountService
}

func NewStatsService(
	articleRepo repository.ArticleRepo,
	interactionRepo repository.InteractionRepo,
	commentRepo repository.CommentRepo,
	dailyStatsRepo repository.DailyStatsRepo,
	viewCountSvc ViewCountService,
) StatsService {
	return &StatsServiceImpl{
		articleRepo:     articleRepo,
		interactionRepo: interactionRepo,
		commentRepo:     commentRepo,
		dailyStatsRepo:  dailyStatsRepo,
		viewCountSvc:    viewCountSvc,
	}
}

// SyncTodayStats 为每篇已发布文章落一行当日快照。
// 单篇失败只记录日志，不影响其余文章
func (s *StatsServiceImpl) SyncTodayStats(ctx context.Context) error {
	articles, err := s.articleRepo.ListPublished(ctx)
	if err != nil {
		return err
	}

	todayStart, tomorrowStart := util.DayRange(time.Now())

	var failed int
	for _, article := range articles {
		if err := s.syncArticle(ctx, article.ID, todayStart, tomorrowStart); err != nil {
			log.ErrorContext(ctx, "sync article stats failed", "articleId", article.ID, "err", err)
			failed++
		}
	}

	log.InfoContext(ctx, "daily stats sync finished", "total", len(articles), "failed", failed)
	return nil
}

func (s *StatsServiceImpl) syncArticle(ctx context.Context, articleID uint64, todayStart, tomorrowStart time.Time) error {
	views, err := s.viewCountSvc.GetViewCount(ctx, articleID)
	if err != nil {
		return err
	}
	likes, err := s.interactionRepo.CountLikesInRange(ctx, articleID, todayStart, tomorrowStart)
	if err != nil {
		return err
	}
	collects, err := s.interactionRepo.CountCollectsInRange(ctx, articleID, todayStart, tomorrowStart)
	if err != nil {
		return err
	}
	comments, err := s.commentRepo.CountCommentsInRange(ctx, articleID, todayStart, tomorrowStart)
	if err != nil {
		return err
	}

	return s.dailyStatsRepo.Upsert(ctx, &model.ArticleDailyStats{
		ArticleID:    articleID,
		StatDate:     todayStart,
		ViewCount:    int(views),
		LikeCount:    int(likes),
		CollectCount: int(collects),
		CommentCount: int(comments),
	})
}

// GetArticleStats 取最近 days 天的快照，无快照的日期补零
func (s *StatsServiceImpl) GetArticleStats(ctx context.Context, articleID uint64, days int) (*dto.ArticleStatsDTO, error) {
	if days < 1 {
		days = consts.DefaultStatsDays
	}

	if _, err := s.articleRepo.GetByID(ctx, articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	now := time.Now()
	today := util.DayStart(now)
	start := util.DaysAgo(now, days-1)

	rows, err := s.dailyStatsRepo.FindByArticleAndRange(ctx, articleID, start, today)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*model.ArticleDailyStats, len(rows))
	for _, row := range rows {
		byDate[row.StatDate.Format(dateLayout)] = row
	}

	result := &dto.ArticleStatsDTO{
		ArticleID: articleID,
		Daily:     make([]*dto.DailyStatsDTO, 0, days),
	}
	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d)
		item := &dto.DailyStatsDTO{Date: date.Format(dateLayout)}
		if row, ok := byDate[item.Date]; ok {
			item.ViewCount = row.ViewCount
			item.LikeCount = row.LikeCount
			item.CollectCount = row.CollectCount
			item.CommentCount = row.CommentCount

			result.TotalViews += int64(row.ViewCount)
			result.TotalLikes += int64(row.LikeCount)
			result.TotalCollect += int64(row.CollectCount)
			result.TotalComment += int64(row.CommentCount)
		}
		result.Daily = append(result.Daily, item)
	}

	if err := s.fillWeekOverWeek(ctx, result, articleID, now); err != nil {
		return nil, err
	}

	return result, nil
}

type weekTotals struct {
	views    int64
	likes    int64
	collects int64
}

// fillWeekOverWeek 最近七天与前七天的浏览、点赞、收藏环比
func (s *StatsServiceImpl) fillWeekOverWeek(ctx context.Context, result *dto.ArticleStatsDTO, articleID uint64, now time.Time) error {
	today := util.DayStart(now)
	currentStart := util.DaysAgo(now, 6)
	previousStart := util.DaysAgo(now, 13)
	previousEnd := util.DaysAgo(now, 7)

	current, err := s.sumWeek(ctx, articleID, currentStart, today)
	if err != nil {
		return err
	}
	previous, err := s.sumWeek(ctx, articleID, previousStart, previousEnd)
	if err != nil {
		return err
	}

	result.ViewsWeekOverWeek = wowChange(current.views, previous.views)
	result.LikesWeekOverWeek = wowChange(current.likes, previous.likes)
	result.CollectsWeekOverWeek = wowChange(current.collects, previous.collects)
	return nil
}

func (s *StatsServiceImpl) sumWeek(ctx context.Context, articleID uint64, start, end time.Time) (weekTotals, error) {
	rows, err := s.dailyStatsRepo.FindByArticleAndRange(ctx, articleID, start, end)
	if err != nil {
		return weekTotals{}, err
	}
	var total weekTotals
	for _, row := range rows {
		total.views += int64(row.ViewCount)
		total.likes += int64(row.LikeCount)
		total.collects += int64(row.CollectCount)
	}
	return total, nil
}

// wowChange 环比百分比。基数为零时，有增长记 100，否则记 0
func wowChange(current, previous int64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100.0
		}
		return 0.0
	}
	return (float64(current) - float64(previous)) / float64(previous) * 100
}

// GetTrendingArticles 窗口内浏览量合计前 N，并列时文章 ID 小者在前
func (s *StatsServiceImpl) GetTrendingArticles(ctx context.Context, days, limit int) ([]*dto.TrendingArticleDTO, error) {
	if days < 1 {
		days = consts.DefaultTrendingDays
	}
	if limit < 1 {
		limit = consts.DefaultTrendingSize
	}

	now := time.Now()
	start := util.DaysAgo(now, days-1)
	today := util.DayStart(now)

	rows, err := s.dailyStatsRepo.FindTrendingByViews(ctx, start, today, limit)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TrendingArticleDTO, 0, len(rows))
	for _, row := range rows {
		item := &dto.TrendingArticleDTO{ArticleID: row.ArticleID, TotalViews: row.TotalViews}
		article, err := s.articleRepo.GetByID(ctx, row.ArticleID)
		if err == nil {
			item.Title = article.Title
		}
		result = append(result, item)
	}
	return result, nil
}
