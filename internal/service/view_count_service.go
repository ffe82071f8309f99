package service

import (
	"DevSpace/internal/model"
	"DevSpace/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"gorm.io/gorm"
)

// ViewCounterStore 浏览量计数缓存
type ViewCounterStore interface {
	Incr(ctx context.Context, articleID uint64) (int64, error)
	Get(ctx context.Context, articleID uint64) (int64, bool, error)
	Seed(ctx context.Context, articleID uint64, count int64) error
	All(ctx context.Context) (map[uint64]int64, error)
}

type ViewCountService interface {
	Increment(ctx context.Context, articleID uint64) (int64, error)
	GetViewCount(ctx context.Context, articleID uint64) (int64, error)
	SyncToDatabase(ctx context.Context) error
}

type ViewCountServiceImpl struct {
	counter       ViewCounterStore
	viewCountRepo repository.ViewCountRepo
}

func NewViewCountService(counter ViewCounterStore, viewCountRepo repository.ViewCountRepo) ViewCountService {
	return &ViewCountServiceImpl{
		counter:       counter,
		viewCountRepo: viewCountRepo,
	}
}

// Increment 浏览量加一。缓存冷启动时先用落库值回填，
// 避免从零累加丢掉历史计数
func (s *ViewCountServiceImpl) Increment(ctx context.Context, articleID uint64) (int64, error) {
	_, ok, err := s.counter.Get(ctx, articleID)
	if err != nil {
		return 0, err
	}
	if !ok {
		if err := s.seedFromDB(ctx, articleID); err != nil {
			return 0, err
		}
	}
	return s.counter.Incr(ctx, articleID)
}

// GetViewCount 优先读缓存，缺失时回源落库值并回填
func (s *ViewCountServiceImpl) GetViewCount(ctx context.Context, articleID uint64) (int64, error) {
	count, ok, err := s.counter.Get(ctx, articleID)
	if err != nil {
		return 0, err
	}
	if ok {
		return count, nil
	}

	var dbCount int64
	vc, err := s.viewCountRepo.GetByArticleID(ctx, articleID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// 没有落库行也回填零值，后续读不再回源
	case err != nil:
		return 0, err
	default:
		dbCount = vc.ViewCount
	}

	if err := s.counter.Seed(ctx, articleID, dbCount); err != nil {
		log.WarnContext(ctx, "seed view counter failed", "articleId", articleID, "err", err)
	}
	return dbCount, nil
}

// SyncToDatabase 把缓存中的计数回写到落库行。
// 单篇文章失败只记录日志，不影响其余文章
func (s *ViewCountServiceImpl) SyncToDatabase(ctx context.Context) error {
	counts, err := s.counter.All(ctx)
	if err != nil {
		return err
	}

	var updated, inserted int
	for articleID, count := range counts {
		vc, err := s.viewCountRepo.GetByArticleID(ctx, articleID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := &model.ArticleViewCount{ArticleID: articleID, ViewCount: count}
			if err := s.viewCountRepo.Create(ctx, row); err != nil {
				log.ErrorContext(ctx, "insert view count failed", "articleId", articleID, "err", err)
				continue
			}
			inserted++
		case err != nil:
			log.ErrorContext(ctx, "load view count failed", "articleId", articleID, "err", err)
			continue
		case vc.ViewCount != count:
			if err := s.viewCountRepo.UpdateCount(ctx, articleID, count); err != nil {
				log.ErrorContext(ctx, "update view count failed", "articleId", articleID, "err", err)
				continue
			}
			updated++
		}
	}

	log.InfoContext(ctx, "view count sync finished", "total", len(counts), "updated", updated, "inserted", inserted)
	return nil
}

func (s *ViewCountServiceImpl) seedFromDB(ctx context.Context, articleID uint64) error {
	vc, err := s.viewCountRepo.GetByArticleID(ctx, articleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 没有历史计数，从零累加即可
		return nil
	}
	if err != nil {
		return err
	}
	return s.counter.Seed(ctx, articleID, vc.ViewCount)
}
