package service

import (
	"DevSpace/internal/model"
	"DevSpace/internal/repository"
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"
)

// 内存版仓储实现，行为对齐 gorm 实现的语义

type fakeArticleRepo struct {
	articles map[uint64]*model.Article
	nextID   uint64
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[uint64]*model.Article), nextID: 1}
}

func (f *fakeArticleRepo) Create(_ context.Context, article *model.Article) error {
	article.ID = f.nextID
	f.nextID++
	article.CreatedAt = time.Now()
	article.UpdatedAt = article.CreatedAt
	f.articles[article.ID] = article
	return nil
}

func (f *fakeArticleRepo) Update(_ context.Context, article *model.Article) error {
	if _, ok := f.articles[article.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	article.UpdatedAt = time.Now()
	f.articles[article.ID] = article
	return nil
}

func (f *fakeArticleRepo) SoftDelete(_ context.Context, articleID uint64) error {
	if a, ok := f.articles[articleID]; ok {
		a.Status = model.ArticleStatusDeleted
	}
	return nil
}

func (f *fakeArticleRepo) GetByID(_ context.Context, articleID uint64) (*model.Article, error) {
	a, ok := f.articles[articleID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (f *fakeArticleRepo) ExistsActive(_ context.Context, articleID uint64) (bool, error) {
	a, ok := f.articles[articleID]
	return ok && !a.IsDeleted(), nil
}

func (f *fakeArticleRepo) ListPublished(_ context.Context) ([]*model.Article, error) {
	var result []*model.Article
	for _, a := range f.articles {
		if a.Status == model.ArticleStatusPublished {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeArticleRepo) ListByAuthor(_ context.Context, authorID uint64, limit, offset int) ([]*model.Article, error) {
	var result []*model.Article
	for _, a := range f.articles {
		if a.AuthorID == authorID && !a.IsDeleted() {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return pageSlice(result, limit, offset), nil
}

type interactionRow struct {
	articleID uint64
	userID    uint64
	createdAt time.Time
}

type fakeInteractionRepo struct {
	likes    []interactionRow
	collects []interactionRow
}

func (f *fakeInteractionRepo) CreateLike(_ context.Context, like *model.ArticleLike) error {
	f.likes = append(f.likes, interactionRow{like.ArticleID, like.UserID, time.Now()})
	return nil
}

func (f *fakeInteractionRepo) DeleteLike(_ context.Context, articleID, userID uint64) error {
	f.likes = removeRow(f.likes, articleID, userID)
	return nil
}

func (f *fakeInteractionRepo) CheckLikeExists(_ context.Context, articleID, userID uint64) (bool, error) {
	return hasRow(f.likes, articleID, userID), nil
}

func (f *fakeInteractionRepo) GetLikeCount(_ context.Context, articleID uint64) (int64, error) {
	return countRows(f.likes, articleID), nil
}

func (f *fakeInteractionRepo) CountLikesInRange(_ context.Context, articleID uint64, start, end time.Time) (int64, error) {
	return countRowsInRange(f.likes, articleID, start, end), nil
}

func (f *fakeInteractionRepo) CreateCollect(_ context.Context, collect *model.ArticleCollect) error {
	f.collects = append(f.collects, interactionRow{collect.ArticleID, collect.UserID, time.Now()})
	return nil
}

func (f *fakeInteractionRepo) DeleteCollect(_ context.Context, articleID, userID uint64) error {
	f.collects = removeRow(f.collects, articleID, userID)
	return nil
}

func (f *fakeInteractionRepo) CheckCollectExists(_ context.Context, articleID, userID uint64) (bool, error) {
	return hasRow(f.collects, articleID, userID), nil
}

func (f *fakeInteractionRepo) GetCollectCount(_ context.Context, articleID uint64) (int64, error) {
	return countRows(f.collects, articleID), nil
}

func (f *fakeInteractionRepo) CountCollectsInRange(_ context.Context, articleID uint64, start, end time.Time) (int64, error) {
	return countRowsInRange(f.collects, articleID, start, end), nil
}

type fakeCommentRepo struct {
	comments []*model.Comment
	nextID   uint64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeCommentRepo) GetByID(_ context.Context, commentID uint64) (*model.Comment, error) {
	for _, c := range f.comments {
		if c.ID == commentID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCommentRepo) DeleteWithReplies(_ context.Context, commentID uint64) error {
	var kept []*model.Comment
	for _, c := range f.comments {
		if c.ID == commentID || (c.ParentID != nil && *c.ParentID == commentID) {
			continue
		}
		kept = append(kept, c)
	}
	f.comments = kept
	return nil
}

func (f *fakeCommentRepo) FindByArticleID(_ context.Context, articleID uint64) ([]*model.Comment, error) {
	var result []*model.Comment
	for _, c := range f.comments {
		if c.ArticleID == articleID {
			result = append(result, c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (f *fakeCommentRepo) FindRootsByArticleID(_ context.Context, articleID uint64, limit, offset int) ([]*model.Comment, error) {
	var roots []*model.Comment
	for _, c := range f.comments {
		if c.ArticleID == articleID && c.ParentID == nil {
			roots = append(roots, c)
		}
	}
	sort.SliceStable(roots, func(i, j int) bool { return roots[i].CreatedAt.After(roots[j].CreatedAt) })
	return pageSlice(roots, limit, offset), nil
}

func (f *fakeCommentRepo) FindByParentIDs(_ context.Context, parentIDs []uint64) ([]*model.Comment, error) {
	idSet := make(map[uint64]struct{}, len(parentIDs))
	for _, id := range parentIDs {
		idSet[id] = struct{}{}
	}
	var result []*model.Comment
	for _, c := range f.comments {
		if c.ParentID == nil {
			continue
		}
		if _, ok := idSet[*c.ParentID]; ok {
			result = append(result, c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (f *fakeCommentRepo) CountByArticleID(_ context.Context, articleID uint64) (int64, error) {
	var count int64
	for _, c := range f.comments {
		if c.ArticleID == articleID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCommentRepo) CountRootsByArticleID(_ context.Context, articleID uint64) (int64, error) {
	var count int64
	for _, c := range f.comments {
		if c.ArticleID == articleID && c.ParentID == nil {
			count++
		}
	}
	return count, nil
}

func (f *fakeCommentRepo) CountCommentsInRange(_ context.Context, articleID uint64, start, end time.Time) (int64, error) {
	var count int64
	for _, c := range f.comments {
		if c.ArticleID == articleID && !c.CreatedAt.Before(start) && c.CreatedAt.Before(end) {
			count++
		}
	}
	return count, nil
}

type fakeViewCountRepo struct {
	counts map[uint64]int64
	// failOn 指定的文章读写都报错，用于验证单篇失败隔离
	failOn map[uint64]bool
}

func newFakeViewCountRepo() *fakeViewCountRepo {
	return &fakeViewCountRepo{counts: make(map[uint64]int64), failOn: make(map[uint64]bool)}
}

func (f *fakeViewCountRepo) GetByArticleID(_ context.Context, articleID uint64) (*model.ArticleViewCount, error) {
	if f.failOn[articleID] {
		return nil, errors.New("db error")
	}
	count, ok := f.counts[articleID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.ArticleViewCount{ArticleID: articleID, ViewCount: count}, nil
}

func (f *fakeViewCountRepo) Create(_ context.Context, vc *model.ArticleViewCount) error {
	if f.failOn[vc.ArticleID] {
		return errors.New("db error")
	}
	f.counts[vc.ArticleID] = vc.ViewCount
	return nil
}

func (f *fakeViewCountRepo) UpdateCount(_ context.Context, articleID uint64, count int64) error {
	if f.failOn[articleID] {
		return errors.New("db error")
	}
	f.counts[articleID] = count
	return nil
}

type fakeCounterStore struct {
	counts map[uint64]int64
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{counts: make(map[uint64]int64)}
}

func (f *fakeCounterStore) Incr(_ context.Context, articleID uint64) (int64, error) {
	f.counts[articleID]++
	return f.counts[articleID], nil
}

func (f *fakeCounterStore) Get(_ context.Context, articleID uint64) (int64, bool, error) {
	count, ok := f.counts[articleID]
	return count, ok, nil
}

func (f *fakeCounterStore) Seed(_ context.Context, articleID uint64, count int64) error {
	// 对齐 HSetNX 语义，已有值不覆盖
	if _, ok := f.counts[articleID]; !ok {
		f.counts[articleID] = count
	}
	return nil
}

func (f *fakeCounterStore) All(_ context.Context) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(f.counts))
	for k, v := range f.counts {
		result[k] = v
	}
	return result, nil
}

type fakeDailyStatsRepo struct {
	rows map[uint64]map[string]*model.ArticleDailyStats
}

func newFakeDailyStatsRepo() *fakeDailyStatsRepo {
	return &fakeDailyStatsRepo{rows: make(map[uint64]map[string]*model.ArticleDailyStats)}
}

func (f *fakeDailyStatsRepo) Upsert(_ context.Context, stats *model.ArticleDailyStats) error {
	byDate, ok := f.rows[stats.ArticleID]
	if !ok {
		byDate = make(map[string]*model.ArticleDailyStats)
		f.rows[stats.ArticleID] = byDate
	}
	byDate[stats.StatDate.Format(dateLayout)] = stats
	return nil
}

func (f *fakeDailyStatsRepo) FindByArticleAndRange(_ context.Context, articleID uint64, start, end time.Time) ([]*model.ArticleDailyStats, error) {
	var result []*model.ArticleDailyStats
	for _, row := range f.rows[articleID] {
		if !row.StatDate.Before(start) && !row.StatDate.After(end) {
			result = append(result, row)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StatDate.Before(result[j].StatDate) })
	return result, nil
}

func (f *fakeDailyStatsRepo) FindTrendingByViews(_ context.Context, start, end time.Time, limit int) ([]*repository.TrendingRow, error) {
	totals := make(map[uint64]int64)
	for articleID, byDate := range f.rows {
		for _, row := range byDate {
			if !row.StatDate.Before(start) && !row.StatDate.After(end) {
				totals[articleID] += int64(row.ViewCount)
			}
		}
	}

	var result []*repository.TrendingRow
	for articleID, views := range totals {
		result = append(result, &repository.TrendingRow{ArticleID: articleID, TotalViews: views})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalViews != result[j].TotalViews {
			return result[i].TotalViews > result[j].TotalViews
		}
		return result[i].ArticleID < result[j].ArticleID
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

type fakeActivityRepo struct {
	activities []*model.UserActivity
}

func (f *fakeActivityRepo) Create(_ context.Context, activity *model.UserActivity) error {
	activity.ID = uint64(len(f.activities) + 1)
	activity.CreatedAt = time.Now()
	f.activities = append(f.activities, activity)
	return nil
}

func (f *fakeActivityRepo) FindByUser(_ context.Context, userID uint64, limit, offset int) ([]*model.UserActivity, error) {
	var result []*model.UserActivity
	for _, a := range f.activities {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return pageSlice(result, limit, offset), nil
}

func (f *fakeActivityRepo) FindByUserAndType(_ context.Context, userID uint64, activityType string, limit, offset int) ([]*model.UserActivity, error) {
	var result []*model.UserActivity
	for _, a := range f.activities {
		if a.UserID == userID && a.ActivityType == activityType {
			result = append(result, a)
		}
	}
	return pageSlice(result, limit, offset), nil
}

func (f *fakeActivityRepo) FindByTarget(_ context.Context, targetID uint64, limit, offset int) ([]*model.UserActivity, error) {
	var result []*model.UserActivity
	for _, a := range f.activities {
		if a.TargetID == targetID {
			result = append(result, a)
		}
	}
	return pageSlice(result, limit, offset), nil
}

func pageSlice[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func hasRow(rows []interactionRow, articleID, userID uint64) bool {
	for _, r := range rows {
		if r.articleID == articleID && r.userID == userID {
			return true
		}
	}
	return false
}

func removeRow(rows []interactionRow, articleID, userID uint64) []interactionRow {
	var kept []interactionRow
	for _, r := range rows {
		if r.articleID == articleID && r.userID == userID {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

func countRows(rows []interactionRow, articleID uint64) int64 {
	var count int64
	for _, r := range rows {
		if r.articleID == articleID {
			count++
		}
	}
	return count
}

func countRowsInRange(rows []interactionRow, articleID uint64, start, end time.Time) int64 {
	var count int64
	for _, r := range rows {
		if r.articleID == articleID && !r.createdAt.Before(start) && r.createdAt.Before(end) {
			count++
		}
	}
	return count
}
