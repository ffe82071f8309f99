package mq

import (
	"DevSpace/internal/event"
	"DevSpace/internal/model"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
)

type fakeLocker struct {
	mu          sync.Mutex
	denyAcquire bool
	held        map[string]string
	unlocks     int
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]string)}
}

func (f *fakeLocker) TryLock(_ context.Context, articleID, userID uint64, _ time.Duration, _ int) (string, bool, error) {
	if f.denyAcquire {
		return "", false, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := fmt.Sprintf("%d:%d", articleID, userID)
	if _, ok := f.held[key]; ok {
		return "", false, nil
	}
	token := fmt.Sprintf("token-%d", len(f.held))
	f.held[key] = token
	return token, true, nil
}

func (f *fakeLocker) Unlock(_ context.Context, articleID, userID uint64, token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := fmt.Sprintf("%d:%d", articleID, userID)
	if f.held[key] == token {
		delete(f.held, key)
		f.unlocks++
	}
}

type pair struct {
	articleID uint64
	userID    uint64
}

type fakeInteractionRepo struct {
	likes    map[pair]bool
	collects map[pair]bool
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{likes: make(map[pair]bool), collects: make(map[pair]bool)}
}

func (f *fakeInteractionRepo) CreateLike(_ context.Context, like *model.ArticleLike) error {
	f.likes[pair{like.ArticleID, like.UserID}] = true
	return nil
}

func (f *fakeInteractionRepo) DeleteLike(_ context.Context, articleID, userID uint64) error {
	delete(f.likes, pair{articleID, userID})
	return nil
}

func (f *fakeInteractionRepo) CheckLikeExists(_ context.Context, articleID, userID uint64) (bool, error) {
	return f.likes[pair{articleID, userID}], nil
}

func (f *fakeInteractionRepo) GetLikeCount(_ context.Context, articleID uint64) (int64, error) {
	var count int64
	for p := range f.likes {
		if p.articleID == articleID {
			count++
		}
	}
	return count, nil
}

func (f *fakeInteractionRepo) CountLikesInRange(_ context.Context, articleID uint64, _, _ time.Time) (int64, error) {
	return f.GetLikeCount(context.Background(), articleID)
}

func (f *fakeInteractionRepo) CreateCollect(_ context.Context, collect *model.ArticleCollect) error {
	f.collects[pair{collect.ArticleID, collect.UserID}] = true
	return nil
}

func (f *fakeInteractionRepo) DeleteCollect(_ context.Context, articleID, userID uint64) error {
	delete(f.collects, pair{articleID, userID})
	return nil
}

func (f *fakeInteractionRepo) CheckCollectExists(_ context.Context, articleID, userID uint64) (bool, error) {
	return f.collects[pair{articleID, userID}], nil
}

func (f *fakeInteractionRepo) GetCollectCount(_ context.Context, articleID uint64) (int64, error) {
	var count int64
	for p := range f.collects {
		if p.articleID == articleID {
			count++
		}
	}
	return count, nil
}

func (f *fakeInteractionRepo) CountCollectsInRange(_ context.Context, articleID uint64, _, _ time.Time) (int64, error) {
	return f.GetCollectCount(context.Background(), articleID)
}

type fakeArticleRepo struct {
	articles map[uint64]*model.Article
}

func (f *fakeArticleRepo) Create(_ context.Context, _ *model.Article) error {
	return errors.New("not implemented")
}

func (f *fakeArticleRepo) Update(_ context.Context, _ *model.Article) error {
	return errors.New("not implemented")
}

func (f *fakeArticleRepo) SoftDelete(_ context.Context, _ uint64) error {
	return errors.New("not implemented")
}

func (f *fakeArticleRepo) ListPublished(_ context.Context) ([]*model.Article, error) {
	return nil, nil
}
func (f *fakeArticleRepo) ListByAuthor(_ context.Context, _ uint64, _, _ int) ([]*model.Article, error) {
	return nil, nil
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

type fakeCommentRepo struct {
	comments map[uint64]*model.Comment
	nextID   uint64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint64]*model.Comment), nextID: 1}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	comment.CreatedAt = time.Now()
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) GetByID(_ context.Context, commentID uint64) (*model.Comment, error) {
	c, ok := f.comments[commentID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCommentRepo) DeleteWithReplies(_ context.Context, _ uint64) error { return nil }
func (f *fakeCommentRepo) FindByArticleID(_ context.Context, _ uint64) ([]*model.Comment, error) {
	return nil, nil
}
func (f *fakeCommentRepo) FindRootsByArticleID(_ context.Context, _ uint64, _, _ int) ([]*model.Comment, error) {
	return nil, nil
}
func (f *fakeCommentRepo) FindByParentIDs(_ context.Context, _ []uint64) ([]*model.Comment, error) {
	return nil, nil
}
func (f *fakeCommentRepo) CountByArticleID(_ context.Context, _ uint64) (int64, error) {
	return int64(len(f.comments)), nil
}
func (f *fakeCommentRepo) CountRootsByArticleID(_ context.Context, _ uint64) (int64, error) {
	return 0, nil
}
func (f *fakeCommentRepo) CountCommentsInRange(_ context.Context, _ uint64, _, _ time.Time) (int64, error) {
	return 0, nil
}

// captureBus 收集总线上发布的行为事件
type captureBus struct {
	bus *event.Bus

	mu         sync.Mutex
	activities []event.UserActivityEvent
}

func newCaptureBus() *captureBus {
	c := &captureBus{bus: event.NewBus()}
	c.bus.Subscribe(event.NameUserActivity, func(ctx context.Context, e event.Event) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.activities = append(c.activities, e.(event.UserActivityEvent))
	})
	c.bus.Start()
	return c
}

func (c *captureBus) drain() []event.UserActivityEvent {
	c.bus.Close()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activities
}
