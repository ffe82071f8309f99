package service

import (
	"DevSpace/internal/api/dto"
	"DevSpace/internal/event"
	"DevSpace/internal/model"
	"DevSpace/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

const timeLayout = "2006-01-02 15:04:05"

// CommentCountProvider 评论计数的窄依赖，由评论服务实现
type CommentCountProvider interface {
	GetCommentCount(ctx context.Context, articleID uint64) (int64, error)
}

type ArticleService interface {
	CreateArticle(ctx context.Context, authorID uint64, req *dto.ArticleBaseDTO) (uint64, error)
	UpdateArticle(ctx context.Context, articleID, userID uint64, req *dto.ArticleBaseDTO) error
	DeleteArticle(ctx context.Context, articleID, userID uint64) error
	GetArticleByID(ctx context.Context, articleID, viewerID uint64) (*dto.ArticleDTO, error)
	ListArticlesByAuthor(ctx context.Context, authorID uint64, page, size int) ([]*dto.ArticleSummaryDTO, error)

	LikeArticle(ctx context.Context, articleID, userID uint64) error
	UnlikeArticle(ctx context.Context, articleID, userID uint64) error
	CollectArticle(ctx context.Context, articleID, userID uint64) error
	UncollectArticle(ctx context.Context, articleID, userID uint64) error

	IsArticleLikedByUser(ctx context.Context, articleID, userID uint64) (bool, error)
	GetArticleLikeCount(ctx context.Context, articleID uint64) (int64, error)
	IsArticleCollectedByUser(ctx context.Context, articleID, userID uint64) (bool, error)
	GetArticleCollectCount(ctx context.Context, articleID uint64) (int64, error)
}

type ArticleServiceImpl struct {
	articleRepo     repository.ArticleRepo
	interactionRepo repository.InteractionRepo
	viewCountSvc    ViewCountService
	commentCounts   CommentCountProvider
	bus             *event.Bus
}

func NewArticleService(
	articleRepo repository.ArticleRepo,
	interactionRepo repository.InteractionRepo,
	viewCountSvc ViewCountService,
	commentCounts CommentCountProvider,
	bus *event.Bus,
) ArticleService {
	return &ArticleServiceImpl{
		articleRepo:     articleRepo,
		interactionRepo: interactionRepo,
		viewCountSvc:    viewCountSvc,
		commentCounts:   commentCounts,
		bus:             bus,
	}
}

func (s *ArticleServiceImpl) CreateArticle(ctx context.Context, authorID uint64, req *dto.ArticleBaseDTO) (uint64, error) {
	article := &model.Article{}
	if err := copier.Copy(article, req); err != nil {
		return 0, err
	}
	article.AuthorID = authorID
	article.Status = model.ArticleStatusPublished

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return 0, err
	}

	s.bus.Publish(ctx, event.UserActivityEvent{
		UserID:       authorID,
		ActivityType: model.ActivityCreateArticle,
		TargetID:     article.ID,
		ExtraData:    titleExtra(article.Title),
	})
	return article.ID, nil
}

func (s *ArticleServiceImpl) UpdateArticle(ctx context.Context, articleID, userID uint64, req *dto.ArticleBaseDTO) error {
	article, err := s.loadActive(ctx, articleID)
	if err != nil {
		return err
	}
	if article.AuthorID != userID {
		return UnauthorizedError
	}

	if err := copier.Copy(article, req); err != nil {
		return err
	}
	if err := s.articleRepo.Update(ctx, article); err != nil {
		return err
	}

	s.bus.Publish(ctx, event.UserActivityEvent{
		UserID:       userID,
		ActivityType: model.ActivityEditArticle,
		TargetID:     article.ID,
		ExtraData:    titleExtra(article.Title),
	})
	return nil
}

func (s *ArticleServiceImpl) DeleteArticle(ctx context.Context, articleID, userID uint64) error {
	article, err := s.loadActive(ctx, articleID)
	if err != nil {
		return err
	}
	if article.AuthorID != userID {
		return UnauthorizedError
	}
	return s.articleRepo.SoftDelete(ctx, articleID)
}

// GetArticleByID 阅读路径，浏览量加一。登录用户额外记一条浏览流水
func (s *ArticleServiceImpl) GetArticleByID(ctx context.Context, articleID, viewerID uint64) (*dto.ArticleDTO, error) {
	article, err := s.loadActive(ctx, articleID)
	if err != nil {
		return nil, err
	}

	viewCount, err := s.viewCountSvc.Increment(ctx, articleID)
	if err != nil {
		// 计数失败不阻塞阅读
		log.WarnContext(ctx, "increment view count failed", "articleId", articleID, "err", err)
	}

	likeCount, err := s.interactionRepo.GetLikeCount(ctx, articleID)
	if err != nil {
		return nil, err
	}
	collectCount, err := s.interactionRepo.GetCollectCount(ctx, articleID)
	if err != nil {
		return nil, err
	}
	commentCount, err := s.commentCounts.GetCommentCount(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if viewerID != 0 {
		s.bus.Publish(ctx, event.UserActivityEvent{
			UserID:       viewerID,
			ActivityType: model.ActivityViewArticle,
			TargetID:     articleID,
			ExtraData:    titleExtra(article.Title),
		})
	}

	result := &dto.ArticleDTO{}
	if err := copier.Copy(result, article); err != nil {
		return nil, err
	}
	result.CreatedAt = article.CreatedAt.Format(timeLayout)
	result.UpdatedAt = article.UpdatedAt.Format(timeLayout)
	result.ViewCount = viewCount
	result.LikeCount = likeCount
	result.CollectCount = collectCount
	result.CommentCount = commentCount
	return result, nil
}

// ListArticlesByAuthor 作者文章列表，已删除的不展示
func (s *ArticleServiceImpl) ListArticlesByAuthor(ctx context.Context, authorID uint64, page, size int) ([]*dto.ArticleSummaryDTO, error) {
	limit, offset := normalizePage(page, size)

	articles, err := s.articleRepo.ListByAuthor(ctx, authorID, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ArticleSummaryDTO, 0, len(articles))
	for _, article := range articles {
		item := &dto.ArticleSummaryDTO{}
		if err := copier.Copy(item, article); err != nil {
			return nil, err
		}
		item.CreatedAt = article.CreatedAt.Format(timeLayout)
		item.UpdatedAt = article.UpdatedAt.Format(timeLayout)
		result = append(result, item)
	}
	return result, nil
}

func (s *ArticleServiceImpl) LikeArticle(ctx context.Context, articleID, userID uint64) error {
	return s.publishInteraction(ctx, articleID, func() event.Event {
		return event.ArticleLikeEvent{ArticleID: articleID, UserID: userID, IsAdd: true}
	})
}

func (s *ArticleServiceImpl) UnlikeArticle(ctx context.Context, articleID, userID uint64) error {
	return s.publishInteraction(ctx, articleID, func() event.Event {
		return event.ArticleLikeEvent{ArticleID: articleID, UserID: userID, IsAdd: false}
	})
}

func (s *ArticleServiceImpl) CollectArticle(ctx context.Context, articleID, userID uint64) error {
	return s.publishInteraction(ctx, articleID, func() event.Event {
		return event.ArticleCollectEvent{ArticleID: articleID, UserID: userID, IsAdd: true}
	})
}

func (s *ArticleServiceImpl) UncollectArticle(ctx context.Context, articleID, userID uint64) error {
	return s.publishInteraction(ctx, articleID, func() event.Event {
		return event.ArticleCollectEvent{ArticleID: articleID, UserID: userID, IsAdd: false}
	})
}

func (s *ArticleServiceImpl) IsArticleLikedByUser(ctx context.Context, articleID, userID uint64) (bool, error) {
	return s.interactionRepo.CheckLikeExists(ctx, articleID, userID)
}

func (s *ArticleServiceImpl) GetArticleLikeCount(ctx context.Context, articleID uint64) (int64, error) {
	return s.interactionRepo.GetLikeCount(ctx, articleID)
}

func (s *ArticleServiceImpl) IsArticleCollectedByUser(ctx context.Context, articleID, userID uint64) (bool, error) {
	return s.interactionRepo.CheckCollectExists(ctx, articleID, userID)
}

func (s *ArticleServiceImpl) GetArticleCollectCount(ctx context.Context, articleID uint64) (int64, error) {
	return s.interactionRepo.GetCollectCount(ctx, articleID)
}

// publishInteraction 同步路径只做存在性校验，落库由消费者完成
func (s *ArticleServiceImpl) publishInteraction(ctx context.Context, articleID uint64, build func() event.Event) error {
	if _, err := s.loadActive(ctx, articleID); err != nil {
		return err
	}
	s.bus.Publish(ctx, build())
	return nil
}

func (s *ArticleServiceImpl) loadActive(ctx context.Context, articleID uint64) (*model.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}
	if article.IsDeleted() {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

func titleExtra(title string) string {
	data, err := json.Marshal(map[string]string{"title": title})
	if err != nil {
		return ""
	}
	return string(data)
}
