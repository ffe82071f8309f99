package wire

import (
	"DevSpace/internal/api"
	"DevSpace/internal/api/config"
	"DevSpace/internal/api/handler"
	"DevSpace/internal/event"
	"DevSpace/internal/job"
	"DevSpace/internal/mq"
	"DevSpace/internal/pkg/cron"
	pkgredis "DevSpace/internal/pkg/redis"
	"DevSpace/internal/repository"
	"DevSpace/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	Bus          *event.Bus
	Publisher    *mq.SyncPublisher
	KafkaManager *mq.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, rdb *redis.Client, cfg *config.Config) (*ApplicationContainer, error) {
	articleRepo := repository.NewArticleRepo(db)
	interactionRepo := repository.NewInteractionRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	viewCountRepo := repository.NewViewCountRepo(db)
	dailyStatsRepo := repository.NewDailyStatsRepo(db)
	activityRepo := repository.NewActivityRepo(db)

	viewCounter := pkgredis.NewViewCounter(rdb)
	locker := pkgredis.NewLocker(rdb)
	onlineStore := pkgredis.NewOnlineUserStore(rdb)

	bus := event.NewBus()

	publisher, err := mq.NewSyncPublisher(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	event.NewInteractionBridge(publisher).Register(bus)

	activityService := service.NewActivityService(activityRepo)
	event.NewActivityListener(activityService).Register(bus)

	viewCountService := service.NewViewCountService(viewCounter, viewCountRepo)
	commentService := service.NewCommentService(commentRepo, articleRepo, bus)
	articleService := service.NewArticleService(articleRepo, interactionRepo, viewCountService, commentService, bus)
	statsService := service.NewStatsService(articleRepo, interactionRepo, commentRepo, dailyStatsRepo, viewCountService)
	onlineService := service.NewOnlineUserService(onlineStore)

	handlers := &api.HandlersGroup{
		ArticleHandler:       handler.NewArticleHandler(articleService),
		ArticleActionHandler: handler.NewArticleActionHandler(articleService, commentService),
		CommentHandler:       handler.NewCommentHandler(commentService),
		StatsHandler:         handler.NewStatsHandler(statsService),
		ActivityHandler:      handler.NewActivityHandler(activityService),
		UserHandler:          handler.NewUserHandler(onlineService),
	}

	router := api.SetupRouter(handlers, onlineService)

	kafkaMgr, err := mq.NewConsumerManager(cfg, articleRepo, interactionRepo, commentRepo, bus, locker)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		cfg.Scheduler,
		job.NewViewCountSyncJob(viewCountService),
		job.NewDailyStatsJob(statsService),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		Bus:          bus,
		Publisher:    publisher,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
