package wire

import (
	"Melodia/internal/api"
	"Melodia/internal/api/config"
	"Melodia/internal/api/handler"
	"Melodia/internal/job"
	"Melodia/internal/pkg/cron"
	"Melodia/internal/pkg/kafka"
	"Melodia/internal/repository"
	"Melodia/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	songRepo := repository.NewSongRepository(db)
	actionRepo := repository.NewSongActionRepo(db)
	tagRepo := repository.NewTagRepository(db)
	queryRepo := repository.NewSearchQueryRepository(db)
	clickRepo := repository.NewSearchClickRepository(db)
	metricRepo := repository.NewSongMetricRepository(db)

	songService := service.NewSongService(songRepo, tagRepo)
	actionService := service.NewSongActionService(actionRepo, songRepo, clickRepo)
	tagService := service.NewTagService(tagRepo)
	historyService := service.NewSearchHistoryService(queryRepo)
	searchService := service.NewSearchService(songRepo, queryRepo, clickRepo, historyService)
	rankingService := service.NewRankingService(songRepo, clickRepo)
	metricService := service.NewSongMetricService(metricRepo, songRepo, clickRepo)

	handlers := &api.HandlersGroup{
		SongHandler:          handler.NewSongHandler(songService, rankingService),
		SongActionHandler:    handler.NewSongActionHandler(actionService),
		SearchHandler:        handler.NewSearchHandler(searchService),
		SearchHistoryHandler: handler.NewSearchHistoryHandler(historyService),
		TagHandler:           handler.NewTagHandler(tagService),
		SongMetricHandler:    handler.NewSongMetricHandler(metricService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewSongMetricsJob(metricService))

	kafkaMgr, err := kafka.NewConsumerManager(cfg)
	if err != nil {
		return nil, err
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
	}, nil
}
