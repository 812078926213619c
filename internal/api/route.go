package api

import (
	"Melodia/internal/api/middleware"
	"Melodia/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		songGroup := apiGroup.Group("/songs")
		{
			songGroup.GET("", group.SongHandler.ListSongs)
			songGroup.GET("/ranked", group.SongHandler.RankedSongs)
			songGroup.GET("/popular", group.SongHandler.PopularSongs)
			songGroup.GET("/:song_id", group.SongHandler.GetSong)
			songGroup.POST("/:song_id/view", group.SongActionHandler.TrackView)

			authOptGroup := songGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:song_id/stats", group.SongActionHandler.GetSongStats)
			}

			authGroup := songGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.SongHandler.CreateSong)
				authGroup.POST("/:song_id/like", group.SongActionHandler.ToggleLike)
			}
		}

		searchGroup := apiGroup.Group("/search")
		{
			searchGroup.GET("", group.SearchHandler.Search)
			searchGroup.POST("/click", group.SearchHandler.RecordClick)
			searchGroup.GET("/history", group.SearchHistoryHandler.GetHistory)
			searchGroup.POST("/history", group.SearchHistoryHandler.RecordOccurrence)
			searchGroup.DELETE("/history/:id", group.SearchHistoryHandler.DeleteEntry)
		}

		tagGroup := apiGroup.Group("/tags")
		{
			tagGroup.GET("", group.TagHandler.ListTags)
			tagGroup.GET("/:slug", group.TagHandler.GetTagBySlug)

			authGroup := tagGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.TagHandler.CreateTag)
			}
		}

		metricsGroup := apiGroup.Group("/metrics")
		{
			metricsGroup.GET("/song/7d/:song_id", group.SongMetricHandler.GetSongMetricsBy7Days)
			metricsGroup.GET("/song/30d/:song_id", group.SongMetricHandler.GetSongMetricsBy30Days)
		}
	}

	return r
}
