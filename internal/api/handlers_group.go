package api

import "Melodia/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	SongHandler          *handler.SongHandler
	SongActionHandler    *handler.SongActionHandler
	SearchHandler        *handler.SearchHandler
	SearchHistoryHandler *handler.SearchHistoryHandler
	TagHandler           *handler.TagHandler
	SongMetricHandler    *handler.SongMetricHandler
}
