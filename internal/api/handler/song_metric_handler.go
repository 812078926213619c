package handler

import (
	"Melodia/internal/pkg/response"
	"Melodia/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SongMetricHandler struct {
	metricSvc service.SongMetricService
}

func NewSongMetricHandler(metricSvc service.SongMetricService) *SongMetricHandler {
	return &SongMetricHandler{
		metricSvc: metricSvc,
	}
}

// GetSongMetricsBy7Days 近 7 天趋势
func (s *SongMetricHandler) GetSongMetricsBy7Days(c *gin.Context) {
	songID, err := strconv.ParseUint(c.Param("song_id"), 10, 64)
	if err != nil || songID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	trend, err := s.metricSvc.GetSongMetricsBy7Days(c.Request.Context(), songID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trend)
}

// GetSongMetricsBy30Days 近 30 天趋势
func (s *SongMetricHandler) GetSongMetricsBy30Days(c *gin.Context) {
	songID, err := strconv.ParseUint(c.Param("song_id"), 10, 64)
	if err != nil || songID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	trend, err := s.metricSvc.GetSongMetricsBy30Days(c.Request.Context(), songID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trend)
}
