package handler

import (
	"Melodia/internal/api/dto"
	"Melodia/internal/pkg/response"
	"Melodia/internal/service"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// viewReportTimeout 旁路浏览上报的时间上限
const viewReportTimeout = 3 * time.Second

type SongActionHandler struct {
	actionSvc service.SongActionService
}

func NewSongActionHandler(actionSvc service.SongActionService) *SongActionHandler {
	return &SongActionHandler{
		actionSvc: actionSvc,
	}
}

// ToggleLike 点赞/取消点赞歌曲，返回切换后的最新状态
func (s *SongActionHandler) ToggleLike(c *gin.Context) {
	songID, err := strconv.ParseUint(c.Param("song_id"), 10, 64)
	if err != nil || songID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	liked, likeCount, err := s.actionSvc.ToggleLike(c.Request.Context(), userID, songID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.SongLikeDTO{Liked: liked, LikeCount: likeCount})
}

// TrackView 上报一次播放
func (s *SongActionHandler) TrackView(c *gin.Context) {
	songID, err := strconv.ParseUint(c.Param("song_id"), 10, 64)
	if err != nil || songID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.actionSvc.TrackView(c.Request.Context(), songID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetSongStats 获取歌曲详情页的全量互动状态并上报浏览
func (s *SongActionHandler) GetSongStats(c *gin.Context) {
	userID := c.GetUint64("user_id")
	songID, err := strconv.ParseUint(c.Param("song_id"), 10, 64)
	if err != nil || songID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	ctx := c.Request.Context()
	stats := &dto.SongStatsDTO{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats.LikeCount, _ = s.actionSvc.GetSongLikeCount(gCtx, songID)
		return nil
	})
	g.Go(func() error {
		stats.ViewCount, _ = s.actionSvc.GetSongViewCount(gCtx, songID)
		return nil
	})
	g.Go(func() error {
		stats.SearchClick, _ = s.actionSvc.GetSongClickCount(gCtx, songID)
		return nil
	})
	g.Go(func() error {
		if userID > 0 {
			stats.IsLiked, _ = s.actionSvc.IsLiked(gCtx, userID, songID)
		}
		return nil
	})

	_ = g.Wait()

	// 响应返回后请求 ctx 即被取消，上报挂到脱离取消链的副本上
	bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), viewReportTimeout)
	go func() {
		defer cancel()
		if err := s.actionSvc.TrackView(bgCtx, songID); err != nil {
			log.WarnContext(bgCtx, "track song view failed", "songID", songID, "err", err)
		}
	}()

	response.Success(c, stats)
}
