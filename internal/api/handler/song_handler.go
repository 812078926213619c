package handler

import (
	"Melodia/internal/api/dto"
	"Melodia/internal/pkg/consts"
	"Melodia/internal/pkg/response"
	"Melodia/internal/pkg/util"
	"Melodia/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SongHandler struct {
	songSvc    service.SongService
	rankingSvc service.RankingService
}

func NewSongHandler(songSvc service.SongService, rankingSvc service.RankingService) *SongHandler {
	return &SongHandler{
		songSvc:    songSvc,
		rankingSvc: rankingSvc,
	}
}

// CreateSong 新增歌曲
func (s *SongHandler) CreateSong(c *gin.Context) {
	var req dto.SongCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	song, err := s.songSvc.CreateSong(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, song)
}

// GetSong 歌曲详情
func (s *SongHandler) GetSong(c *gin.Context) {
	songID, err := strconv.ParseUint(c.Param("song_id"), 10, 64)
	if err != nil || songID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	song, err := s.songSvc.GetSongDetail(c.Request.Context(), songID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, song)
}

// ListSongs 歌曲列表，按上架时间倒序
func (s *SongHandler) ListSongs(c *gin.Context) {
	limit := parseLimit(c, consts.DefaultRankLimit)

	songs, err := s.songSvc.ListSongs(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, songs)
}

// RankedSongs 命名榜单
func (s *SongHandler) RankedSongs(c *gin.Context) {
	kind := c.Query("kind")
	limit := parseLimit(c, consts.DefaultRankLimit)

	songs, err := s.rankingSvc.RankedSongs(c.Request.Context(), kind, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, songs)
}

// PopularSongs 双信号热门面板
func (s *SongHandler) PopularSongs(c *gin.Context) {
	songs, err := s.rankingSvc.PopularByClicks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, songs)
}

func parseLimit(c *gin.Context, fallback int) int {
	raw := c.Query("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}
