package handler

import (
	"Melodia/internal/api/dto"
	"Melodia/internal/pkg/response"
	"Melodia/internal/pkg/util"
	"Melodia/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchSvc service.SearchService
}

func NewSearchHandler(searchSvc service.SearchService) *SearchHandler {
	return &SearchHandler{
		searchSvc: searchSvc,
	}
}

// Search 按关键词搜索歌曲，命中非空结果时异步记一次搜索历史
func (s *SearchHandler) Search(c *gin.Context) {
	songs, err := s.searchSvc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, songs)
}

// RecordClick 上报一次搜索结果点击
func (s *SearchHandler) RecordClick(c *gin.Context) {
	var req dto.SearchClickDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	if err := s.searchSvc.RecordClick(c.Request.Context(), req.Query, req.SongID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
