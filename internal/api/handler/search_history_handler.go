package handler

import (
	"Melodia/internal/api/dto"
	"Melodia/internal/pkg/response"
	"Melodia/internal/pkg/util"
	"Melodia/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SearchHistoryHandler struct {
	historySvc service.SearchHistoryService
}

func NewSearchHistoryHandler(historySvc service.SearchHistoryService) *SearchHistoryHandler {
	return &SearchHistoryHandler{
		historySvc: historySvc,
	}
}

// GetHistory 最近搜索与热门搜索两份榜单
func (s *SearchHistoryHandler) GetHistory(c *gin.Context) {
	history, err := s.historySvc.GetHistory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}

// RecordOccurrence 显式记录一次搜索（前端在未走搜索接口时使用）
func (s *SearchHistoryHandler) RecordOccurrence(c *gin.Context) {
	var req dto.SearchOccurrenceDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	if err := s.historySvc.RecordOccurrence(c.Request.Context(), req.Query); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteEntry 删除一条搜索词及其点击明细
func (s *SearchHistoryHandler) DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.historySvc.DeleteEntry(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
