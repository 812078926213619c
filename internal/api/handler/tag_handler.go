package handler

import (
	"Melodia/internal/api/dto"
	"Melodia/internal/pkg/response"
	"Melodia/internal/pkg/util"
	"Melodia/internal/service"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagSvc service.TagService
}

func NewTagHandler(tagSvc service.TagService) *TagHandler {
	return &TagHandler{
		tagSvc: tagSvc,
	}
}

// CreateTag 新增标签
func (s *TagHandler) CreateTag(c *gin.Context) {
	var req dto.TagCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	tag, err := s.tagSvc.CreateTag(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tag)
}

// ListTags 全部标签
func (s *TagHandler) ListTags(c *gin.Context) {
	tags, err := s.tagSvc.ListTags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tags)
}

// GetTagBySlug 按 slug 查标签
func (s *TagHandler) GetTagBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	tag, err := s.tagSvc.GetTagBySlug(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tag)
}
