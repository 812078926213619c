package service

import (
	"Melodia/internal/api/dto"
	"Melodia/internal/model"
	"Melodia/internal/pkg/consts"
	"Melodia/internal/repository"
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type TagService interface {
	CreateTag(ctx context.Context, req *dto.TagCreateDTO) (*dto.TagDTO, error)
	ListTags(ctx context.Context) ([]*dto.TagDTO, error)
	GetTagBySlug(ctx context.Context, slug string) (*dto.TagDTO, error)
}

type tagServiceImpl struct {
	tagRepo repository.TagRepo
}

func NewTagService(tagRepo repository.TagRepo) TagService {
	return &tagServiceImpl{tagRepo: tagRepo}
}

func (s *tagServiceImpl) CreateTag(ctx context.Context, req *dto.TagCreateDTO) (*dto.TagDTO, error) {
	if _, ok := consts.TagTypes[req.Type]; !ok {
		return nil, ErrTagTypeInvalid
	}
	if req.ParentID != nil {
		count, err := s.tagRepo.CountTagsByIds(ctx, []uint64{*req.ParentID})
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrTagNotFound
		}
	}

	tag := &model.Tag{
		Name:     req.Name,
		Slug:     req.Slug,
		Type:     req.Type,
		ParentID: req.ParentID,
	}
	if err := s.tagRepo.CreateTag(ctx, tag); err != nil {
		// slug 撞唯一索引
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil, ErrTagSlugExist
		}
		return nil, err
	}
	return toTagDTO(tag), nil
}

func (s *tagServiceImpl) ListTags(ctx context.Context) ([]*dto.TagDTO, error) {
	tags, err := s.tagRepo.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.TagDTO, 0, len(tags))
	for _, tag := range tags {
		result = append(result, toTagDTO(tag))
	}
	return result, nil
}

func (s *tagServiceImpl) GetTagBySlug(ctx context.Context, slug string) (*dto.TagDTO, error) {
	tag, err := s.tagRepo.GetTagBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return toTagDTO(tag), nil
}
