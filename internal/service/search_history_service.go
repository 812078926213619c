package service

import (
	"Melodia/internal/api/dto"
	"Melodia/internal/model"
	"Melodia/internal/pkg/consts"
	"Melodia/internal/pkg/util"
	"Melodia/internal/repository"
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type SearchHistoryService interface {
	// RecordOccurrence 记录一次搜索：同一个词只保留一行，计数单调递增
	RecordOccurrence(ctx context.Context, rawQuery string) error
	// GetHistory 同时返回最近与热门两份榜单
	GetHistory(ctx context.Context) (*dto.SearchHistoryDTO, error)
	// DeleteEntry 服务端删除一条搜索词（区别于前端本地的"隐藏"）
	DeleteEntry(ctx context.Context, id uint64) error
}

type searchHistoryServiceImpl struct {
	queryRepo repository.SearchQueryRepo
}

func NewSearchHistoryService(queryRepo repository.SearchQueryRepo) SearchHistoryService {
	return &searchHistoryServiceImpl{
		queryRepo: queryRepo,
	}
}

func (s *searchHistoryServiceImpl) RecordOccurrence(ctx context.Context, rawQuery string) error {
	normalized := util.NormalizeQuery(rawQuery)
	if normalized == "" {
		return ErrParamInvalid
	}
	return s.queryRepo.UpsertOccurrence(ctx, normalized)
}

func (s *searchHistoryServiceImpl) GetHistory(ctx context.Context) (*dto.SearchHistoryDTO, error) {
	var recent, popular []*model.SearchQuery

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recent, err = s.queryRepo.ListRecent(gCtx, consts.HistoryListLimit)
		return err
	})
	g.Go(func() error {
		var err error
		popular, err = s.queryRepo.ListPopular(gCtx, consts.HistoryListLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.SearchHistoryDTO{
		Recent:  toSearchQueryDTOs(recent),
		Popular: toSearchQueryDTOs(popular),
	}, nil
}

func (s *searchHistoryServiceImpl) DeleteEntry(ctx context.Context, id uint64) error {
	err := s.queryRepo.DeleteWithClicks(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSearchQueryNotFound
	}
	return err
}
