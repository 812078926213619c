package service

import (
	"Melodia/internal/api/dto"
	"Melodia/internal/pkg/consts"
	"Melodia/internal/pkg/redis"
	"Melodia/internal/pkg/util"
	"Melodia/internal/repository"
	"context"
	log "log/slog"
	"time"
)

const occurrenceTimeout = 3 * time.Second

type SearchService interface {
	// Search 标题或标签名子串匹配；命中非空结果时顺带记一次搜索历史
	Search(ctx context.Context, rawQuery string) ([]*dto.SongDTO, error)
	// RecordClick 点击归因：把一次搜索词到歌曲的点击落到 (query, song) 计数上
	RecordClick(ctx context.Context, rawQuery string, songID uint64) error
}

type searchServiceImpl struct {
	songRepo   repository.SongRepo
	queryRepo  repository.SearchQueryRepo
	clickRepo  repository.SearchClickRepo
	historySvc SearchHistoryService
}

func NewSearchService(
	songRepo repository.SongRepo,
	queryRepo repository.SearchQueryRepo,
	clickRepo repository.SearchClickRepo,
	historySvc SearchHistoryService,
) SearchService {
	return &searchServiceImpl{
		songRepo:   songRepo,
		queryRepo:  queryRepo,
		clickRepo:  clickRepo,
		historySvc: historySvc,
	}
}

func (s *searchServiceImpl) Search(ctx context.Context, rawQuery string) ([]*dto.SongDTO, error) {
	normalized := util.NormalizeQuery(rawQuery)
	if normalized == "" {
		return nil, ErrParamInvalid
	}

	songs, err := s.songRepo.SearchSongs(ctx, normalized)
	if err != nil {
		return nil, err
	}

	// 历史记录是尽力而为的旁路动作，不阻塞也不影响搜索响应。
	// 请求结束后 ctx 会被取消，这里挂到脱离取消链的副本上。
	if len(songs) > 0 {
		bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), occurrenceTimeout)
		go func() {
			defer cancel()
			if err := s.historySvc.RecordOccurrence(bgCtx, normalized); err != nil {
				log.WarnContext(bgCtx, "record search occurrence failed", "query", normalized, "err", err)
			}
		}()
	}

	return toSongDTOs(songs), nil
}

func (s *searchServiceImpl) RecordClick(ctx context.Context, rawQuery string, songID uint64) error {
	if songID == 0 {
		return ErrParamInvalid
	}
	normalized := util.NormalizeQuery(rawQuery)
	if normalized == "" {
		return ErrParamInvalid
	}

	// 第一步只解析外键：词条已存在时绝不补记搜索次数，
	// 搜索次数归 RecordOccurrence 这一条信号管。
	queryRecord, err := s.queryRepo.GetOrCreate(ctx, normalized)
	if err != nil {
		return err
	}

	if err = s.clickRepo.UpsertClick(ctx, queryRecord.ID, songID); err != nil {
		return err
	}

	// 点击会改变双信号热门榜，直接失效；各 rail 缓存靠短 TTL 自然过期
	_ = redis.DeleteKey(ctx, consts.RankPopularPanelKey)
	return nil
}
