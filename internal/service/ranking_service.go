package service

import (
	"Melodia/internal/api/dto"
	"Melodia/internal/pkg/consts"
	"Melodia/internal/pkg/redis"
	"Melodia/internal/repository"
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// railCacheExpiration 榜单缓存的生存时间，榜单允许短暂滞后
const railCacheExpiration = 60 * time.Second

type RankingService interface {
	// RankedSongs 四个命名榜单：新歌 / 最多赞 / 最多播放 / 搜索点击最多
	RankedSongs(ctx context.Context, kind string, limit int) ([]*dto.SongDTO, error)
	// PopularByClicks 双信号热门：按点赞取候选池，再按搜索点击重排取前几
	PopularByClicks(ctx context.Context) ([]*dto.SongDTO, error)
}

type rankingServiceImpl struct {
	songRepo  repository.SongRepo
	clickRepo repository.SearchClickRepo
}

func NewRankingService(songRepo repository.SongRepo, clickRepo repository.SearchClickRepo) RankingService {
	return &rankingServiceImpl{
		songRepo:  songRepo,
		clickRepo: clickRepo,
	}
}

func (s *rankingServiceImpl) RankedSongs(ctx context.Context, kind string, limit int) ([]*dto.SongDTO, error) {
	if limit <= 0 {
		limit = consts.DefaultRankLimit
	}
	if limit > consts.MaxRankLimit {
		limit = consts.MaxRankLimit
	}

	key := consts.RankRailKey + kind + ":" + strconv.Itoa(limit)
	if cached, ok := s.fromCache(ctx, key); ok {
		return cached, nil
	}

	var (
		songs []*dto.SongDTO
		err   error
	)
	switch kind {
	case consts.RankNewReleases:
		songs, err = s.listSongs(ctx, "created_at DESC, id DESC", limit)
	case consts.RankMostPopular:
		songs, err = s.listSongs(ctx, "like_count DESC, id DESC", limit)
	case consts.RankMostViral:
		songs, err = s.listSongs(ctx, "view_count DESC, id DESC", limit)
	case consts.RankMostWanted:
		songs, err = s.mostWanted(ctx, limit)
	default:
		return nil, ErrRankKindInvalid
	}
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, key, songs)
	return songs, nil
}

func (s *rankingServiceImpl) listSongs(ctx context.Context, orderBy string, limit int) ([]*dto.SongDTO, error) {
	songs, err := s.songRepo.ListSongs(ctx, orderBy, limit)
	if err != nil {
		return nil, err
	}
	return toSongDTOs(songs), nil
}

// mostWanted 先对点击表分组求和取前 limit 个歌曲 ID，
// 再补全歌曲详情并按聚合顺序还原（按 ID 批量查不保证顺序）。
// 没有点击记录的歌曲不会出现。
func (s *rankingServiceImpl) mostWanted(ctx context.Context, limit int) ([]*dto.SongDTO, error) {
	aggs, err := s.clickRepo.TopClickedSongs(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(aggs) == 0 {
		return []*dto.SongDTO{}, nil
	}

	songIDs := make([]uint64, 0, len(aggs))
	for _, agg := range aggs {
		songIDs = append(songIDs, agg.SongID)
	}

	songs, err := s.songRepo.GetSongByIds(ctx, songIDs)
	if err != nil {
		return nil, err
	}

	songMap := make(map[uint64]*dto.SongDTO, len(songs))
	for _, song := range songs {
		songMap[song.ID] = toSongDTO(song)
	}

	result := make([]*dto.SongDTO, 0, len(aggs))
	for _, agg := range aggs {
		if song, ok := songMap[agg.SongID]; ok {
			song.TotalSearchClicks = agg.TotalClicks
			result = append(result, song)
		}
	}
	return result, nil
}

// PopularByClicks 有界候选池重排：只在点赞数前 20 的歌里按搜索点击重排，
// 点击再高但不在候选池里的歌不会上榜。这是刻意的成本控制，不做全局聚合。
func (s *rankingServiceImpl) PopularByClicks(ctx context.Context) ([]*dto.SongDTO, error) {
	if cached, ok := s.fromCache(ctx, consts.RankPopularPanelKey); ok {
		return cached, nil
	}

	candidates, err := s.songRepo.ListSongs(ctx, "like_count DESC, id DESC", consts.PopularCandidatePool)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []*dto.SongDTO{}, nil
	}

	songIDs := make([]uint64, 0, len(candidates))
	for _, song := range candidates {
		songIDs = append(songIDs, song.ID)
	}

	clickCounts, err := s.clickRepo.SumClicksBySongIds(ctx, songIDs)
	if err != nil {
		return nil, err
	}

	result := toSongDTOs(candidates)
	for _, song := range result {
		song.TotalSearchClicks = clickCounts[song.ID]
	}

	// 稳定排序：点击数相同保持候选池原有的点赞序
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSearchClicks > result[j].TotalSearchClicks
	})

	if len(result) > consts.PopularPanelSize {
		result = result[:consts.PopularPanelSize]
	}

	s.toCache(ctx, consts.RankPopularPanelKey, result)
	return result, nil
}

func (s *rankingServiceImpl) fromCache(ctx context.Context, key string) ([]*dto.SongDTO, bool) {
	val, err := redis.GetValue(ctx, key)
	if err != nil || val == "" {
		return nil, false
	}
	var songs []*dto.SongDTO
	if err := json.Unmarshal([]byte(val), &songs); err != nil {
		return nil, false
	}
	return songs, true
}

func (s *rankingServiceImpl) toCache(ctx context.Context, key string, songs []*dto.SongDTO) {
	payload, err := json.Marshal(songs)
	if err != nil {
		return
	}
	_ = redis.SetWithExpiration(ctx, key, payload, railCacheExpiration)
}
