package service

import (
	"Melodia/internal/api/dto"
	"Melodia/internal/model"
	"Melodia/internal/pkg/consts"
	"Melodia/internal/pkg/redis"
	"Melodia/internal/pkg/util"
	"Melodia/internal/repository"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

const trendCacheExpiration = 10 * time.Minute

type SongMetricService interface {
	// SyncSongMetric 落一条当天的指标快照，由异步任务调用
	SyncSongMetric(ctx context.Context, songID uint64) error
	GetSongMetricsBy7Days(ctx context.Context, songID uint64) (*dto.SongTrendDTO, error)
	GetSongMetricsBy30Days(ctx context.Context, songID uint64) (*dto.SongTrendDTO, error)
}

type songMetricServiceImpl struct {
	metricRepo repository.SongMetricRepo
	songRepo   repository.SongRepo
	clickRepo  repository.SearchClickRepo
}

func NewSongMetricService(metricRepo repository.SongMetricRepo, songRepo repository.SongRepo, clickRepo repository.SearchClickRepo) SongMetricService {
	return &songMetricServiceImpl{
		metricRepo: metricRepo,
		songRepo:   songRepo,
		clickRepo:  clickRepo,
	}
}

func (s *songMetricServiceImpl) SyncSongMetric(ctx context.Context, songID uint64) error {
	song, err := s.songRepo.GetSong(ctx, songID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 歌已删除，快照没有意义
			return nil
		}
		return err
	}

	clicks, err := s.clickRepo.SumClicksBySongID(ctx, songID)
	if err != nil {
		return err
	}

	metric := &model.SongMetric{
		SongID:      songID,
		MetricDate:  util.GetMidnight(time.Now()),
		TotalLikes:  song.LikeCount,
		TotalViews:  song.ViewCount,
		TotalClicks: clicks,
	}
	if err := s.metricRepo.SaveOrUpdateMetric(ctx, metric); err != nil {
		return err
	}

	// 快照变了，趋势缓存作废
	_ = redis.DeleteKey(ctx, consts.SongMetrics7DaysKey+strconv.FormatUint(songID, 10))
	_ = redis.DeleteKey(ctx, consts.SongMetrics30DaysKey+strconv.FormatUint(songID, 10))
	return nil
}

func (s *songMetricServiceImpl) GetSongMetricsBy7Days(ctx context.Context, songID uint64) (*dto.SongTrendDTO, error) {
	return s.getTrend(ctx, songID, 7, consts.SongMetrics7DaysKey, s.metricRepo.GetSongMetricsBy7Days)
}

func (s *songMetricServiceImpl) GetSongMetricsBy30Days(ctx context.Context, songID uint64) (*dto.SongTrendDTO, error) {
	return s.getTrend(ctx, songID, 30, consts.SongMetrics30DaysKey, s.metricRepo.GetSongMetricsBy30Days)
}

func (s *songMetricServiceImpl) getTrend(ctx context.Context, songID uint64, days int, keyPrefix string,
	fetch func(context.Context, uint64) ([]*model.SongMetric, error)) (*dto.SongTrendDTO, error) {
	if songID == 0 {
		return nil, ErrParamInvalid
	}

	key := keyPrefix + strconv.FormatUint(songID, 10)
	if cached, err := redis.GetValue(ctx, key); err == nil && cached != "" {
		trend := &dto.SongTrendDTO{}
		if err := json.Unmarshal([]byte(cached), trend); err == nil {
			return trend, nil
		}
	}

	if _, err := s.songRepo.GetSong(ctx, songID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSongNotFound
		}
		return nil, err
	}

	metrics, err := fetch(ctx, songID)
	if err != nil {
		return nil, err
	}

	trend := buildTrend(songID, days, metrics)
	if payload, err := json.Marshal(trend); err == nil {
		_ = redis.SetWithExpiration(ctx, key, payload, trendCacheExpiration)
	}
	return trend, nil
}

func buildTrend(songID uint64, days int, metrics []*model.SongMetric) *dto.SongTrendDTO {
	trend := &dto.SongTrendDTO{
		SongID: songID,
		Days:   days,
		Likes:  make([]*dto.SongMetricDTO, 0, len(metrics)),
		Views:  make([]*dto.SongMetricDTO, 0, len(metrics)),
		Clicks: make([]*dto.SongMetricDTO, 0, len(metrics)),
	}
	for _, m := range metrics {
		date := m.MetricDate.Format("2006-01-02")
		trend.Likes = append(trend.Likes, &dto.SongMetricDTO{Date: date, Value: m.TotalLikes})
		trend.Views = append(trend.Views, &dto.SongMetricDTO{Date: date, Value: m.TotalViews})
		trend.Clicks = append(trend.Clicks, &dto.SongMetricDTO{Date: date, Value: m.TotalClicks})
	}
	return trend
}
