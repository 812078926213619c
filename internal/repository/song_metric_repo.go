package repository

import (
	"Melodia/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SongMetricRepo interface {
	SaveOrUpdateMetric(ctx context.Context, metric *model.SongMetric) error
	GetSongMetricsBy7Days(ctx context.Context, songID uint64) ([]*model.SongMetric, error)
	GetSongMetricsBy30Days(ctx context.Context, songID uint64) ([]*model.SongMetric, error)
}

type songMetricRepoImpl struct {
	db *gorm.DB
}

func NewSongMetricRepository(db *gorm.DB) SongMetricRepo {
	return &songMetricRepoImpl{db: db}
}

// SaveOrUpdateMetric 采用 Upsert 逻辑。如果 song_id + metric_date 已存在，则更新各项数值
func (r *songMetricRepoImpl) SaveOrUpdateMetric(ctx context.Context, metric *model.SongMetric) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "song_id"}, {Name: "metric_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_likes",
			"total_views",
			"total_clicks",
		}),
	}).Create(metric).Error
}

// GetSongMetricsBy7Days 获取歌曲最近 7 天的趋势数据
func (r *songMetricRepoImpl) GetSongMetricsBy7Days(ctx context.Context, songID uint64) ([]*model.SongMetric, error) {
	metrics := make([]*model.SongMetric, 0)
	result := r.db.WithContext(ctx).
		Where("song_id = ?", songID).
		Where("metric_date >= ?", time.Now().AddDate(0, 0, -7)).
		Order("metric_date ASC").
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}

// GetSongMetricsBy30Days 获取歌曲最近 30 天的趋势数据
func (r *songMetricRepoImpl) GetSongMetricsBy30Days(ctx context.Context, songID uint64) ([]*model.SongMetric, error) {
	metrics := make([]*model.SongMetric, 0)
	result := r.db.WithContext(ctx).
		Where("song_id = ?", songID).
		Where("metric_date >= ?", time.Now().AddDate(0, 0, -30)).
		Order("metric_date ASC").
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}
