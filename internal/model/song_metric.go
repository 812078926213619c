package model

import (
	"time"
)

type SongMetric struct {
	ID          uint64    `gorm:"primaryKey"`
	SongID      uint64    `gorm:"not null;index:idx_song_date,unique"`
	MetricDate  time.Time `gorm:"not null;index:idx_song_date,unique;column:metric_date"`
	TotalLikes  int64     `gorm:"not null;default:0"`
	TotalViews  int64     `gorm:"not null;default:0"`
	TotalClicks int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (SongMetric) TableName() string {
	return "song_daily_metrics"
}
