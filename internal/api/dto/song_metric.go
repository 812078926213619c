package dto

// SongMetricDTO 歌曲指标趋势点
type SongMetricDTO struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

// SongTrendDTO 歌曲趋势返回包装
type SongTrendDTO struct {
	SongID uint64           `json:"song_id"`
	Days   int              `json:"days"` // 7 或 30
	Likes  []*SongMetricDTO `json:"likes"`
	Views  []*SongMetricDTO `json:"views"`
	Clicks []*SongMetricDTO `json:"clicks"`
}
