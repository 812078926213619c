package model

// SearchClick 记录某个搜索词带来的对某首歌的点击次数，
// (search_query_id, song_id) 组合唯一。
type SearchClick struct {
	ID            uint64 `gorm:"primaryKey" json:"id"`
	SearchQueryID uint64 `gorm:"not null;uniqueIndex:idx_query_song" json:"search_query_id"`
	SongID        uint64 `gorm:"not null;uniqueIndex:idx_query_song;index:idx_song_id" json:"song_id"`
	ClickCount    int64  `gorm:"not null;default:1" json:"click_count"`
}

func (SearchClick) TableName() string {
	return "search_clicks"
}
