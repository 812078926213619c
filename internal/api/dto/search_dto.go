package dto

import "time"

type SearchQueryDTO struct {
	ID             uint64    `json:"id"`
	Query          string    `json:"query"`
	SearchCount    int64     `json:"search_count"`
	LastSearchedAt time.Time `json:"last_searched_at"`
}

// SearchHistoryDTO 一次性返回两份榜单
type SearchHistoryDTO struct {
	Recent  []*SearchQueryDTO `json:"recent"`
	Popular []*SearchQueryDTO `json:"popular"`
}

// SearchOccurrenceDTO 记录一次搜索
type SearchOccurrenceDTO struct {
	Query string `json:"query" validate:"required"`
}

// SearchClickDTO 记录一次搜索结果点击
type SearchClickDTO struct {
	Query  string `json:"query" validate:"required"`
	SongID uint64 `json:"song_id" validate:"required,gt=0"`
}
