package model

import (
	"time"
)

// SearchQuery 归一化后的搜索词，每个词只有一行
type SearchQuery struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	Query          string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_query" json:"query"`
	SearchCount    int64     `gorm:"not null;default:1" json:"search_count"`
	LastSearchedAt time.Time `gorm:"not null" json:"last_searched_at"`
	CreatedAt      time.Time `json:"created_at"`
}

func (SearchQuery) TableName() string {
	return "search_queries"
}
