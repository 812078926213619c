package dto

import "time"

type SongDTO struct {
	ID                uint64    `json:"id"`
	Title             string    `json:"title"`
	VideoURL          string    `json:"video_url"`
	Lyrics            *string   `json:"lyrics,omitempty"`
	ViewCount         int64     `json:"view_count"`
	LikeCount         int64     `json:"like_count"`
	TotalSearchClicks int64     `json:"total_search_clicks,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	Tags              []*TagDTO `json:"tags"`
}

// SongCreateDTO 创建歌曲请求
type SongCreateDTO struct {
	Title    string   `json:"title" validate:"required,max=255"`
	VideoURL string   `json:"video_url" validate:"required,url,max=512"`
	Lyrics   *string  `json:"lyrics"`
	TagIDs   []uint64 `json:"tag_ids" validate:"required,min=1,dive,gt=0"`
}

// SongLikeDTO 点赞切换后的最新状态
type SongLikeDTO struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// SongStatsDTO 歌曲详情页的全量互动状态
type SongStatsDTO struct {
	LikeCount   int64 `json:"like_count"`
	ViewCount   int64 `json:"view_count"`
	SearchClick int64 `json:"search_click_count"`
	IsLiked     bool  `json:"is_liked"`
}
