package model

import (
	"time"
)

// Like 一行代表一次有效点赞，(user_id, song_id) 唯一。
// songs.like_count 是由它派生的计数缓存，两者在同一事务内同步。
type Like struct {
	UserID    uint64    `gorm:"primaryKey" json:"user_id"`
	SongID    uint64    `gorm:"primaryKey;index:idx_song_id" json:"song_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
