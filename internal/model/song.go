package model

import (
	"time"
)

type Song struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null;index:idx_title" json:"title"`
	VideoURL  string    `gorm:"type:varchar(512);not null" json:"video_url"`
	Lyrics    *string   `gorm:"type:text" json:"lyrics"`
	ViewCount int64     `gorm:"not null;default:0" json:"view_count"`
	LikeCount int64     `gorm:"not null;default:0" json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联关系
	Tags []Tag `gorm:"many2many:song_tags;joinForeignKey:SongID;joinReferences:TagID" json:"tags"`
}

func (Song) TableName() string {
	return "songs"
}
