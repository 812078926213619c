package model

import "time"

type Tag struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Slug      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_tag_slug" json:"slug"`
	Type      string    `gorm:"type:varchar(20);not null" json:"type"`
	ParentID  *uint64   `gorm:"index:idx_parent_id" json:"parent_id"` // 自引用层级，可为空
	CreatedAt time.Time `json:"created_at"`
}

func (Tag) TableName() string {
	return "tags"
}
