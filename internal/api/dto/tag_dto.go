package dto

import "time"

type TagDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Type      string    `json:"type"`
	ParentID  *uint64   `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TagCreateDTO 创建标签请求
type TagCreateDTO struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Slug     string  `json:"slug" validate:"required,max=100"`
	Type     string  `json:"type" validate:"required"`
	ParentID *uint64 `json:"parent_id"`
}
