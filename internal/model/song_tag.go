package model

type SongTag struct {
	SongID uint64 `gorm:"primaryKey" json:"song_id"`
	TagID  uint64 `gorm:"primaryKey;index:idx_tag_id" json:"tag_id"`
}

func (SongTag) TableName() string {
	return "song_tags"
}
