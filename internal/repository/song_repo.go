package repository

import (
	"Melodia/internal/model"
	"context"
	"strings"

	"gorm.io/gorm"
)

type SongRepo interface {
	CreateSong(ctx context.Context, song *model.Song, tags []*model.SongTag) error
	GetSong(ctx context.Context, id uint64) (*model.Song, error)
	GetSongByIds(ctx context.Context, ids []uint64) ([]*model.Song, error)
	ListSongs(ctx context.Context, orderBy string, limit int) ([]*model.Song, error)
	SearchSongs(ctx context.Context, keyword string) ([]*model.Song, error)
}

type SongRepoImpl struct {
	db *gorm.DB
}

func NewSongRepository(db *gorm.DB) SongRepo {
	return &SongRepoImpl{
		db: db,
	}
}

func (s *SongRepoImpl) CreateSong(ctx context.Context, song *model.Song, tags []*model.SongTag) error {
	if len(tags) == 0 {
		return s.db.WithContext(ctx).Omit("Tags").Create(song).Error
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(song).Error; err != nil {
			return err
		}
		for _, t := range tags {
			t.SongID = song.ID
		}
		if err := tx.Create(tags).Error; err != nil {
			return err
		}
		return nil
	})
}

func (s *SongRepoImpl) GetSong(ctx context.Context, id uint64) (*model.Song, error) {
	var song model.Song
	err := s.db.WithContext(ctx).Preload("Tags").First(&song, id).Error
	if err != nil {
		return nil, err
	}
	return &song, nil
}

func (s *SongRepoImpl) GetSongByIds(ctx context.Context, ids []uint64) ([]*model.Song, error) {
	var songs []*model.Song
	err := s.db.WithContext(ctx).Preload("Tags").Where("id IN ?", ids).Find(&songs).Error
	if err != nil {
		return nil, err
	}
	return songs, nil
}

// ListSongs 按指定排序取前 limit 首，orderBy 只接受仓储层内部拼好的白名单值
func (s *SongRepoImpl) ListSongs(ctx context.Context, orderBy string, limit int) ([]*model.Song, error) {
	var songs []*model.Song
	err := s.db.WithContext(ctx).Preload("Tags").
		Order(orderBy).
		Limit(limit).
		Find(&songs).Error
	if err != nil {
		return nil, err
	}
	return songs, nil
}

// SearchSongs 标题或标签名的大小写不敏感子串匹配，按点赞数倒序
func (s *SongRepoImpl) SearchSongs(ctx context.Context, keyword string) ([]*model.Song, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"

	tagSub := s.db.Table("song_tags").
		Select("song_tags.song_id").
		Joins("JOIN tags ON tags.id = song_tags.tag_id").
		Where("LOWER(tags.name) LIKE ?", pattern)

	var songs []*model.Song
	err := s.db.WithContext(ctx).Preload("Tags").
		Where("LOWER(title) LIKE ? OR id IN (?)", pattern, tagSub).
		Order("like_count DESC, id DESC").
		Find(&songs).Error
	if err != nil {
		return nil, err
	}
	return songs, nil
}
