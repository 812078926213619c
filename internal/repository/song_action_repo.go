package repository

import (
	"Melodia/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type SongActionRepo interface {
	AddLike(ctx context.Context, userID, songID uint64) error
	RemoveLike(ctx context.Context, userID, songID uint64) error
	CheckLikeExists(ctx context.Context, userID, songID uint64) (bool, error)
	GetLikedSongIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, error)

	IncrViewCount(ctx context.Context, songID uint64) error

	GetSongLikeCount(ctx context.Context, songID uint64) (int64, error)
	GetSongViewCount(ctx context.Context, songID uint64) (int64, error)
}

type SongActionRepoImpl struct {
	db *gorm.DB
}

func NewSongActionRepo(db *gorm.DB) SongActionRepo {
	return &SongActionRepoImpl{db}
}

// AddLike 点赞行与 like_count 自增在同一事务内生效。
// 并发重复点赞由 (user_id, song_id) 主键约束拦截，冲突错误原样上抛由服务层翻译。
func (s *SongActionRepoImpl) AddLike(ctx context.Context, userID, songID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.Like{UserID: userID, SongID: songID, CreatedAt: time.Now()}).Error; err != nil {
			return err
		}
		return tx.Model(&model.Song{}).
			Where("id = ?", songID).
			UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
	})
}

// RemoveLike 删除点赞行并同步扣减 like_count。点赞行不存在时返回 ErrRecordNotFound，
// 此时计数不动，保证 like_count 不会低于真实点赞数。
func (s *SongActionRepoImpl) RemoveLike(ctx context.Context, userID, songID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND song_id = ?", userID, songID).Delete(&model.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&model.Song{}).
			Where("id = ?", songID).
			UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
	})
}

func (s *SongActionRepoImpl) CheckLikeExists(ctx context.Context, userID, songID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND song_id = ?", userID, songID).
		Count(&count).Error
	return count > 0, err
}

func (s *SongActionRepoImpl) GetLikedSongIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, error) {
	var songIDs []uint64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Pluck("song_id", &songIDs).Error
	return songIDs, err
}

// IncrViewCount 单语句原子自增，并发调用不会丢计数。
// 歌曲不存在时返回 ErrRecordNotFound。
func (s *SongActionRepoImpl) IncrViewCount(ctx context.Context, songID uint64) error {
	res := s.db.WithContext(ctx).Model(&model.Song{}).
		Where("id = ?", songID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *SongActionRepoImpl) GetSongLikeCount(ctx context.Context, songID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Song{}).
		Where("id = ?", songID).
		Pluck("like_count", &count).Error
	return count, err
}

func (s *SongActionRepoImpl) GetSongViewCount(ctx context.Context, songID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Song{}).
		Where("id = ?", songID).
		Pluck("view_count", &count).Error
	return count, err
}
