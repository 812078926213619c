package service

import (
	"Melodia/internal/pkg/consts"
	"Melodia/internal/pkg/redis"
	"Melodia/internal/repository"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	countCacheExpiration = 7 * 24 * time.Hour
	mysqlErrDuplicateKey = 1062
)

type SongActionService interface {
	// ToggleLike 两态翻转：未赞则赞，已赞则取消。点赞行与计数同事务生效。
	// 返回翻转后的点赞状态与最新 like_count。
	ToggleLike(ctx context.Context, userID, songID uint64) (bool, int64, error)
	// TrackView 播放页浏览计数，+1 一次
	TrackView(ctx context.Context, songID uint64) error

	GetSongLikeCount(ctx context.Context, songID uint64) (int64, error)
	GetSongViewCount(ctx context.Context, songID uint64) (int64, error)
	GetSongClickCount(ctx context.Context, songID uint64) (int64, error)
	IsLiked(ctx context.Context, userID, songID uint64) (bool, error)
}

type songActionServiceImpl struct {
	actionRepo repository.SongActionRepo
	songRepo   repository.SongRepo
	clickRepo  repository.SearchClickRepo
}

func NewSongActionService(actionRepo repository.SongActionRepo, songRepo repository.SongRepo, clickRepo repository.SearchClickRepo) SongActionService {
	return &songActionServiceImpl{
		actionRepo: actionRepo,
		songRepo:   songRepo,
		clickRepo:  clickRepo,
	}
}

func (s *songActionServiceImpl) ToggleLike(ctx context.Context, userID, songID uint64) (bool, int64, error) {
	if _, err := s.songRepo.GetSong(ctx, songID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrSongNotFound
		}
		return false, 0, err
	}

	liked, err := s.actionRepo.CheckLikeExists(ctx, userID, songID)
	if err != nil {
		return false, 0, err
	}

	if liked {
		err = s.actionRepo.RemoveLike(ctx, userID, songID)
		// 并发下点赞行可能已被同用户的另一次翻转删掉
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = ErrActionDuplicate
		}
	} else {
		err = s.actionRepo.AddLike(ctx, userID, songID)
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateKey {
			err = ErrActionDuplicate
		}
	}
	if err != nil {
		return false, 0, err
	}

	_ = redis.DeleteKey(ctx, consts.SongLikeKey+strconv.FormatUint(songID, 10))

	count, err := s.actionRepo.GetSongLikeCount(ctx, songID)
	if err != nil {
		return !liked, 0, err
	}
	return !liked, count, nil
}

func (s *songActionServiceImpl) TrackView(ctx context.Context, songID uint64) error {
	err := s.actionRepo.IncrViewCount(ctx, songID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSongNotFound
	}
	return err
}

func (s *songActionServiceImpl) GetSongLikeCount(ctx context.Context, songID uint64) (int64, error) {
	key := consts.SongLikeKey + strconv.FormatUint(songID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	realCount, err := s.actionRepo.GetSongLikeCount(ctx, songID)
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, realCount, countCacheExpiration)
	return realCount, nil
}

func (s *songActionServiceImpl) GetSongViewCount(ctx context.Context, songID uint64) (int64, error) {
	key := consts.SongViewKey + strconv.FormatUint(songID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	realCount, err := s.actionRepo.GetSongViewCount(ctx, songID)
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, realCount, countCacheExpiration)
	return realCount, nil
}

func (s *songActionServiceImpl) GetSongClickCount(ctx context.Context, songID uint64) (int64, error) {
	key := consts.SongClickKey + strconv.FormatUint(songID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count, nil
	}
	realCount, err := s.clickRepo.SumClicksBySongID(ctx, songID)
	if err != nil {
		return 0, err
	}
	_ = redis.SetWithExpiration(ctx, key, realCount, countCacheExpiration)
	return realCount, nil
}

func (s *songActionServiceImpl) IsLiked(ctx context.Context, userID, songID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.actionRepo.CheckLikeExists(ctx, userID, songID)
}
