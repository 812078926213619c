package service

import (
	"Melodia/internal/api/dto"
	"Melodia/internal/model"
	"Melodia/internal/repository"
	"context"
	"errors"

	"gorm.io/gorm"
)

type SongService interface {
	CreateSong(ctx context.Context, req *dto.SongCreateDTO) (*dto.SongDTO, error)
	GetSongDetail(ctx context.Context, songID uint64) (*dto.SongDTO, error)
	ListSongs(ctx context.Context, limit int) ([]*dto.SongDTO, error)
}

type songServiceImpl struct {
	songRepo repository.SongRepo
	tagRepo  repository.TagRepo
}

func NewSongService(songRepo repository.SongRepo, tagRepo repository.TagRepo) SongService {
	return &songServiceImpl{
		songRepo: songRepo,
		tagRepo:  tagRepo,
	}
}

func (s *songServiceImpl) CreateSong(ctx context.Context, req *dto.SongCreateDTO) (*dto.SongDTO, error) {
	// 标签必须全部已存在，不做隐式创建
	if len(req.TagIDs) > 0 {
		count, err := s.tagRepo.CountTagsByIds(ctx, req.TagIDs)
		if err != nil {
			return nil, err
		}
		if count != int64(len(req.TagIDs)) {
			return nil, ErrTagInvalid
		}
	}

	song := &model.Song{
		Title:    req.Title,
		VideoURL: req.VideoURL,
		Lyrics:   req.Lyrics,
	}
	songTags := make([]*model.SongTag, 0, len(req.TagIDs))
	for _, tagID := range req.TagIDs {
		songTags = append(songTags, &model.SongTag{TagID: tagID})
	}

	if err := s.songRepo.CreateSong(ctx, song, songTags); err != nil {
		return nil, err
	}
	return s.GetSongDetail(ctx, song.ID)
}

func (s *songServiceImpl) GetSongDetail(ctx context.Context, songID uint64) (*dto.SongDTO, error) {
	song, err := s.songRepo.GetSong(ctx, songID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSongNotFound
		}
		return nil, err
	}
	return toSongDTO(song), nil
}

func (s *songServiceImpl) ListSongs(ctx context.Context, limit int) ([]*dto.SongDTO, error) {
	songs, err := s.songRepo.ListSongs(ctx, "created_at DESC, id DESC", limit)
	if err != nil {
		return nil, err
	}
	return toSongDTOs(songs), nil
}
