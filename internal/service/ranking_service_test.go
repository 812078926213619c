package service

import (
	"Melodia/internal/model"
	"Melodia/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRankedSongsUnknownKind(t *testing.T) {
	svc := NewRankingService(new(mockSongRepo), new(mockSearchClickRepo))

	_, err := svc.RankedSongs(context.Background(), "hottest", 10)
	assert.ErrorIs(t, err, ErrRankKindInvalid)
}

func TestRankedSongsClampsLimit(t *testing.T) {
	songRepo := new(mockSongRepo)
	svc := NewRankingService(songRepo, new(mockSearchClickRepo))

	songRepo.On("ListSongs", mock.Anything, "created_at DESC, id DESC", 50).
		Return([]*model.Song{}, nil)

	_, err := svc.RankedSongs(context.Background(), "new_releases", 500)
	require.NoError(t, err)
	songRepo.AssertExpectations(t)
}

func TestRankedSongsDefaultLimit(t *testing.T) {
	songRepo := new(mockSongRepo)
	svc := NewRankingService(songRepo, new(mockSearchClickRepo))

	songRepo.On("ListSongs", mock.Anything, "like_count DESC, id DESC", 10).
		Return([]*model.Song{{ID: 1, Title: "Kangen", LikeCount: 3}}, nil)

	songs, err := svc.RankedSongs(context.Background(), "most_popular", 0)
	require.NoError(t, err)
	require.Len(t, songs, 1)
	assert.Equal(t, "Kangen", songs[0].Title)
}

func TestMostWantedRestoresAggregateOrder(t *testing.T) {
	songRepo := new(mockSongRepo)
	clickRepo := new(mockSearchClickRepo)
	svc := NewRankingService(songRepo, clickRepo)

	clickRepo.On("TopClickedSongs", mock.Anything, 10).Return([]*repository.SongClickAgg{
		{SongID: 3, TotalClicks: 9},
		{SongID: 1, TotalClicks: 5},
		{SongID: 2, TotalClicks: 2},
	}, nil)
	// 按 ID 批量查不保证顺序，还混进一个已经不存在的 2
	songRepo.On("GetSongByIds", mock.Anything, []uint64{3, 1, 2}).Return([]*model.Song{
		{ID: 1, Title: "Kangen"},
		{ID: 3, Title: "Separuh Nafas"},
	}, nil)

	songs, err := svc.RankedSongs(context.Background(), "most_wanted", 10)
	require.NoError(t, err)

	require.Len(t, songs, 2)
	assert.Equal(t, uint64(3), songs[0].ID)
	assert.Equal(t, int64(9), songs[0].TotalSearchClicks)
	assert.Equal(t, uint64(1), songs[1].ID)
	assert.Equal(t, int64(5), songs[1].TotalSearchClicks)
}

func TestMostWantedEmptyWithoutClicks(t *testing.T) {
	songRepo := new(mockSongRepo)
	clickRepo := new(mockSearchClickRepo)
	svc := NewRankingService(songRepo, clickRepo)

	clickRepo.On("TopClickedSongs", mock.Anything, 10).
		Return([]*repository.SongClickAgg{}, nil)

	songs, err := svc.RankedSongs(context.Background(), "most_wanted", 10)
	require.NoError(t, err)
	assert.Empty(t, songs)
	songRepo.AssertNotCalled(t, "GetSongByIds", mock.Anything, mock.Anything)
}

func TestPopularByClicksReranksCandidatePool(t *testing.T) {
	songRepo := new(mockSongRepo)
	clickRepo := new(mockSearchClickRepo)
	svc := NewRankingService(songRepo, clickRepo)

	// 候选池按点赞序给 6 首，点击重排后只留前 5
	pool := []*model.Song{
		{ID: 1, Title: "a", LikeCount: 60},
		{ID: 2, Title: "b", LikeCount: 50},
		{ID: 3, Title: "c", LikeCount: 40},
		{ID: 4, Title: "d", LikeCount: 30},
		{ID: 5, Title: "e", LikeCount: 20},
		{ID: 6, Title: "f", LikeCount: 10},
	}
	songRepo.On("ListSongs", mock.Anything, "like_count DESC, id DESC", 20).Return(pool, nil)
	clickRepo.On("SumClicksBySongIds", mock.Anything, []uint64{1, 2, 3, 4, 5, 6}).
		Return(map[uint64]int64{1: 2, 2: 9, 4: 7, 6: 9}, nil)

	songs, err := svc.PopularByClicks(context.Background())
	require.NoError(t, err)

	require.Len(t, songs, 5)
	// 点击数并列时保持候选池原有的点赞序
	assert.Equal(t, uint64(2), songs[0].ID)
	assert.Equal(t, uint64(6), songs[1].ID)
	assert.Equal(t, uint64(4), songs[2].ID)
	assert.Equal(t, uint64(1), songs[3].ID)
	assert.Equal(t, uint64(3), songs[4].ID)
	assert.Equal(t, int64(9), songs[0].TotalSearchClicks)
	assert.Equal(t, int64(0), songs[4].TotalSearchClicks)
}

func TestPopularByClicksEmptyCatalog(t *testing.T) {
	songRepo := new(mockSongRepo)
	clickRepo := new(mockSearchClickRepo)
	svc := NewRankingService(songRepo, clickRepo)

	songRepo.On("ListSongs", mock.Anything, "like_count DESC, id DESC", 20).
		Return([]*model.Song{}, nil)

	songs, err := svc.PopularByClicks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, songs)
	clickRepo.AssertNotCalled(t, "SumClicksBySongIds", mock.Anything, mock.Anything)
}
