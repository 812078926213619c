package service

import (
	"Melodia/internal/model"
	"context"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockSongActionRepo struct {
	mock.Mock
}

func (m *mockSongActionRepo) AddLike(ctx context.Context, userID, songID uint64) error {
	args := m.Called(ctx, userID, songID)
	return args.Error(0)
}

func (m *mockSongActionRepo) RemoveLike(ctx context.Context, userID, songID uint64) error {
	args := m.Called(ctx, userID, songID)
	return args.Error(0)
}

func (m *mockSongActionRepo) CheckLikeExists(ctx context.Context, userID, songID uint64) (bool, error) {
	args := m.Called(ctx, userID, songID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSongActionRepo) GetLikedSongIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *mockSongActionRepo) IncrViewCount(ctx context.Context, songID uint64) error {
	args := m.Called(ctx, songID)
	return args.Error(0)
}

func (m *mockSongActionRepo) GetSongLikeCount(ctx context.Context, songID uint64) (int64, error) {
	args := m.Called(ctx, songID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSongActionRepo) GetSongViewCount(ctx context.Context, songID uint64) (int64, error) {
	args := m.Called(ctx, songID)
	return args.Get(0).(int64), args.Error(1)
}

func TestToggleLikeAddsWhenNotLiked(t *testing.T) {
	actionRepo := new(mockSongActionRepo)
	songRepo := new(mockSongRepo)
	svc := NewSongActionService(actionRepo, songRepo, new(mockSearchClickRepo))

	songRepo.On("GetSong", mock.Anything, uint64(5)).Return(&model.Song{ID: 5}, nil)
	actionRepo.On("CheckLikeExists", mock.Anything, uint64(1), uint64(5)).Return(false, nil)
	actionRepo.On("AddLike", mock.Anything, uint64(1), uint64(5)).Return(nil)
	actionRepo.On("GetSongLikeCount", mock.Anything, uint64(5)).Return(int64(8), nil)

	liked, count, err := svc.ToggleLike(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(8), count)
	actionRepo.AssertNotCalled(t, "RemoveLike", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleLikeRemovesWhenAlreadyLiked(t *testing.T) {
	actionRepo := new(mockSongActionRepo)
	songRepo := new(mockSongRepo)
	svc := NewSongActionService(actionRepo, songRepo, new(mockSearchClickRepo))

	songRepo.On("GetSong", mock.Anything, uint64(5)).Return(&model.Song{ID: 5}, nil)
	actionRepo.On("CheckLikeExists", mock.Anything, uint64(1), uint64(5)).Return(true, nil)
	actionRepo.On("RemoveLike", mock.Anything, uint64(1), uint64(5)).Return(nil)
	actionRepo.On("GetSongLikeCount", mock.Anything, uint64(5)).Return(int64(7), nil)

	liked, count, err := svc.ToggleLike(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(7), count)
	actionRepo.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleLikeSongMissing(t *testing.T) {
	actionRepo := new(mockSongActionRepo)
	songRepo := new(mockSongRepo)
	svc := NewSongActionService(actionRepo, songRepo, new(mockSearchClickRepo))

	songRepo.On("GetSong", mock.Anything, uint64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.ToggleLike(context.Background(), 1, 404)
	assert.ErrorIs(t, err, ErrSongNotFound)
}

func TestToggleLikeDuplicateInsertRace(t *testing.T) {
	actionRepo := new(mockSongActionRepo)
	songRepo := new(mockSongRepo)
	svc := NewSongActionService(actionRepo, songRepo, new(mockSearchClickRepo))

	songRepo.On("GetSong", mock.Anything, uint64(5)).Return(&model.Song{ID: 5}, nil)
	actionRepo.On("CheckLikeExists", mock.Anything, uint64(1), uint64(5)).Return(false, nil)
	// 并发翻转撞唯一键
	actionRepo.On("AddLike", mock.Anything, uint64(1), uint64(5)).
		Return(&mysql.MySQLError{Number: 1062})

	_, _, err := svc.ToggleLike(context.Background(), 1, 5)
	assert.ErrorIs(t, err, ErrActionDuplicate)
}

func TestTrackViewSongMissing(t *testing.T) {
	actionRepo := new(mockSongActionRepo)
	svc := NewSongActionService(actionRepo, new(mockSongRepo), new(mockSearchClickRepo))

	actionRepo.On("IncrViewCount", mock.Anything, uint64(404)).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.TrackView(context.Background(), 404), ErrSongNotFound)
}

func TestIsLikedAnonymousUser(t *testing.T) {
	actionRepo := new(mockSongActionRepo)
	svc := NewSongActionService(actionRepo, new(mockSongRepo), new(mockSearchClickRepo))

	liked, err := svc.IsLiked(context.Background(), 0, 5)
	require.NoError(t, err)
	assert.False(t, liked)
	actionRepo.AssertNotCalled(t, "CheckLikeExists", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetSongLikeCountFallsBackToDB(t *testing.T) {
	actionRepo := new(mockSongActionRepo)
	svc := NewSongActionService(actionRepo, new(mockSongRepo), new(mockSearchClickRepo))

	// 无缓存可用时回源数据库
	actionRepo.On("GetSongLikeCount", mock.Anything, uint64(5)).Return(int64(12), nil)

	count, err := svc.GetSongLikeCount(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}

func TestGetSongClickCountFallsBackToDB(t *testing.T) {
	clickRepo := new(mockSearchClickRepo)
	svc := NewSongActionService(new(mockSongActionRepo), new(mockSongRepo), clickRepo)

	clickRepo.On("SumClicksBySongID", mock.Anything, uint64(5)).Return(int64(4), nil)

	count, err := svc.GetSongClickCount(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
