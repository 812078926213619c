package handler

import (
	"Melodia/internal/api/middleware"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSongActionService struct {
	mock.Mock
}

func (m *mockSongActionService) ToggleLike(ctx context.Context, userID, songID uint64) (bool, int64, error) {
	args := m.Called(ctx, userID, songID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *mockSongActionService) TrackView(ctx context.Context, songID uint64) error {
	args := m.Called(ctx, songID)
	return args.Error(0)
}

func (m *mockSongActionService) GetSongLikeCount(ctx context.Context, songID uint64) (int64, error) {
	args := m.Called(ctx, songID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSongActionService) GetSongViewCount(ctx context.Context, songID uint64) (int64, error) {
	args := m.Called(ctx, songID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSongActionService) GetSongClickCount(ctx context.Context, songID uint64) (int64, error) {
	args := m.Called(ctx, songID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSongActionService) IsLiked(ctx context.Context, userID, songID uint64) (bool, error) {
	args := m.Called(ctx, userID, songID)
	return args.Bool(0), args.Error(1)
}

func TestGetSongStatsReportsViewAfterRequestDone(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(mockSongActionService)
	h := NewSongActionHandler(svc)
	r := gin.New()
	r.GET("/api/songs/:song_id/stats", h.GetSongStats)

	svc.On("GetSongLikeCount", mock.Anything, uint64(7)).Return(int64(3), nil)
	svc.On("GetSongViewCount", mock.Anything, uint64(7)).Return(int64(9), nil)
	svc.On("GetSongClickCount", mock.Anything, uint64(7)).Return(int64(2), nil)

	viewCtx := make(chan context.Context, 1)
	proceed := make(chan struct{})
	svc.On("TrackView", mock.Anything, uint64(7)).Run(func(args mock.Arguments) {
		viewCtx <- args.Get(0).(context.Context)
		<-proceed
	}).Return(nil)

	reqCtx, cancel := context.WithCancel(context.Background())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/songs/7/stats", nil).WithContext(reqCtx)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// 模拟请求结束后 net/http 取消请求 ctx，上报不应被一并取消
	cancel()

	select {
	case ctx := <-viewCtx:
		assert.NoError(t, ctx.Err())
	case <-time.After(time.Second):
		t.Fatal("view report was not dispatched")
	}
	close(proceed)
}

func TestToggleLikeRequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(mockSongActionService)
	h := NewSongActionHandler(svc)
	r := gin.New()
	r.POST("/api/songs/:song_id/like", middleware.AuthMiddleware(), h.ToggleLike)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/songs/7/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "ToggleLike", mock.Anything, mock.Anything, mock.Anything)
}
