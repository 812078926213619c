package service

import (
	"Melodia/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockSearchQueryRepo struct {
	mock.Mock
}

func (m *mockSearchQueryRepo) UpsertOccurrence(ctx context.Context, query string) error {
	args := m.Called(ctx, query)
	return args.Error(0)
}

func (m *mockSearchQueryRepo) GetOrCreate(ctx context.Context, query string) (*model.SearchQuery, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SearchQuery), args.Error(1)
}

func (m *mockSearchQueryRepo) ListRecent(ctx context.Context, limit int) ([]*model.SearchQuery, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.SearchQuery), args.Error(1)
}

func (m *mockSearchQueryRepo) ListPopular(ctx context.Context, limit int) ([]*model.SearchQuery, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.SearchQuery), args.Error(1)
}

func (m *mockSearchQueryRepo) DeleteWithClicks(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRecordOccurrenceNormalizesQuery(t *testing.T) {
	repo := new(mockSearchQueryRepo)
	svc := NewSearchHistoryService(repo)

	// 大小写与首尾空白都折叠到同一行
	repo.On("UpsertOccurrence", mock.Anything, "dewa 19").Return(nil).Twice()

	require.NoError(t, svc.RecordOccurrence(context.Background(), "Dewa 19"))
	require.NoError(t, svc.RecordOccurrence(context.Background(), "  dewa 19 "))

	repo.AssertExpectations(t)
}

func TestRecordOccurrenceRejectsBlank(t *testing.T) {
	repo := new(mockSearchQueryRepo)
	svc := NewSearchHistoryService(repo)

	assert.ErrorIs(t, svc.RecordOccurrence(context.Background(), "   "), ErrParamInvalid)
	repo.AssertNotCalled(t, "UpsertOccurrence", mock.Anything, mock.Anything)
}

func TestGetHistoryReturnsBothLists(t *testing.T) {
	repo := new(mockSearchQueryRepo)
	svc := NewSearchHistoryService(repo)

	now := time.Now()
	recent := []*model.SearchQuery{
		{ID: 3, Query: "halo", SearchCount: 1, LastSearchedAt: now},
		{ID: 1, Query: "dewa 19", SearchCount: 9, LastSearchedAt: now.Add(-time.Hour)},
	}
	popular := []*model.SearchQuery{
		{ID: 1, Query: "dewa 19", SearchCount: 9, LastSearchedAt: now.Add(-time.Hour)},
		{ID: 3, Query: "halo", SearchCount: 1, LastSearchedAt: now},
	}
	repo.On("ListRecent", mock.Anything, 10).Return(recent, nil)
	repo.On("ListPopular", mock.Anything, 10).Return(popular, nil)

	history, err := svc.GetHistory(context.Background())
	require.NoError(t, err)

	require.Len(t, history.Recent, 2)
	require.Len(t, history.Popular, 2)
	assert.Equal(t, "halo", history.Recent[0].Query)
	assert.Equal(t, "dewa 19", history.Popular[0].Query)
	assert.Equal(t, int64(9), history.Popular[0].SearchCount)
}

func TestDeleteEntryNotFound(t *testing.T) {
	repo := new(mockSearchQueryRepo)
	svc := NewSearchHistoryService(repo)

	repo.On("DeleteWithClicks", mock.Anything, uint64(42)).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.DeleteEntry(context.Background(), 42), ErrSearchQueryNotFound)
}
