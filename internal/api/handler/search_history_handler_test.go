package handler

import (
	"Melodia/internal/api/dto"
	"Melodia/internal/service"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSearchHistoryService struct {
	mock.Mock
}

func (m *mockSearchHistoryService) RecordOccurrence(ctx context.Context, rawQuery string) error {
	args := m.Called(ctx, rawQuery)
	return args.Error(0)
}

func (m *mockSearchHistoryService) GetHistory(ctx context.Context) (*dto.SearchHistoryDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SearchHistoryDTO), args.Error(1)
}

func (m *mockSearchHistoryService) DeleteEntry(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupHistoryRouter(svc service.SearchHistoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSearchHistoryHandler(svc)
	r := gin.New()
	r.GET("/api/search/history", h.GetHistory)
	r.POST("/api/search/history", h.RecordOccurrence)
	r.DELETE("/api/search/history/:id", h.DeleteEntry)
	return r
}

func TestGetHistoryEndpoint(t *testing.T) {
	svc := new(mockSearchHistoryService)
	router := setupHistoryRouter(svc)

	svc.On("GetHistory", mock.Anything).Return(&dto.SearchHistoryDTO{
		Recent:  []*dto.SearchQueryDTO{{ID: 1, Query: "dewa 19", SearchCount: 4}},
		Popular: []*dto.SearchQueryDTO{{ID: 1, Query: "dewa 19", SearchCount: 4}},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search/history", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code    int                  `json:"code"`
		Message string               `json:"message"`
		Data    dto.SearchHistoryDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Code)
	require.Len(t, resp.Data.Recent, 1)
	assert.Equal(t, "dewa 19", resp.Data.Recent[0].Query)
}

func TestRecordOccurrenceEndpoint(t *testing.T) {
	svc := new(mockSearchHistoryService)
	router := setupHistoryRouter(svc)

	svc.On("RecordOccurrence", mock.Anything, "Dewa 19").Return(nil)

	body, _ := json.Marshal(dto.SearchOccurrenceDTO{Query: "Dewa 19"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search/history", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestRecordOccurrenceEndpointMissingQuery(t *testing.T) {
	svc := new(mockSearchHistoryService)
	router := setupHistoryRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search/history", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "RecordOccurrence", mock.Anything, mock.Anything)
}

func TestDeleteEntryEndpointNotFound(t *testing.T) {
	svc := new(mockSearchHistoryService)
	router := setupHistoryRouter(svc)

	svc.On("DeleteEntry", mock.Anything, uint64(42)).Return(service.ErrSearchQueryNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/search/history/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteEntryEndpointBadID(t *testing.T) {
	svc := new(mockSearchHistoryService)
	router := setupHistoryRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/search/history/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "DeleteEntry", mock.Anything, mock.Anything)
}
