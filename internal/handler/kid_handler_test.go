package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kids-media-server/internal/handler"
	"kids-media-server/internal/model"
	"kids-media-server/internal/model/requestresponse"
	"kids-media-server/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const kidUUID = "11111111-1111-1111-1111-111111111111"

type MockKidService struct{ mock.Mock }

func (m *MockKidService) GetPublicKid(ctx context.Context, uuid string) (*model.Kid, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Kid), args.Error(1)
}

func (m *MockKidService) ListKids(ctx context.Context, search string, page int, limit int) ([]model.Kid, int, error) {
	args := m.Called(ctx, search, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Kid), args.Int(1), args.Error(2)
}

func newKidRouter(svc *MockKidService) *chi.Mux {
	h := handler.NewKidHandler(svc)
	router := chi.NewRouter()
	router.Get("/public/kids/{uuid}", h.GetPublicKid)
	router.Get("/api/kids", h.ListKids)
	return router
}

func strPtr(s string) *string { return &s }

// ===== Тесты GET /public/kids/{uuid} =====

func TestGetPublicKid_OK(t *testing.T) {
	mockSvc := new(MockKidService)
	router := newKidRouter(mockSvc)

	mockSvc.On("GetPublicKid", mock.Anything, kidUUID).
		Return(&model.Kid{ID: 1, UUID: kidUUID, FolderID: strPtr("f1")}, nil)

	req := httptest.NewRequest(http.MethodGet, "/public/kids/"+kidUUID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp requestresponse.KidResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, kidUUID, resp.UUID)
	require.NotNil(t, resp.FolderID)
	assert.Equal(t, "f1", *resp.FolderID)
}

func TestGetPublicKid_NullFolderID(t *testing.T) {
	mockSvc := new(MockKidService)
	router := newKidRouter(mockSvc)

	mockSvc.On("GetPublicKid", mock.Anything, kidUUID).
		Return(&model.Kid{ID: 1, UUID: kidUUID}, nil)

	req := httptest.NewRequest(http.MethodGet, "/public/kids/"+kidUUID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// folder_id отдаётся как null, а не пропускается
	assert.Contains(t, rec.Body.String(), `"folder_id":null`)
}

func TestGetPublicKid_BadUUID(t *testing.T) {
	mockSvc := new(MockKidService)
	router := newKidRouter(mockSvc)

	mockSvc.On("GetPublicKid", mock.Anything, "abc").Return(nil, service.ErrInvalidUUID)

	req := httptest.NewRequest(http.MethodGet, "/public/kids/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPublicKid_NotFound(t *testing.T) {
	mockSvc := new(MockKidService)
	router := newKidRouter(mockSvc)

	mockSvc.On("GetPublicKid", mock.Anything, kidUUID).Return(nil, service.ErrKidNotFound)

	req := httptest.NewRequest(http.MethodGet, "/public/kids/"+kidUUID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ===== Тесты GET /api/kids =====

func TestListKids_PaginationMath(t *testing.T) {
	mockSvc := new(MockKidService)
	router := newKidRouter(mockSvc)

	kids := []model.Kid{{ID: 1, UUID: kidUUID, FolderID: strPtr("f1")}}
	mockSvc.On("ListKids", mock.Anything, "", 2, 20).Return(kids, 53, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/kids?page=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp requestresponse.ListKidsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 20, resp.Pagination.Limit)
	assert.Equal(t, 53, resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.True(t, resp.Pagination.HasMore)
}

func TestListKids_LastPage(t *testing.T) {
	mockSvc := new(MockKidService)
	router := newKidRouter(mockSvc)

	mockSvc.On("ListKids", mock.Anything, "1111", 3, 20).Return([]model.Kid{}, 53, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/kids?search=1111&page=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp requestresponse.ListKidsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Pagination.HasMore)
}

func TestListKids_LimitClamped(t *testing.T) {
	mockSvc := new(MockKidService)
	router := newKidRouter(mockSvc)

	mockSvc.On("ListKids", mock.Anything, "", 1, 100).Return([]model.Kid{}, 0, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/kids?limit=500", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	mockSvc.AssertExpectations(t)
}
