package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
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

type MockMediaService struct{ mock.Mock }

func (m *MockMediaService) ListFiles(ctx context.Context, kidUUID string, pageSize int, pageToken string) (*model.FileListing, error) {
	args := m.Called(ctx, kidUUID, pageSize, pageToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileListing), args.Error(1)
}

func (m *MockMediaService) UploadFile(ctx context.Context, kidUUID string, fileName string, payloadName string, mimeType string, payload io.Reader, uploaderUUID string) (*model.UploadResult, error) {
	args := m.Called(ctx, kidUUID, fileName, payloadName, mimeType, payload, uploaderUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UploadResult), args.Error(1)
}

func (m *MockMediaService) LogMedia(ctx context.Context, kidUUID string, fileName string, uploaderUUID string) (int64, error) {
	args := m.Called(ctx, kidUUID, fileName, uploaderUUID)
	return args.Get(0).(int64), args.Error(1)
}

func newDriveRouter(svc *MockMediaService) *chi.Mux {
	h := handler.NewDriveHandler(svc)
	router := chi.NewRouter()
	router.Get("/api/integrations/drive/list", h.ListFiles)
	return router
}

// ===== Тесты GET /api/integrations/drive/list =====

func TestListFiles_BadUUIDStatus(t *testing.T) {
	mockSvc := new(MockMediaService)
	router := newDriveRouter(mockSvc)

	mockSvc.On("ListFiles", mock.Anything, "abc", 0, "").Return(nil, service.ErrInvalidUUID)

	req := httptest.NewRequest(http.MethodGet, "/api/integrations/drive/list?kidUuid=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListFiles_KidNotFoundStatus(t *testing.T) {
	mockSvc := new(MockMediaService)
	router := newDriveRouter(mockSvc)

	mockSvc.On("ListFiles", mock.Anything, kidUUID, 0, "").Return(nil, service.ErrKidNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/integrations/drive/list?kidUuid="+kidUUID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListFiles_FolderNotConfiguredIsBadRequest(t *testing.T) {
	mockSvc := new(MockMediaService)
	router := newDriveRouter(mockSvc)

	mockSvc.On("ListFiles", mock.Anything, kidUUID, 0, "").Return(nil, service.ErrFolderNotConfigured)

	req := httptest.NewRequest(http.MethodGet, "/api/integrations/drive/list?kidUuid="+kidUUID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// отсутствие folder_id это ошибка данных клиента, а не сбой провайдера
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "папка ученика не настроена")
}

func TestListFiles_ProviderErrorCarriesDetails(t *testing.T) {
	mockSvc := new(MockMediaService)
	router := newDriveRouter(mockSvc)

	providerErr := errors.New("не удалось получить список файлов: googleapi: Error 503")
	mockSvc.On("ListFiles", mock.Anything, kidUUID, 0, "").Return(nil, providerErr)

	req := httptest.NewRequest(http.MethodGet, "/api/integrations/drive/list?kidUuid="+kidUUID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Message string `json:"message"`
		Details string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "внутренняя ошибка сервера", body.Message)
	assert.Contains(t, body.Details, "googleapi: Error 503")
}

func TestListFiles_DegradedFolderStillOK(t *testing.T) {
	mockSvc := new(MockMediaService)
	router := newDriveRouter(mockSvc)

	listing := &model.FileListing{
		Files:   []model.DriveFile{},
		Warning: "папка ученика не найдена или недоступна в Drive",
	}
	mockSvc.On("ListFiles", mock.Anything, kidUUID, 0, "").Return(listing, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/integrations/drive/list?kidUuid="+kidUUID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp requestresponse.ListFilesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Files)
	assert.NotEmpty(t, resp.Warning)
}
