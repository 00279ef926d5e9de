package service_test

import (
	"context"
	"errors"
	"testing"

	"kids-media-server/internal/model"
	"kids-media-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ===== Тесты ResolveFolder =====

func TestResolveFolder_FastPath(t *testing.T) {
	mockStorage := new(MockDriveStorage)
	svc := service.NewFolderService(mockStorage)

	mockStorage.On("GetFolder", mock.Anything, "f1").
		Return(&model.DriveFolder{ID: "f1", Name: kidUUID, MimeType: model.MimeTypeFolder}, nil)

	folder, err := svc.ResolveFolder(context.Background(), kidUUID, "f1")

	require.NoError(t, err)
	assert.Equal(t, "f1", folder.ID)
	// живая папка возвращается как есть, без создания новой
	mockStorage.AssertNotCalled(t, "CheckRoot", mock.Anything)
	mockStorage.AssertNotCalled(t, "CreateFolder", mock.Anything, mock.Anything)
}

func TestResolveFolder_RecreatesDeadFolder(t *testing.T) {
	mockStorage := new(MockDriveStorage)
	svc := service.NewFolderService(mockStorage)

	mockStorage.On("GetFolder", mock.Anything, "dead").Return(nil, errors.New("googleapi: Error 404"))
	mockStorage.On("CheckRoot", mock.Anything).Return(nil)
	mockStorage.On("CreateFolder", mock.Anything, kidUUID).
		Return(&model.DriveFolder{ID: "newFolder", Name: kidUUID, MimeType: model.MimeTypeFolder}, nil)
	mockStorage.On("AllowAnyoneRead", mock.Anything, "newFolder").Return(nil)

	folder, err := svc.ResolveFolder(context.Background(), kidUUID, "dead")

	require.NoError(t, err)
	assert.Equal(t, "newFolder", folder.ID)
	assert.Equal(t, kidUUID, folder.Name)
	mockStorage.AssertExpectations(t)
}

func TestResolveFolder_RecreatesWhenNotAFolder(t *testing.T) {
	mockStorage := new(MockDriveStorage)
	svc := service.NewFolderService(mockStorage)

	mockStorage.On("GetFolder", mock.Anything, "f1").
		Return(&model.DriveFolder{ID: "f1", MimeType: "image/png"}, nil)
	mockStorage.On("CheckRoot", mock.Anything).Return(nil)
	mockStorage.On("CreateFolder", mock.Anything, kidUUID).
		Return(&model.DriveFolder{ID: "newFolder", Name: kidUUID, MimeType: model.MimeTypeFolder}, nil)
	mockStorage.On("AllowAnyoneRead", mock.Anything, "newFolder").Return(nil)

	folder, err := svc.ResolveFolder(context.Background(), kidUUID, "f1")

	require.NoError(t, err)
	assert.Equal(t, "newFolder", folder.ID)
}

func TestResolveFolder_CreatesWhenEmpty(t *testing.T) {
	mockStorage := new(MockDriveStorage)
	svc := service.NewFolderService(mockStorage)

	mockStorage.On("CheckRoot", mock.Anything).Return(nil)
	mockStorage.On("CreateFolder", mock.Anything, kidUUID).
		Return(&model.DriveFolder{ID: "newFolder", Name: kidUUID, MimeType: model.MimeTypeFolder}, nil)
	mockStorage.On("AllowAnyoneRead", mock.Anything, "newFolder").Return(nil)

	folder, err := svc.ResolveFolder(context.Background(), kidUUID, "")

	require.NoError(t, err)
	assert.Equal(t, "newFolder", folder.ID)
	mockStorage.AssertNotCalled(t, "GetFolder", mock.Anything, mock.Anything)
}

func TestResolveFolder_PermissionFailureNotFatal(t *testing.T) {
	mockStorage := new(MockDriveStorage)
	svc := service.NewFolderService(mockStorage)

	mockStorage.On("CheckRoot", mock.Anything).Return(nil)
	mockStorage.On("CreateFolder", mock.Anything, kidUUID).
		Return(&model.DriveFolder{ID: "newFolder", MimeType: model.MimeTypeFolder}, nil)
	mockStorage.On("AllowAnyoneRead", mock.Anything, "newFolder").Return(errors.New("insufficient permissions"))

	folder, err := svc.ResolveFolder(context.Background(), kidUUID, "")

	// папка создана, публичный доступ не обязателен
	require.NoError(t, err)
	assert.Equal(t, "newFolder", folder.ID)
}

func TestResolveFolder_RootUnavailable(t *testing.T) {
	mockStorage := new(MockDriveStorage)
	svc := service.NewFolderService(mockStorage)

	mockStorage.On("CheckRoot", mock.Anything).Return(errors.New("drive not found"))

	folder, err := svc.ResolveFolder(context.Background(), kidUUID, "")

	assert.Nil(t, folder)
	assert.Error(t, err)
	mockStorage.AssertNotCalled(t, "CreateFolder", mock.Anything, mock.Anything)
}

func TestResolveFolder_SequentialCallsStable(t *testing.T) {
	mockStorage := new(MockDriveStorage)
	svc := service.NewFolderService(mockStorage)

	mockStorage.On("CheckRoot", mock.Anything).Return(nil).Once()
	mockStorage.On("CreateFolder", mock.Anything, kidUUID).
		Return(&model.DriveFolder{ID: "newFolder", MimeType: model.MimeTypeFolder}, nil).Once()
	mockStorage.On("AllowAnyoneRead", mock.Anything, "newFolder").Return(nil).Once()

	first, err := svc.ResolveFolder(context.Background(), kidUUID, "")
	require.NoError(t, err)

	// повторный вызов с сохранённым folder_id не создаёт новую папку
	mockStorage.On("GetFolder", mock.Anything, "newFolder").
		Return(&model.DriveFolder{ID: "newFolder", MimeType: model.MimeTypeFolder}, nil)

	second, err := svc.ResolveFolder(context.Background(), kidUUID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	mockStorage.AssertNumberOfCalls(t, "CreateFolder", 1)
}
