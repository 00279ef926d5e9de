package ports

import (
	"context"
	"io"

	"kids-media-server/internal/model"
)

// DriveStorage : провайдер хранилища (Google Drive v3).
// Клиент строится один раз на старте процесса и переиспользуется
type DriveStorage interface {
	GetFolder(ctx context.Context, folderID string) (*model.DriveFolder, error)
	CreateFolder(ctx context.Context, name string) (*model.DriveFolder, error)
	AllowAnyoneRead(ctx context.Context, folderID string) error
	CheckRoot(ctx context.Context) error
	ListFiles(ctx context.Context, query string, pageSize int64, pageToken string) (*model.DriveFileList, error)
	UploadFile(ctx context.Context, folderID string, name string, mimeType string, payload io.Reader) (*model.DriveFile, error)
}

// FolderResolver : определяет актуальную папку ученика, создавая её при необходимости.
// Не пишет в БД: сохранить новый folder_id обязан вызывающий
type FolderResolver interface {
	ResolveFolder(ctx context.Context, kidUUID string, currentFolderID string) (*model.DriveFolder, error)
}
