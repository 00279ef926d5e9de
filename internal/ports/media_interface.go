package ports

import (
	"context"
	"io"

	"kids-media-server/internal/model"
)

// MediaRepository : журнал загрузок в БД
type MediaRepository interface {
	Insert(ctx context.Context, media *model.Media) (int64, error)
}

type MediaService interface {
	ListFiles(ctx context.Context, kidUUID string, pageSize int, pageToken string) (*model.FileListing, error)
	UploadFile(ctx context.Context, kidUUID string, fileName string, payloadName string, mimeType string, payload io.Reader, uploaderUUID string) (*model.UploadResult, error)
	LogMedia(ctx context.Context, kidUUID string, fileName string, uploaderUUID string) (int64, error)
}
