package ports

import (
	"context"

	"kids-media-server/internal/model"
)

// KidRepository : SQL слой учеников
type KidRepository interface {
	GetByUUID(ctx context.Context, uuid string) (*model.Kid, error)
	Search(ctx context.Context, search string, limit int, offset int) ([]model.Kid, int, error)
	UpdateFolderID(ctx context.Context, uuid string, folderID string) error
}

type KidService interface {
	GetPublicKid(ctx context.Context, uuid string) (*model.Kid, error)
	ListKids(ctx context.Context, search string, page int, limit int) ([]model.Kid, int, error)
}
