package ports

import (
	"context"

	"kids-media-server/internal/model"
)

// CacheRepository : Redis слой.
// Кэшируются записи учеников и вердикты allow-list; листинги Drive не кэшируются
type CacheRepository interface {
	GetKid(ctx context.Context, uuid string) (*model.Kid, error)
	SetKid(ctx context.Context, kid *model.Kid) error
	DeleteKid(ctx context.Context, uuid string) error

	GetAdminVerdict(ctx context.Context, email string) (allowed bool, found bool, err error)
	SetAdminVerdict(ctx context.Context, email string, allowed bool) error
}
