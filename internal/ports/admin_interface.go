package ports

import "context"

// AdminRepository : allow-list администраторов по email
type AdminRepository interface {
	IsAllowed(ctx context.Context, email string) (bool, error)
}
