package repository

import (
	"context"

	"kids-media-server/config"
	"kids-media-server/internal/util"

	"github.com/jmoiron/sqlx"
)

type AdminRepository struct {
	*config.Database
}

func NewAdminRepository(database *config.Database) *AdminRepository {
	return &AdminRepository{database}
}

// IsAllowed : проверяет, входит ли email в allow-list администраторов
func (r *AdminRepository) IsAllowed(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM admins WHERE email = $1)`
	err := sqlx.GetContext(ctx, r.DB, &exists, query, email)
	if err != nil {
		return false, util.LogError("[AdminRepo] ошибка проверки allow-list", err)
	}
	return exists, nil
}
