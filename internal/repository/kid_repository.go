package repository

import (
	"context"
	"database/sql"
	"errors"

	"kids-media-server/config"
	"kids-media-server/internal/model"
	"kids-media-server/internal/util"

	"github.com/jmoiron/sqlx"
)

var ErrKidNotExists = errors.New("ученик не найден")

type KidRepository struct {
	*config.Database
}

func NewKidRepository(database *config.Database) *KidRepository {
	return &KidRepository{database}
}

// GetByUUID : ищет ученика по UUID
func (r *KidRepository) GetByUUID(ctx context.Context, uuid string) (*model.Kid, error) {
	query := `SELECT id, uuid, folder_id FROM kids WHERE uuid = $1`

	var kid model.Kid
	err := sqlx.GetContext(ctx, r.DB, &kid, query, uuid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKidNotExists
		}
		return nil, util.LogError("[KidRepo] ошибка поиска ученика", err)
	}

	return &kid, nil
}

// Search : постраничный поиск учеников по подстроке UUID.
// Полный UUID ищется точным сравнением, пустой search возвращает всех
func (r *KidRepository) Search(ctx context.Context, search string, limit int, offset int) ([]model.Kid, int, error) {
	var (
		listQuery  string
		countQuery string
		args       []interface{}
	)

	switch {
	case search == "":
		listQuery = `SELECT id, uuid, folder_id FROM kids ORDER BY id LIMIT $1 OFFSET $2`
		countQuery = `SELECT COUNT(*) FROM kids`
		args = []interface{}{limit, offset}
	case util.IsValidUUID(search):
		listQuery = `SELECT id, uuid, folder_id FROM kids WHERE uuid = $3 ORDER BY id LIMIT $1 OFFSET $2`
		countQuery = `SELECT COUNT(*) FROM kids WHERE uuid = $1`
		args = []interface{}{limit, offset, search}
	default:
		listQuery = `SELECT id, uuid, folder_id FROM kids WHERE uuid ILIKE '%' || $3 || '%' ORDER BY id LIMIT $1 OFFSET $2`
		countQuery = `SELECT COUNT(*) FROM kids WHERE uuid ILIKE '%' || $1 || '%'`
		args = []interface{}{limit, offset, search}
	}

	kids := []model.Kid{}
	if err := sqlx.SelectContext(ctx, r.DB, &kids, listQuery, args...); err != nil {
		return nil, 0, util.LogError("[KidRepo] не удалось получить список учеников", err)
	}

	var total int
	countArgs := args[2:]
	if err := sqlx.GetContext(ctx, r.DB, &total, countQuery, countArgs...); err != nil {
		return nil, 0, util.LogError("[KidRepo] не удалось посчитать учеников", err)
	}

	return kids, total, nil
}

// UpdateFolderID : сохраняет актуальный folder_id, выданный резолвером папок
func (r *KidRepository) UpdateFolderID(ctx context.Context, uuid string, folderID string) error {
	query := `UPDATE kids SET folder_id = $2 WHERE uuid = $1`

	result, err := r.DB.ExecContext(ctx, query, uuid, folderID)
	if err != nil {
		return util.LogError("[KidRepo] не удалось обновить folder_id", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[KidRepo] не удалось проверить обновление folder_id", err)
	}
	if rowsAffected == 0 {
		return ErrKidNotExists
	}

	return nil
}
