package repository

import (
	"context"

	"kids-media-server/config"
	"kids-media-server/internal/model"
	"kids-media-server/internal/util"
)

type MediaRepository struct {
	*config.Database
}

func NewMediaRepository(database *config.Database) *MediaRepository {
	return &MediaRepository{database}
}

// Insert : сохраняет журнальную запись о загрузке и возвращает её id
func (r *MediaRepository) Insert(ctx context.Context, media *model.Media) (int64, error) {
	query := `
		INSERT INTO media (kid_id, file_name, uploaded_by, drive_file_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.DB.QueryRowContext(ctx, query,
		media.KidID,
		media.FileName,
		media.UploadedBy,
		media.DriveFileID,
	).Scan(&id)

	if err != nil {
		return 0, util.LogError("[MediaRepo] ошибка вставки данных в БД", err)
	}

	return id, nil
}
