package repository_test

import (
	"context"
	"regexp"
	"testing"

	"kids-media-server/config"
	"kids-media-server/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kidUUID = "11111111-1111-1111-1111-111111111111"

func newTestKidRepository(t *testing.T) (*repository.KidRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	database := &config.Database{DB: sqlx.NewDb(db, "sqlmock")}
	return repository.NewKidRepository(database), mock
}

func TestGetByUUID_Found(t *testing.T) {
	repo, mock := newTestKidRepository(t)

	rows := sqlmock.NewRows([]string{"id", "uuid", "folder_id"}).
		AddRow(7, kidUUID, "f1")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, uuid, folder_id FROM kids WHERE uuid = $1`)).
		WithArgs(kidUUID).
		WillReturnRows(rows)

	kid, err := repo.GetByUUID(context.Background(), kidUUID)

	require.NoError(t, err)
	assert.Equal(t, int64(7), kid.ID)
	assert.Equal(t, kidUUID, kid.UUID)
	require.NotNil(t, kid.FolderID)
	assert.Equal(t, "f1", *kid.FolderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUUID_NullFolder(t *testing.T) {
	repo, mock := newTestKidRepository(t)

	rows := sqlmock.NewRows([]string{"id", "uuid", "folder_id"}).
		AddRow(7, kidUUID, nil)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, uuid, folder_id FROM kids WHERE uuid = $1`)).
		WithArgs(kidUUID).
		WillReturnRows(rows)

	kid, err := repo.GetByUUID(context.Background(), kidUUID)

	require.NoError(t, err)
	assert.Nil(t, kid.FolderID)
}

func TestGetByUUID_NotFound(t *testing.T) {
	repo, mock := newTestKidRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, uuid, folder_id FROM kids WHERE uuid = $1`)).
		WithArgs(kidUUID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uuid", "folder_id"}))

	kid, err := repo.GetByUUID(context.Background(), kidUUID)

	assert.Nil(t, kid)
	assert.ErrorIs(t, err, repository.ErrKidNotExists)
}

func TestSearch_Empty(t *testing.T) {
	repo, mock := newTestKidRepository(t)

	rows := sqlmock.NewRows([]string{"id", "uuid", "folder_id"}).
		AddRow(1, kidUUID, "f1").
		AddRow(2, "22222222-2222-2222-2222-222222222222", nil)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, uuid, folder_id FROM kids ORDER BY id LIMIT $1 OFFSET $2`)).
		WithArgs(20, 0).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM kids`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(53))

	kids, total, err := repo.Search(context.Background(), "", 20, 0)

	require.NoError(t, err)
	assert.Len(t, kids, 2)
	assert.Equal(t, 53, total)
}

func TestSearch_ExactUUID(t *testing.T) {
	repo, mock := newTestKidRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, uuid, folder_id FROM kids WHERE uuid = $3 ORDER BY id LIMIT $1 OFFSET $2`)).
		WithArgs(20, 0, kidUUID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uuid", "folder_id"}).AddRow(1, kidUUID, "f1"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM kids WHERE uuid = $1`)).
		WithArgs(kidUUID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	kids, total, err := repo.Search(context.Background(), kidUUID, 20, 0)

	require.NoError(t, err)
	assert.Len(t, kids, 1)
	assert.Equal(t, 1, total)
}

func TestSearch_Substring(t *testing.T) {
	repo, mock := newTestKidRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, uuid, folder_id FROM kids WHERE uuid ILIKE '%' || $3 || '%' ORDER BY id LIMIT $1 OFFSET $2`)).
		WithArgs(10, 10, "1111").
		WillReturnRows(sqlmock.NewRows([]string{"id", "uuid", "folder_id"}).AddRow(1, kidUUID, nil))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM kids WHERE uuid ILIKE '%' || $1 || '%'`)).
		WithArgs("1111").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

	kids, total, err := repo.Search(context.Background(), "1111", 10, 10)

	require.NoError(t, err)
	assert.Len(t, kids, 1)
	assert.Equal(t, 11, total)
}

func TestUpdateFolderID_Success(t *testing.T) {
	repo, mock := newTestKidRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE kids SET folder_id = $2 WHERE uuid = $1`)).
		WithArgs(kidUUID, "newFolder").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateFolderID(context.Background(), kidUUID, "newFolder")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateFolderID_KidMissing(t *testing.T) {
	repo, mock := newTestKidRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE kids SET folder_id = $2 WHERE uuid = $1`)).
		WithArgs(kidUUID, "newFolder").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateFolderID(context.Background(), kidUUID, "newFolder")

	assert.ErrorIs(t, err, repository.ErrKidNotExists)
}
