package model

import "time"

// Kid : запись ученика в БД
// FolderID указывает на папку в Google Drive и может отсутствовать,
// пока Folder Resolver не создал папку
type Kid struct {
	ID       int64   `db:"id" json:"-"`
	UUID     string  `db:"uuid" json:"uuid"`
	FolderID *string `db:"folder_id" json:"folder_id"`
}

// Media : журнальная запись о загруженном файле.
// Запись создаётся после успешной загрузки в Drive; её отсутствие
// не означает отсутствия файла (журнал не транзакционен с Drive)
type Media struct {
	ID          int64     `db:"id" json:"id"`
	KidID       int64     `db:"kid_id" json:"kid_id"`
	FileName    string    `db:"file_name" json:"file_name"`
	UploadedBy  string    `db:"uploaded_by" json:"uploaded_by"`
	DriveFileID string    `db:"drive_file_id" json:"drive_file_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
