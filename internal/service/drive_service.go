package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"kids-media-server/config"
	"kids-media-server/internal/model"
	"kids-media-server/internal/util"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const listFileFields = "nextPageToken, files(id, name, mimeType, createdTime, size, parents, thumbnailLink, webViewLink)"

// DriveService : обёртка над Google Drive v3.
// Один клиент на процесс, внедряется во все сервисы через конструкторы
type DriveService struct {
	client        *drive.Service
	sharedDriveID string
}

func NewDriveService(ctx context.Context, cfg *config.DriveConfig) (*DriveService, error) {
	if cfg.SharedDriveID == "" {
		return nil, fmt.Errorf("[DriveService] shared_drive_id не задан в конфигурации")
	}
	if cfg.ServiceAccountFile == "" {
		return nil, fmt.Errorf("[DriveService] service_account_file не задан в конфигурации")
	}

	client, err := drive.NewService(ctx,
		option.WithCredentialsFile(cfg.ServiceAccountFile),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		return nil, util.LogError("[DriveService] не удалось создать клиент Drive", err)
	}

	log.Printf("[DriveService] клиент Drive создан, общий диск %s", cfg.SharedDriveID)

	return &DriveService{
		client:        client,
		sharedDriveID: cfg.SharedDriveID,
	}, nil
}

// GetFolder : читает описание папки по id
func (s *DriveService) GetFolder(ctx context.Context, folderID string) (*model.DriveFolder, error) {
	folder, err := s.client.Files.Get(folderID).
		Fields("id, name, mimeType, webViewLink").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return nil, util.LogError("[DriveService] не удалось получить папку "+folderID, err)
	}

	return &model.DriveFolder{
		ID:          folder.Id,
		Name:        folder.Name,
		MimeType:    folder.MimeType,
		WebViewLink: folder.WebViewLink,
	}, nil
}

// CheckRoot : проверяет доступность общего диска
func (s *DriveService) CheckRoot(ctx context.Context) error {
	_, err := s.client.Drives.Get(s.sharedDriveID).Context(ctx).Do()
	if err != nil {
		return util.LogError("[DriveService] общий диск "+s.sharedDriveID+" не найден или недоступен", err)
	}
	return nil
}

// CreateFolder : создаёт папку внутри общего диска
func (s *DriveService) CreateFolder(ctx context.Context, name string) (*model.DriveFolder, error) {
	folder, err := s.client.Files.Create(&drive.File{
		Name:     name,
		MimeType: model.MimeTypeFolder,
		Parents:  []string{s.sharedDriveID},
	}).
		Fields("id, name, webViewLink").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return nil, util.LogError("[DriveService] не удалось создать папку "+name, err)
	}

	return &model.DriveFolder{
		ID:          folder.Id,
		Name:        folder.Name,
		MimeType:    model.MimeTypeFolder,
		WebViewLink: folder.WebViewLink,
	}, nil
}

// AllowAnyoneRead : даёт доступ на чтение всем, у кого есть ссылка
func (s *DriveService) AllowAnyoneRead(ctx context.Context, folderID string) error {
	_, err := s.client.Permissions.Create(folderID, &drive.Permission{
		Role: "reader",
		Type: "anyone",
	}).
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return util.LogError("[DriveService] не удалось выдать права на папку "+folderID, err)
	}
	return nil
}

// ListFiles : одна страница листинга; pageToken отдаётся провайдеру как есть
func (s *DriveService) ListFiles(ctx context.Context, query string, pageSize int64, pageToken string) (*model.DriveFileList, error) {
	call := s.client.Files.List().
		Q(query).
		PageSize(pageSize).
		Fields(listFileFields).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true)

	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	res, err := call.Context(ctx).Do()
	if err != nil {
		return nil, util.LogError("[DriveService] не удалось получить список файлов", err)
	}

	files := make([]model.DriveFile, 0, len(res.Files))
	for _, f := range res.Files {
		files = append(files, model.DriveFile{
			ID:            f.Id,
			Name:          f.Name,
			MimeType:      f.MimeType,
			CreatedTime:   f.CreatedTime,
			Size:          f.Size,
			Parents:       f.Parents,
			ThumbnailLink: f.ThumbnailLink,
			WebViewLink:   f.WebViewLink,
		})
	}

	return &model.DriveFileList{
		Files:         files,
		NextPageToken: res.NextPageToken,
	}, nil
}

// UploadFile : стримит файл в папку ученика
func (s *DriveService) UploadFile(ctx context.Context, folderID string, name string, mimeType string, payload io.Reader) (*model.DriveFile, error) {
	file, err := s.client.Files.Create(&drive.File{
		Name:    name,
		Parents: []string{folderID},
	}).
		Media(payload, googleapi.ContentType(mimeType)).
		Fields("id, name, size, mimeType, createdTime, webViewLink").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return nil, util.LogError("[DriveService] не удалось загрузить файл "+name, err)
	}

	return &model.DriveFile{
		ID:          file.Id,
		Name:        file.Name,
		MimeType:    file.MimeType,
		CreatedTime: file.CreatedTime,
		Size:        file.Size,
		WebViewLink: file.WebViewLink,
	}, nil
}
