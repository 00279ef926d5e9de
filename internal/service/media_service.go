package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"kids-media-server/internal/model"
	"kids-media-server/internal/ports"
	"kids-media-server/internal/util"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// MediaService : листинг и загрузка файлов ученика в Drive плюс журнал загрузок.
// Успех загрузки определяется только записью в Drive: журнал ведётся
// по принципу at-least-once и не является надёжным аудитом
type MediaService struct {
	kidRepository   ports.KidRepository
	mediaRepository ports.MediaRepository
	cacheRepository ports.CacheRepository
	storage         ports.DriveStorage
	folderResolver  ports.FolderResolver
}

func NewMediaService(
	kidRepository ports.KidRepository,
	mediaRepository ports.MediaRepository,
	cacheRepository ports.CacheRepository,
	storage ports.DriveStorage,
	folderResolver ports.FolderResolver,
) *MediaService {
	return &MediaService{
		kidRepository:   kidRepository,
		mediaRepository: mediaRepository,
		cacheRepository: cacheRepository,
		storage:         storage,
		folderResolver:  folderResolver,
	}
}

// ListFiles : cursor-пагинация провайдера как есть; pageToken непрозрачен.
// Мёртвая ссылка на папку — деградация, а не ошибка: пустой список с warning
func (s *MediaService) ListFiles(ctx context.Context, kidUUID string, pageSize int, pageToken string) (*model.FileListing, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	query := "trashed=false"

	if kidUUID != "" {
		if !util.IsValidUUID(kidUUID) {
			return nil, ErrInvalidUUID
		}

		kid, err := s.kidRepository.GetByUUID(ctx, kidUUID)
		if err != nil {
			return nil, ErrKidNotFound
		}
		if kid.FolderID == nil || *kid.FolderID == "" {
			return nil, ErrFolderNotConfigured
		}

		folder, err := s.storage.GetFolder(ctx, *kid.FolderID)
		if err != nil {
			log.Printf("[MediaService] папка %s ученика %s недоступна в Drive: %v", *kid.FolderID, kidUUID, err)
			return &model.FileListing{
				Files:   []model.DriveFile{},
				Warning: "папка ученика не найдена или недоступна в Drive",
			}, nil
		}
		if folder.MimeType != model.MimeTypeFolder {
			log.Printf("[MediaService] folder_id %s ученика %s указывает не на папку (%s)", *kid.FolderID, kidUUID, folder.MimeType)
			return &model.FileListing{
				Files:   []model.DriveFile{},
				Warning: "folder_id ученика указывает не на папку",
			}, nil
		}

		query = fmt.Sprintf("'%s' in parents and trashed=false", *kid.FolderID)
	}

	list, err := s.storage.ListFiles(ctx, query, int64(pageSize), pageToken)
	if err != nil {
		return nil, util.LogError("[MediaService] не удалось получить список файлов из Drive", err)
	}

	return &model.FileListing{
		Files:         list.Files,
		NextPageToken: list.NextPageToken,
		HasMore:       list.NextPageToken != "",
	}, nil
}

// UploadFile : резолвит папку, стримит файл, пишет журнал.
// Изменившийся folder_id сохраняется best-effort; ошибка журнала глотается
func (s *MediaService) UploadFile(ctx context.Context, kidUUID string, fileName string, payloadName string, mimeType string, payload io.Reader, uploaderUUID string) (*model.UploadResult, error) {
	if !util.IsValidUUID(kidUUID) {
		return nil, ErrInvalidUUID
	}
	if payload == nil {
		return nil, ErrNoFile
	}

	kid, err := s.kidRepository.GetByUUID(ctx, kidUUID)
	if err != nil {
		return nil, ErrKidNotFound
	}

	currentFolderID := ""
	if kid.FolderID != nil {
		currentFolderID = *kid.FolderID
	}

	folder, err := s.folderResolver.ResolveFolder(ctx, kid.UUID, currentFolderID)
	if err != nil {
		return nil, util.LogError("[MediaService] не удалось определить папку ученика "+kidUUID, err)
	}

	if folder.ID != currentFolderID {
		if err := s.kidRepository.UpdateFolderID(ctx, kid.UUID, folder.ID); err != nil {
			log.Printf("[MediaService] не удалось сохранить folder_id %s ученика %s: %v", folder.ID, kidUUID, err)
		} else if err := s.cacheRepository.DeleteKid(ctx, kid.UUID); err != nil {
			log.Printf("[MediaService] не удалось удалить ученика %s из кэша: %v", kidUUID, err)
		}
	}

	uploadName := fileName
	if uploadName == "" {
		uploadName = payloadName
	}
	if uploadName == "" {
		uploadName = "untitled"
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	file, err := s.storage.UploadFile(ctx, folder.ID, uploadName, mimeType, payload)
	if err != nil {
		return nil, util.LogError("[MediaService] не удалось загрузить файл в Drive", err)
	}

	log.Printf("[MediaService] файл %s загружен в папку %s ученика %s", file.ID, folder.ID, kidUUID)

	result := &model.UploadResult{File: file}

	mediaID, err := s.mediaRepository.Insert(ctx, &model.Media{
		KidID:       kid.ID,
		FileName:    uploadName,
		UploadedBy:  uploaderUUID,
		DriveFileID: file.ID,
	})
	if err != nil {
		// загрузка уже удалась; журнал расходится с Drive — это допустимо
		log.Printf("[MediaService] не удалось записать журнал загрузки для ученика %s: %v", kidUUID, err)
		return result, nil
	}

	result.MediaID = mediaID
	return result, nil
}

// LogMedia : ручная журнальная запись о загрузке
func (s *MediaService) LogMedia(ctx context.Context, kidUUID string, fileName string, uploaderUUID string) (int64, error) {
	if !util.IsValidUUID(kidUUID) {
		return 0, ErrInvalidUUID
	}

	kid, err := s.kidRepository.GetByUUID(ctx, kidUUID)
	if err != nil {
		return 0, ErrKidNotFound
	}

	mediaID, err := s.mediaRepository.Insert(ctx, &model.Media{
		KidID:      kid.ID,
		FileName:   fileName,
		UploadedBy: uploaderUUID,
	})
	if err != nil {
		return 0, util.LogError("[MediaService] не удалось записать журнал загрузки", err)
	}

	return mediaID, nil
}
