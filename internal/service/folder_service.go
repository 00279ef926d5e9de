package service

import (
	"context"
	"log"

	"kids-media-server/internal/model"
	"kids-media-server/internal/ports"
	"kids-media-server/internal/util"
)

// FolderService определяет актуальную папку ученика в Drive.
// Папка в БД не трогается: сохранить новый folder_id обязан вызывающий.
// Проверка-и-создание не атомарны: при одновременном первом обращении
// возможно создание двух папок, лишняя остаётся без ссылки из БД
type FolderService struct {
	storage ports.DriveStorage
}

func NewFolderService(storage ports.DriveStorage) *FolderService {
	return &FolderService{storage: storage}
}

// ResolveFolder : быстрый путь — существующая живая папка возвращается как есть;
// иначе создаётся новая с именем, равным UUID ученика
func (s *FolderService) ResolveFolder(ctx context.Context, kidUUID string, currentFolderID string) (*model.DriveFolder, error) {
	if currentFolderID != "" {
		folder, err := s.storage.GetFolder(ctx, currentFolderID)
		if err == nil && folder.MimeType == model.MimeTypeFolder {
			return folder, nil
		}
		if err != nil {
			log.Printf("[FolderService] папка %s ученика %s недоступна, создаём новую: %v", currentFolderID, kidUUID, err)
		} else {
			log.Printf("[FolderService] folder_id %s ученика %s указывает не на папку (%s), создаём новую", currentFolderID, kidUUID, folder.MimeType)
		}
	}

	if err := s.storage.CheckRoot(ctx); err != nil {
		return nil, util.LogError("[FolderService] общий диск недоступен", err)
	}

	folder, err := s.storage.CreateFolder(ctx, kidUUID)
	if err != nil {
		return nil, util.LogError("[FolderService] не удалось создать папку для ученика "+kidUUID, err)
	}

	// доступ по ссылке для опекунов; неудача не отменяет создание папки
	if err := s.storage.AllowAnyoneRead(ctx, folder.ID); err != nil {
		log.Printf("[FolderService] не удалось выдать доступ по ссылке на папку %s: %v", folder.ID, err)
	}

	log.Printf("[FolderService] создана папка %s для ученика %s", folder.ID, kidUUID)

	return folder, nil
}
