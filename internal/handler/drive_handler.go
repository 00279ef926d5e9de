package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"kids-media-server/internal/model/requestresponse"
	"kids-media-server/internal/ports"
	"kids-media-server/internal/security"
	"kids-media-server/internal/service"
	"kids-media-server/internal/util"
)

type DriveHandler struct {
	ports.MediaService
}

func NewDriveHandler(mediaService ports.MediaService) *DriveHandler {
	return &DriveHandler{mediaService}
}

// ListFiles godoc
// @Summary Список файлов в папке ученика
// @Description Возвращает страницу файлов из Drive-папки ученика. Без kidUuid возвращает файлы общего диска.
// Если папка ученика удалена или недоступна, отдаёт 200 с пустым списком и полем warning.
// @Tags Drive
// @Produce json
// @Param kidUuid query string false "UUID ученика"
// @Param pageSize query int false "Размер страницы" default(10) minimum(1) maximum(100)
// @Param pageToken query string false "Токен следующей страницы из предыдущего ответа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListFilesResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный формат UUID или папка не настроена"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} requestresponse.ErrorResponse "Ученик не найден"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/integrations/drive/list [get]
// @Security BearerAuth
func (h *DriveHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	kidUUID := r.URL.Query().Get("kidUuid")
	pageToken := r.URL.Query().Get("pageToken")

	// Некорректный pageSize не ошибка: сервис подставит значение по умолчанию
	pageSize := 0
	if pageSizeStr := r.URL.Query().Get("pageSize"); pageSizeStr != "" {
		if parsed, err := strconv.Atoi(pageSizeStr); err == nil {
			pageSize = parsed
		}
	}

	listing, err := h.MediaService.ListFiles(ctx, kidUUID, pageSize, pageToken)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrInvalidUUID):
			util.HandleError(w, "неверный формат UUID ученика", http.StatusBadRequest)
		case errors.Is(err, service.ErrKidNotFound):
			util.HandleError(w, "ученик не найден", http.StatusNotFound)
		case errors.Is(err, service.ErrFolderNotConfigured):
			// Нет folder_id у записи ученика, это проблема данных, а не провайдера
			util.HandleError(w, "папка ученика не настроена", http.StatusBadRequest)
		default:
			util.HandleServerError(w, "внутренняя ошибка сервера", err)
		}
		return
	}

	resp := requestresponse.ListFilesResponse{
		Files:   listing.Files,
		HasMore: listing.HasMore,
		Warning: listing.Warning,
	}
	if listing.NextPageToken != "" {
		resp.NextPageToken = &listing.NextPageToken
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// UploadFile godoc
// @Summary Загрузка файла в папку ученика
// @Description Принимает multipart/form-data с полем file и загружает его в Drive-папку ученика.
// Если папка потеряна, она создаётся заново, а новый folder_id сохраняется в БД.
// @Tags Drive
// @Accept multipart/form-data
// @Produce json
// @Param kidUuid query string true "UUID ученика"
// @Param fileName query string false "Имя файла в Drive (по умолчанию имя из формы)"
// @Param file formData file true "Содержимое файла"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.UploadFileResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный UUID или отсутствует файл"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} requestresponse.ErrorResponse "Ученик не найден"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/integrations/drive/upload [post]
// @Security BearerAuth
func (h *DriveHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	claims, ok := r.Context().Value(security.UserContextKey).(*security.Claims)
	if ok == false || claims == nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	kidUUID := r.URL.Query().Get("kidUuid")
	if kidUUID == "" {
		kidUUID = r.FormValue("kidUuid")
	}
	fileName := r.URL.Query().Get("fileName")
	if fileName == "" {
		fileName = r.FormValue("fileName")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		util.HandleError(w, "файл не передан", http.StatusBadRequest)
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")

	result, err := h.MediaService.UploadFile(ctx, kidUUID, fileName, header.Filename, mimeType, file, claims.UserUUID)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrInvalidUUID):
			util.HandleError(w, "неверный формат UUID ученика", http.StatusBadRequest)
		case errors.Is(err, service.ErrNoFile):
			util.HandleError(w, "файл не передан", http.StatusBadRequest)
		case errors.Is(err, service.ErrKidNotFound):
			util.HandleError(w, "ученик не найден", http.StatusNotFound)
		default:
			util.HandleServerError(w, "внутренняя ошибка сервера", err)
		}
		return
	}

	resp := requestresponse.UploadFileResponse{
		Success: true,
		File: requestresponse.UploadedFile{
			ID:          result.File.ID,
			Name:        result.File.Name,
			Size:        result.File.Size,
			MimeType:    result.File.MimeType,
			CreatedTime: result.File.CreatedTime,
			WebViewLink: result.File.WebViewLink,
		},
		MediaID: result.MediaID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
