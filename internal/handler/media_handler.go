package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"kids-media-server/internal/model/requestresponse"
	"kids-media-server/internal/ports"
	"kids-media-server/internal/security"
	"kids-media-server/internal/service"
	"kids-media-server/internal/util"
)

type MediaHandler struct {
	ports.MediaService
}

func NewMediaHandler(mediaService ports.MediaService) *MediaHandler {
	return &MediaHandler{mediaService}
}

// CreateMedia godoc
// @Summary Журнальная запись о загрузке
// @Description Создаёт запись в журнале загрузок без самого файла. Используется, когда файл попал в Drive в обход сервера.
// @Tags Media
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateMediaRequest true "Тело запроса"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.CreateMediaResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или UUID"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} requestresponse.ErrorResponse "Ученик не найден"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/media [post]
// @Security BearerAuth
func (h *MediaHandler) CreateMedia(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(security.UserContextKey).(*security.Claims)
	if ok == false || claims == nil {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}

	var req requestresponse.CreateMediaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	mediaID, err := h.MediaService.LogMedia(r.Context(), req.KidUUID, req.FileName, claims.UserUUID)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrInvalidUUID):
			util.HandleError(w, "неверный формат UUID ученика", http.StatusBadRequest)
		case errors.Is(err, service.ErrKidNotFound):
			util.HandleError(w, "ученик не найден", http.StatusNotFound)
		default:
			util.HandleServerError(w, "внутренняя ошибка сервера", err)
		}
		return
	}

	resp := requestresponse.CreateMediaResponse{ID: mediaID}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}
