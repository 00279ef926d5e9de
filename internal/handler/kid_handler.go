package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"kids-media-server/internal/model/requestresponse"
	"kids-media-server/internal/ports"
	"kids-media-server/internal/service"
	"kids-media-server/internal/util"

	"github.com/go-chi/chi/v5"
)

type KidHandler struct {
	ports.KidService
}

func NewKidHandler(kidService ports.KidService) *KidHandler {
	return &KidHandler{kidService}
}

// GetPublicKid godoc
// @Summary Публичная карточка ученика
// @Description Возвращает UUID и folder_id ученика. Авторизация не требуется, ссылку получают родители.
// @Tags Kids
// @Produce json
// @Param uuid path string true "UUID ученика"
// @Success 200 {object} requestresponse.KidResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный формат UUID"
// @Failure 404 {object} requestresponse.ErrorResponse "Ученик не найден"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /public/kids/{uuid} [get]
func (h *KidHandler) GetPublicKid(w http.ResponseWriter, r *http.Request) {
	kidUUID := chi.URLParam(r, "uuid")

	kid, err := h.KidService.GetPublicKid(r.Context(), kidUUID)
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

	resp := requestresponse.KidResponse{
		UUID:     kid.UUID,
		FolderID: kid.FolderID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// ListKids godoc
// @Summary Список учеников
// @Description Возвращает страницу учеников. Поиск по точному UUID или подстроке UUID.
// @Tags Kids
// @Produce json
// @Param search query string false "UUID или его фрагмент"
// @Param page query int false "Номер страницы" default(1) minimum(1)
// @Param limit query int false "Учеников на странице" default(20) minimum(1) maximum(100)
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListKidsResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/kids [get]
// @Security BearerAuth
func (h *KidHandler) ListKids(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			if parsed > 100 {
				limit = 100
			} else {
				limit = parsed
			}
		}
	}

	kids, total, err := h.KidService.ListKids(r.Context(), search, page, limit)
	if err != nil {
		log.Println(err)
		util.HandleServerError(w, "внутренняя ошибка сервера", err)
		return
	}

	items := make([]requestresponse.KidResponse, 0, len(kids))
	for _, kid := range kids {
		items = append(items, requestresponse.KidResponse{
			UUID:     kid.UUID,
			FolderID: kid.FolderID,
		})
	}

	totalPages := (total + limit - 1) / limit

	resp := requestresponse.ListKidsResponse{
		Kids: items,
		Pagination: requestresponse.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasMore:    page < totalPages,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
