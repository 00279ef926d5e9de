package service

import (
	"context"
	"log"

	"kids-media-server/internal/model"
	"kids-media-server/internal/ports"
	"kids-media-server/internal/util"
)

const (
	defaultKidsLimit = 20
	maxKidsLimit     = 100
)

// KidService : публичный поиск ученика (для QR-кодов опекунов) и
// постраничный список для сотрудников
type KidService struct {
	kidRepository   ports.KidRepository
	cacheRepository ports.CacheRepository
}

func NewKidService(kidRepository ports.KidRepository, cacheRepository ports.CacheRepository) *KidService {
	return &KidService{
		kidRepository:   kidRepository,
		cacheRepository: cacheRepository,
	}
}

// GetPublicKid : публичная запись ученика; кэшируется в Redis,
// ошибки кэша считаются промахом
func (s *KidService) GetPublicKid(ctx context.Context, uuid string) (*model.Kid, error) {
	if !util.IsValidUUID(uuid) {
		return nil, ErrInvalidUUID
	}

	kid, err := s.cacheRepository.GetKid(ctx, uuid)
	if err != nil {
		log.Printf("[KidService] ошибка кэширования: %v", err)
	}
	if kid != nil {
		return kid, nil
	}

	kid, err = s.kidRepository.GetByUUID(ctx, uuid)
	if err != nil {
		return nil, ErrKidNotFound
	}

	if err := s.cacheRepository.SetKid(ctx, kid); err != nil {
		log.Printf("[KidService] не удалось кэшировать ученика %s: %v", uuid, err)
	}

	return kid, nil
}

// ListKids : offset-пагинация; limit ограничен сверху, page начинается с 1
func (s *KidService) ListKids(ctx context.Context, search string, page int, limit int) ([]model.Kid, int, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultKidsLimit
	}
	if limit > maxKidsLimit {
		limit = maxKidsLimit
	}

	offset := (page - 1) * limit

	kids, total, err := s.kidRepository.Search(ctx, search, limit, offset)
	if err != nil {
		return nil, 0, util.LogError("[KidService] не удалось получить список учеников", err)
	}

	return kids, total, nil
}
