package service

import (
	"context"
	"log"

	"kids-media-server/internal/ports"
)

// AdminGateService : allow-list администраторов с кэшем вердиктов в Redis
type AdminGateService struct {
	adminRepository ports.AdminRepository
	cacheRepository ports.CacheRepository
}

func NewAdminGateService(adminRepository ports.AdminRepository, cacheRepository ports.CacheRepository) *AdminGateService {
	return &AdminGateService{
		adminRepository: adminRepository,
		cacheRepository: cacheRepository,
	}
}

func (s *AdminGateService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}

	allowed, found, err := s.cacheRepository.GetAdminVerdict(ctx, email)
	if err != nil {
		log.Printf("[AdminGateService] ошибка кэширования: %v", err)
	}
	if found {
		return allowed, nil
	}

	allowed, err = s.adminRepository.IsAllowed(ctx, email)
	if err != nil {
		return false, err
	}

	if err := s.cacheRepository.SetAdminVerdict(ctx, email, allowed); err != nil {
		log.Printf("[AdminGateService] не удалось кэшировать вердикт для %s: %v", email, err)
	}

	return allowed, nil
}
