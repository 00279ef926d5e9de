package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kids-media-server/config"
	"kids-media-server/internal/model"
	"kids-media-server/internal/util"

	"github.com/redis/go-redis/v9"
)

// CacheRepository кэширует записи учеников и вердикты allow-list.
// Листинги Drive сознательно не кэшируются: файлы читаются заново при каждом запросе
type CacheRepository struct {
	client   *config.RedisClient
	kidTTL   time.Duration
	adminTTL time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, kidTTL time.Duration, adminTTL time.Duration) *CacheRepository {
	return &CacheRepository{rdb, kidTTL, adminTTL}
}

func (r *CacheRepository) SetKid(ctx context.Context, kid *model.Kid) error {
	data, err := json.Marshal(kid)
	if err != nil {
		return util.LogError("ошибка сериализации ученика", err)
	}

	cmd := r.client.Client.Set(ctx, r.kidKey(kid.UUID), data, r.kidTTL)
	if err = cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}

	return nil
}

func (r *CacheRepository) GetKid(ctx context.Context, uuid string) (*model.Kid, error) {
	val, err := r.client.Client.Get(ctx, r.kidKey(uuid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения ученика из Redis", err)
	}

	var kid model.Kid
	if err := json.Unmarshal([]byte(val), &kid); err != nil {
		return nil, util.LogError("ошибка десериализации ученика из кэша", err)
	}
	return &kid, nil
}

func (r *CacheRepository) DeleteKid(ctx context.Context, uuid string) error {
	if err := r.client.Client.Del(ctx, r.kidKey(uuid)).Err(); err != nil {
		return util.LogError("ошибка удаления ученика из Redis", err)
	}
	return nil
}

func (r *CacheRepository) SetAdminVerdict(ctx context.Context, email string, allowed bool) error {
	val := "0"
	if allowed {
		val = "1"
	}
	if err := r.client.Client.Set(ctx, r.adminKey(email), val, r.adminTTL).Err(); err != nil {
		return util.LogError("ошибка сохранения вердикта в Redis", err)
	}
	return nil
}

func (r *CacheRepository) GetAdminVerdict(ctx context.Context, email string) (bool, bool, error) {
	val, err := r.client.Client.Get(ctx, r.adminKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	} else if err != nil {
		return false, false, util.LogError("ошибка получения вердикта из Redis", err)
	}
	return val == "1", true, nil
}

func (r *CacheRepository) kidKey(uuid string) string {
	return fmt.Sprintf("kid:%s", uuid)
}

func (r *CacheRepository) adminKey(email string) string {
	return fmt.Sprintf("admin:%s", email)
}
