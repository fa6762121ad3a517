package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "booking-lock:"

// releaseScript удаляет ключ, только если он всё ещё принадлежит нам
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Redis распределённая блокировка для нескольких инстансов сервиса (SET NX PX)
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	retry  time.Duration
	logger Logger
}

// NewRedis создает locker поверх redis. ttl ограничивает время жизни
// блокировки, если держатель упал; retry - пауза между попытками.
func NewRedis(client *redis.Client, ttl, retry time.Duration, logger Logger) *Redis {
	return &Redis{client: client, ttl: ttl, retry: retry, logger: logger}
}

// Lock повторяет попытки до успеха или отмены контекста
func (r *Redis) Lock(ctx context.Context, key string) (Unlock, error) {
	redisKey := keyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(r.retry)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, redisKey, token, r.ttl).Result()
		if err != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("lock: redis SETNX %s: %w", redisKey, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %w", ErrLockTimeout, key, ctx.Err())
		case <-ticker.C:
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// Освобождаем даже если контекст запроса уже отменён
			releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := releaseScript.Run(releaseCtx, r.client, []string{redisKey}, token).Err(); err != nil {
				r.logger.Warn("lock: failed to release %s: %v", redisKey, err)
			}
		})
	}, nil
}
